// Package reputation реализует систему репутации чата: распознавание
// благодарностей в ответах, начисление очков и лидерборд.
// models.go описывает запись репутации и типизированные входящие события.
package reputation

// Record — запись репутации участника в базе данных.
// Создаётся при первой благодарности, удаляется при выходе из чата.
// JSON-теги соответствуют формату ответа эндпоинта /reputations.
type Record struct {
	ID         int64  `db:"id" json:"id"`                  // Автоинкрементный ID записи в БД
	TelegramID int64  `db:"telegram_id" json:"telegramId"` // Telegram user ID (уникальный)
	Username   string `db:"username" json:"username"`      // @username (может быть пустым)
	FullName   string `db:"full_name" json:"fullName"`     // Имя + фамилия
	AvatarURL  string `db:"avatar_url" json:"userAvatar"`  // Ссылка на аватарку (может быть пустой)
	Reputation int    `db:"reputation" json:"reputation"`  // Очки репутации, всегда >= 0
}

// Member — личность участника из события Telegram.
// Не хранится: превращается в Record только при начислении.
type Member struct {
	TelegramID int64
	Username   string
	FirstName  string
	LastName   string
}

// FullName возвращает отображаемое имя: имя + фамилия (если есть).
func (m Member) FullName() string {
	if m.LastName == "" {
		return m.FirstName
	}
	return m.FirstName + " " + m.LastName
}

// EventKind — тип входящего события.
// Сырые апдейты Telegram разбираются в эти варианты один раз на границе
// (internal/bot), дальше логика матчится по Kind, а не щупает опциональные поля.
type EventKind int

const (
	// EventPlain — обычное сообщение без ответа, бот его игнорирует
	EventPlain EventKind = iota
	// EventJoin — в чат вступил новый участник
	EventJoin
	// EventLeave — участник покинул чат
	EventLeave
	// EventTextReply — текстовое сообщение-ответ
	EventTextReply
	// EventStickerReply — стикер-ответ
	EventStickerReply
)

// Event — одно типизированное событие чата.
// Заполненность полей зависит от Kind: Target есть только у *Reply,
// Text — у TextReply, StickerEmoji — у StickerReply, LeftID — у Leave.
type Event struct {
	Kind   EventKind
	ChatID int64

	Sender Member // отправитель сообщения (Join: вступивший участник)
	Target Member // автор сообщения, на которое ответили

	Text         string // текст сообщения (TextReply)
	StickerEmoji string // эмодзи, привязанное к стикеру (StickerReply)
	LeftID       int64  // Telegram ID ушедшего участника (Leave)
}

// Classification — результат классификации сообщения-ответа.
type Classification int

const (
	// ClassNone — благодарность не распознана
	ClassNone Classification = iota
	// ClassTextThanks — в тексте найдено слово благодарности
	ClassTextThanks
	// ClassStickerThumbsUp — стикер с эмодзи 👍
	ClassStickerThumbsUp
)

// ClassificationResult — итог работы классификатора: вид благодарности
// и участник, которому она адресована. Target имеет смысл только при Kind != ClassNone.
type ClassificationResult struct {
	Kind   Classification
	Target Member
}
