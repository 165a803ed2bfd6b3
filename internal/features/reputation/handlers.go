// Package reputation — handlers.go связывает конвейер обработки события:
// классификация → проверка права → начисление → поздравление.
package reputation

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"skillblog.ru/reputation-bot/internal/common"
	"skillblog.ru/reputation-bot/internal/metrics"
)

// Sender — отправка сообщений в Telegram. Реализуется *tgbotapi.BotAPI.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Handler обрабатывает типизированные события чата.
type Handler struct {
	service  *Service
	guard    *Guard
	avatars  *AvatarResolver
	composer *Composer
	bot      Sender
}

// NewHandler создаёт обработчик событий репутации.
func NewHandler(service *Service, guard *Guard, avatars *AvatarResolver, composer *Composer, bot Sender) *Handler {
	return &Handler{
		service:  service,
		guard:    guard,
		avatars:  avatars,
		composer: composer,
		bot:      bot,
	}
}

// HandleEvent — единая точка входа. Матчится по виду события,
// опциональные поля апдейта к этому моменту уже разобраны.
func (h *Handler) HandleEvent(ctx context.Context, ev Event) {
	metrics.EventsTotal.WithLabelValues(eventKindLabel(ev.Kind)).Inc()

	switch ev.Kind {
	case EventJoin:
		h.handleJoin(ev)
	case EventLeave:
		h.handleLeave(ctx, ev)
	case EventTextReply, EventStickerReply:
		h.handleReply(ctx, ev)
	case EventPlain:
		// обычные сообщения бота не касаются
	}
}

// handleReply прогоняет ответ через классификатор и проверку права.
// Любой отказ молчаливый: ни сообщения в чат, ни записи в БД.
func (h *Handler) handleReply(ctx context.Context, ev Event) {
	result := Classify(ev)
	if result.Kind == ClassNone {
		return
	}

	if err := h.guard.Check(ctx, ev); err != nil {
		if reason, rejected := rejectionReason(err); rejected {
			metrics.RejectionsTotal.WithLabelValues(reason).Inc()
			log.WithFields(log.Fields{
				"chat_id": ev.ChatID,
				"sender":  ev.Sender.Username,
				"target":  ev.Target.Username,
				"reason":  reason,
			}).Debug("Репутация не начислена")
			return
		}
		// Сбой Telegram при проверке членства: событие пропало, состояние не тронуто
		log.WithError(err).WithField("target_id", ev.Target.TelegramID).Error("Ошибка проверки членства")
		return
	}

	// Аватарка нужна только если запись будет создаваться; сбой деградирует до ""
	avatarURL := h.avatars.AvatarURL(result.Target.TelegramID)

	rec, err := h.service.Credit(ctx, result.Target, avatarURL)
	if err != nil {
		log.WithError(err).WithField("target_id", result.Target.TelegramID).Error("Ошибка начисления репутации")
		return
	}
	metrics.CreditsTotal.Inc()

	// Начисление уже зафиксировано: сбой отправки ниже оставит участника
	// без поздравления, но с очками. Принятое ограничение.
	text, keyboard := h.composer.CreditMessage(rec, result.Target, ev.Sender.FirstName)
	msg := tgbotapi.NewMessage(ev.ChatID, text)
	msg.ReplyMarkup = keyboard
	h.send(msg)
}

// handleJoin приветствует нового участника. Запись репутации не создаётся:
// она появится при первой благодарности.
func (h *Handler) handleJoin(ev Event) {
	text := h.composer.WelcomeMessage(ev.Sender)
	h.send(tgbotapi.NewMessage(ev.ChatID, text))
}

// handleLeave удаляет запись ушедшего участника. Без ответа в чат.
func (h *Handler) handleLeave(ctx context.Context, ev Event) {
	if err := h.service.Remove(ctx, ev.LeftID); err != nil {
		log.WithError(err).WithField("telegram_id", ev.LeftID).Error("Ошибка удаления записи репутации")
		return
	}
	metrics.RemovalsTotal.Inc()
}

func (h *Handler) send(msg tgbotapi.MessageConfig) {
	if _, err := h.bot.Send(msg); err != nil {
		metrics.SendFailuresTotal.Inc()
		log.WithError(err).WithField("chat_id", msg.ChatID).Error("Ошибка отправки сообщения")
	}
}

// rejectionReason сопоставляет ошибке проверки права метку причины.
// Второй результат false — это не отказ, а сбой платформы.
func rejectionReason(err error) (string, bool) {
	switch {
	case errors.Is(err, common.ErrSelfThanks):
		return "self", true
	case errors.Is(err, common.ErrBotTarget):
		return "bot", true
	case errors.Is(err, common.ErrTargetLeft):
		return "left", true
	default:
		return "", false
	}
}

func eventKindLabel(kind EventKind) string {
	switch kind {
	case EventJoin:
		return "join"
	case EventLeave:
		return "leave"
	case EventTextReply:
		return "text_reply"
	case EventStickerReply:
		return "sticker_reply"
	default:
		return "plain"
	}
}
