// Package reputation — compose.go собирает тексты исходящих сообщений.
// Только форматирование: ни БД, ни Telegram здесь не трогаются.
package reputation

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Composer формирует исходящие сообщения бота.
type Composer struct {
	// ссылка на внешнюю страницу статистики (inline-кнопка под поздравлением)
	leaderboardURL string
}

// NewComposer создаёт композер с заданной ссылкой на лидерборд.
func NewComposer(leaderboardURL string) *Composer {
	return &Composer{leaderboardURL: leaderboardURL}
}

// CreditMessage собирает поздравление после успешного начисления.
// В тексте: адресат (имя и @username в скобках, если он есть), имя
// поблагодарившего и репутация ПОСЛЕ изменения. К сообщению прикрепляется
// одна кнопка-ссылка на статистику чата.
func (c *Composer) CreditMessage(rec *Record, target Member, senderFirstName string) (string, tgbotapi.InlineKeyboardMarkup) {
	text := fmt.Sprintf(
		"Поздравляю, %s! Участник %s повысил твою репутацию, так держать! Твоя репутация %d",
		displayName(target), senderFirstName, rec.Reputation,
	)
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("Статистика чата", c.leaderboardURL),
		),
	)
	return text, keyboard
}

// WelcomeMessage собирает приветствие вступившему участнику.
func (c *Composer) WelcomeMessage(member Member) string {
	return fmt.Sprintf(
		"Привет, %s! Добро пожаловать в чат! Если нужна помощь — задай вопрос, и участники группы постараются помочь. За полезные ответы здесь благодарят, а я считаю репутацию.",
		member.FirstName,
	)
}

// displayName: "Имя (@username)" либо просто "Имя", если username нет.
func displayName(m Member) string {
	if m.Username == "" {
		return m.FirstName
	}
	return fmt.Sprintf("%s (@%s)", m.FirstName, m.Username)
}
