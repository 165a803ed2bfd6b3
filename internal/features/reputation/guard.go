// Package reputation — guard.go решает, можно ли начислять репутацию.
package reputation

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"skillblog.ru/reputation-bot/internal/common"
)

// ChatMemberAPI — часть Telegram API, нужная для живой проверки членства.
// Реализуется *tgbotapi.BotAPI; в тестах подменяется фейком.
type ChatMemberAPI interface {
	GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
}

// Guard проверяет право адресата на получение репутации.
type Guard struct {
	api ChatMemberAPI
	// username самого бота: ответ на сообщение бота репутацию не даёт
	botUsername string
}

// NewGuard создаёт проверку права на начисление.
func NewGuard(api ChatMemberAPI, botUsername string) *Guard {
	return &Guard{api: api, botUsername: botUsername}
}

// Check возвращает nil, если благодарность можно засчитать, либо причину отказа:
// common.ErrSelfThanks, common.ErrBotTarget, common.ErrTargetLeft.
// Статус членства запрашивается у Telegram на каждое событие — не кешируется,
// чтобы не засчитать благодарность уже ушедшему участнику.
func (g *Guard) Check(ctx context.Context, ev Event) error {
	if ev.Target.Username == g.botUsername {
		return common.ErrBotTarget
	}
	if ev.Target.Username == ev.Sender.Username {
		return common.ErrSelfThanks
	}

	member, err := g.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			ChatID: ev.ChatID,
			UserID: ev.Target.TelegramID,
		},
	})
	if err != nil {
		// Сбой платформы — это не отказ, пробрасываем наверх
		return err
	}
	if member.Status == "left" {
		return common.ErrTargetLeft
	}

	return nil
}
