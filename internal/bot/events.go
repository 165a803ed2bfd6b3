// Package bot — events.go разбирает сырые апдейты Telegram в типизированные события.
// Опциональные поля апдейта (reply, sticker, new_chat_members, ...) щупаются
// ровно один раз здесь; дальше по коду события матчатся по Kind.
package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"skillblog.ru/reputation-bot/internal/features/reputation"
)

// DecodeUpdate превращает апдейт в ноль или больше событий.
// Несколько событий бывает только у вступления: Telegram может привести
// нескольких новых участников одним апдейтом.
func DecodeUpdate(update tgbotapi.Update) []reputation.Event {
	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return nil
	}

	// Вступление новых участников
	if len(msg.NewChatMembers) > 0 {
		events := make([]reputation.Event, 0, len(msg.NewChatMembers))
		for _, user := range msg.NewChatMembers {
			events = append(events, reputation.Event{
				Kind:   reputation.EventJoin,
				ChatID: msg.Chat.ID,
				Sender: memberFromUser(&user),
			})
		}
		return events
	}

	// Уход участника
	if msg.LeftChatMember != nil {
		return []reputation.Event{{
			Kind:   reputation.EventLeave,
			ChatID: msg.Chat.ID,
			LeftID: msg.LeftChatMember.ID,
		}}
	}

	if msg.From == nil {
		// Сервисные/канальные сообщения без отправителя
		return nil
	}

	ev := reputation.Event{
		ChatID: msg.Chat.ID,
		Sender: memberFromUser(msg.From),
	}

	// Без ответа благодарность не адресуется — это обычное сообщение
	if msg.ReplyToMessage == nil || msg.ReplyToMessage.From == nil {
		ev.Kind = reputation.EventPlain
		ev.Text = msg.Text
		return []reputation.Event{ev}
	}

	ev.Target = memberFromUser(msg.ReplyToMessage.From)

	switch {
	case msg.Sticker != nil:
		ev.Kind = reputation.EventStickerReply
		ev.StickerEmoji = msg.Sticker.Emoji
	case msg.Text != "":
		ev.Kind = reputation.EventTextReply
		ev.Text = msg.Text
	default:
		// Ответ фото/голосом и т.п. — классифицировать нечего
		ev.Kind = reputation.EventPlain
	}

	return []reputation.Event{ev}
}

func memberFromUser(u *tgbotapi.User) reputation.Member {
	return reputation.Member{
		TelegramID: u.ID,
		Username:   u.UserName,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
	}
}
