package reputation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func textReply(text string) Event {
	return Event{
		Kind:   EventTextReply,
		ChatID: -100500,
		Sender: Member{TelegramID: 1, Username: "alice", FirstName: "Алиса"},
		Target: Member{TelegramID: 2, Username: "bob", FirstName: "Боб"},
		Text:   text,
	}
}

func stickerReply(emoji string) Event {
	ev := textReply("")
	ev.Kind = EventStickerReply
	ev.Text = ""
	ev.StickerEmoji = emoji
	return ev
}

func TestClassifyText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Classification
	}{
		{"простое спасибо", "спасибо", ClassTextThanks},
		{"спасибо с восклицанием", "спасибо!", ClassTextThanks},
		{"верхний регистр", "СПАСИБО", ClassTextThanks},
		{"смешанный регистр", "БлагоДарю", ClassTextThanks},
		{"слово в середине", "ух ты, заработало наконец", ClassTextThanks},
		{"слово в конце", "вроде сработало", ClassTextThanks},
		{"спс со скобками", "(спс)", ClassTextThanks},
		{"пунктуация внутри", "спа.сибо", ClassTextThanks},
		{"вопросики вокруг", "спс???", ClassTextThanks},
		{"эмодзи как слово", "вот это 👍 дело", ClassTextThanks},
		{"несколько пробелов", "ну   спс   тебе", ClassTextThanks},

		{"обычный текст", "привет, как дела?", ClassNone},
		{"пустой текст", "", ClassNone},
		{"слово как подстрока", "спасибочки", ClassNone},
		{"похожее слово", "спасть", ClassNone},
		{"латиница", "thanks", ClassNone},
		{"дефис не вырезается", "спа-сибо", ClassNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(textReply(tt.text))
			assert.Equal(t, tt.want, got.Kind)
			if tt.want != ClassNone {
				assert.Equal(t, int64(2), got.Target.TelegramID)
			}
		})
	}
}

func TestClassifySticker(t *testing.T) {
	tests := []struct {
		name  string
		emoji string
		want  Classification
	}{
		{"большой палец", "👍", ClassStickerThumbsUp},
		{"палец со светлым тоном", "👍🏻", ClassNone},
		{"палец с тёмным тоном", "👍🏿", ClassNone},
		{"другое эмодзи", "❤️", ClassNone},
		{"без эмодзи", "", ClassNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(stickerReply(tt.emoji))
			assert.Equal(t, tt.want, got.Kind)
		})
	}
}

func TestClassifyNonReplies(t *testing.T) {
	// Без ответа благодарить некого — даже со словом «спасибо» в тексте
	plain := textReply("спасибо")
	plain.Kind = EventPlain
	assert.Equal(t, ClassNone, Classify(plain).Kind)

	join := Event{Kind: EventJoin, Sender: Member{TelegramID: 5}}
	assert.Equal(t, ClassNone, Classify(join).Kind)

	leave := Event{Kind: EventLeave, LeftID: 5}
	assert.Equal(t, ClassNone, Classify(leave).Kind)
}
