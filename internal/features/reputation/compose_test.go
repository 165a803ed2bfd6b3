package reputation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreditMessage(t *testing.T) {
	composer := NewComposer("https://skill-bot-client.vercel.app")
	target := Member{TelegramID: 2, Username: "bob", FirstName: "Боб"}
	rec := &Record{TelegramID: 2, Username: "bob", FullName: "Боб", Reputation: 5}

	text, keyboard := composer.CreditMessage(rec, target, "Алиса")

	assert.Contains(t, text, "Боб (@bob)")
	assert.Contains(t, text, "Алиса")
	assert.Contains(t, text, "Твоя репутация 5")

	require.Len(t, keyboard.InlineKeyboard, 1)
	require.Len(t, keyboard.InlineKeyboard[0], 1)
	button := keyboard.InlineKeyboard[0][0]
	assert.Equal(t, "Статистика чата", button.Text)
	require.NotNil(t, button.URL)
	assert.Equal(t, "https://skill-bot-client.vercel.app", *button.URL)
}

func TestCreditMessageWithoutUsername(t *testing.T) {
	composer := NewComposer("https://example.com")
	target := Member{TelegramID: 2, FirstName: "Боб"}
	rec := &Record{TelegramID: 2, FullName: "Боб", Reputation: 1}

	text, _ := composer.CreditMessage(rec, target, "Алиса")

	assert.Contains(t, text, "Поздравляю, Боб!")
	assert.NotContains(t, text, "(@", "без username скобок быть не должно")
}

func TestWelcomeMessage(t *testing.T) {
	composer := NewComposer("https://example.com")

	text := composer.WelcomeMessage(Member{TelegramID: 7, FirstName: "Нина"})

	assert.Contains(t, text, "Привет, Нина!")
	assert.Contains(t, text, "Добро пожаловать")
}
