package reputation

import (
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
)

func TestAvatarURLResolvesSmallestVariant(t *testing.T) {
	api := &fakeTelegram{
		photos: tgbotapi.UserProfilePhotos{
			TotalCount: 1,
			Photos: [][]tgbotapi.PhotoSize{
				{
					{FileID: "small", Width: 160, Height: 160},
					{FileID: "big", Width: 640, Height: 640},
				},
			},
		},
		file: tgbotapi.File{FileID: "small", FilePath: "photos/file_1.jpg"},
	}
	resolver := NewAvatarResolver(api, "123:token")

	url := resolver.AvatarURL(42)
	assert.Equal(t, "https://api.telegram.org/file/bot123:token/photos/file_1.jpg", url)
}

func TestAvatarURLDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name string
		api  *fakeTelegram
	}{
		{"нет фотографий", &fakeTelegram{}},
		{"ошибка получения фото", &fakeTelegram{photosErr: errors.New("telegram down")}},
		{
			"ошибка получения файла",
			&fakeTelegram{
				photos: tgbotapi.UserProfilePhotos{
					TotalCount: 1,
					Photos:     [][]tgbotapi.PhotoSize{{{FileID: "small"}}},
				},
				fileErr: errors.New("file expired"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewAvatarResolver(tt.api, "123:token")
			assert.Empty(t, resolver.AvatarURL(42))
		})
	}
}
