package reputation

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// fakeTelegram — подмена Telegram API для тестов.
// Покрывает все три среза: Sender, ChatMemberAPI, ProfilePhotoAPI.
type fakeTelegram struct {
	memberStatus string
	memberErr    error
	memberCalls  int

	photos    tgbotapi.UserProfilePhotos
	photosErr error
	file      tgbotapi.File
	fileErr   error

	sent    []tgbotapi.Chattable
	sendErr error
}

func (f *fakeTelegram) GetChatMember(_ tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error) {
	f.memberCalls++
	if f.memberErr != nil {
		return tgbotapi.ChatMember{}, f.memberErr
	}
	status := f.memberStatus
	if status == "" {
		status = "member"
	}
	return tgbotapi.ChatMember{Status: status}, nil
}

func (f *fakeTelegram) GetUserProfilePhotos(_ tgbotapi.UserProfilePhotosConfig) (tgbotapi.UserProfilePhotos, error) {
	if f.photosErr != nil {
		return tgbotapi.UserProfilePhotos{}, f.photosErr
	}
	return f.photos, nil
}

func (f *fakeTelegram) GetFile(_ tgbotapi.FileConfig) (tgbotapi.File, error) {
	if f.fileErr != nil {
		return tgbotapi.File{}, f.fileErr
	}
	return f.file, nil
}

func (f *fakeTelegram) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.sendErr != nil {
		return tgbotapi.Message{}, f.sendErr
	}
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

// sentTexts возвращает тексты отправленных сообщений.
func (f *fakeTelegram) sentTexts() []string {
	var out []string
	for _, c := range f.sent {
		if msg, ok := c.(tgbotapi.MessageConfig); ok {
			out = append(out, msg.Text)
		}
	}
	return out
}
