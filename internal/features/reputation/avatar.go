// Package reputation — avatar.go достаёт ссылку на аватарку участника.
package reputation

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// ProfilePhotoAPI — часть Telegram API для получения фото профиля.
// Реализуется *tgbotapi.BotAPI.
type ProfilePhotoAPI interface {
	GetUserProfilePhotos(config tgbotapi.UserProfilePhotosConfig) (tgbotapi.UserProfilePhotos, error)
	GetFile(config tgbotapi.FileConfig) (tgbotapi.File, error)
}

// AvatarResolver превращает Telegram ID в ссылку на файл аватарки.
type AvatarResolver struct {
	api   ProfilePhotoAPI
	token string // токен бота — часть URL файла
}

// NewAvatarResolver создаёт резолвер аватарок.
func NewAvatarResolver(api ProfilePhotoAPI, token string) *AvatarResolver {
	return &AvatarResolver{api: api, token: token}
}

// AvatarURL возвращает ссылку на наименьший вариант первой фотографии профиля.
// Любой сбой (нет фото, ошибка API) деградирует до пустой строки —
// отсутствие аватарки не должно блокировать начисление репутации.
func (r *AvatarResolver) AvatarURL(userID int64) string {
	photos, err := r.api.GetUserProfilePhotos(tgbotapi.UserProfilePhotosConfig{UserID: userID})
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Debug("Не удалось получить фото профиля")
		return ""
	}
	if len(photos.Photos) == 0 || len(photos.Photos[0]) == 0 {
		return ""
	}

	// Первый элемент — наименьший размер фотографии
	fileID := photos.Photos[0][0].FileID
	file, err := r.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Debug("Не удалось получить файл аватарки")
		return ""
	}

	return fmt.Sprintf("https://api.telegram.org/file/bot%s/%s", r.token, file.FilePath)
}
