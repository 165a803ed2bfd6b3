// Package reputation — service.go содержит бизнес-логику начисления.
package reputation

import (
	"context"
	"errors"
	"sort"

	log "github.com/sirupsen/logrus"

	"skillblog.ru/reputation-bot/internal/common"
)

// Service применяет классифицированные события к хранилищу.
type Service struct {
	store Store
}

// NewService создаёт сервис репутации.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Credit начисляет +1 репутации участнику и возвращает запись после изменения.
//
// Первая благодарность создаёт запись с очками 1 и переданными полями профиля.
// Последующие только увеличивают счётчик: username/имя/аватарка при инкременте
// не обновляются.
//
// Повторная доставка одного и того же события платформой НЕ дедуплицируется:
// каждая доставка = +1. Принятое ограничение.
func (s *Service) Credit(ctx context.Context, target Member, avatarURL string) (*Record, error) {
	rec, err := s.store.IncrementScore(ctx, target.TelegramID)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, common.ErrRecordNotFound) {
		return nil, err
	}

	created, err := s.store.Create(ctx, &Record{
		TelegramID: target.TelegramID,
		Username:   target.Username,
		FullName:   target.FullName(),
		AvatarURL:  avatarURL,
		Reputation: 1,
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"telegram_id": target.TelegramID,
		"username":    target.Username,
	}).Info("Создана запись репутации")

	return created, nil
}

// Remove удаляет запись ушедшего участника.
// Уход участника без истории благодарностей — обычное дело, не ошибка.
func (s *Service) Remove(ctx context.Context, telegramID int64) error {
	_, err := s.store.FindByTelegramID(ctx, telegramID)
	if errors.Is(err, common.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, telegramID); err != nil {
		return err
	}

	log.WithField("telegram_id", telegramID).Info("Запись репутации удалена (участник ушёл)")
	return nil
}

// Leaderboard возвращает все записи по убыванию репутации.
// Сортировка стабильная: при равных очках сохраняется порядок хранилища,
// вторичного ключа сортировки нет.
func (s *Service) Leaderboard(ctx context.Context) ([]*Record, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Reputation > records[j].Reputation
	})
	return records, nil
}
