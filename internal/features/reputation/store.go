// Package reputation — store.go описывает узкий контракт хранилища записей.
package reputation

import "context"

// Store — хранилище записей репутации. Пяти операций достаточно для всей логики.
//
// IncrementScore обязан быть атомарным по записи участника (одно UPDATE-выражение
// или эквивалентная сериализация), иначе параллельная обработка событий теряет очки.
type Store interface {
	// FindByTelegramID возвращает запись или common.ErrRecordNotFound.
	FindByTelegramID(ctx context.Context, telegramID int64) (*Record, error)
	// Create создаёт запись; telegram_id уникален, вторая запись на участника невозможна.
	Create(ctx context.Context, rec *Record) (*Record, error)
	// IncrementScore увеличивает репутацию на 1 и возвращает запись после изменения.
	IncrementScore(ctx context.Context, telegramID int64) (*Record, error)
	// Delete удаляет запись участника. Отсутствие записи — не ошибка.
	Delete(ctx context.Context, telegramID int64) error
	// ListAll возвращает все записи в порядке создания.
	ListAll(ctx context.Context) ([]*Record, error)
}
