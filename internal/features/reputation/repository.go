// Package reputation — repository.go выполняет операции с таблицей reputations.
package reputation

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"skillblog.ru/reputation-bot/internal/common"
)

// Repository работает с таблицей reputations в PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// Репозиторий обязан удовлетворять контракту хранилища.
var _ Store = (*Repository)(nil)

// NewRepository создаёт репозиторий репутации.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// FindByTelegramID возвращает запись участника.
// Если записи нет — common.ErrRecordNotFound (errors.Is == true).
func (r *Repository) FindByTelegramID(ctx context.Context, telegramID int64) (*Record, error) {
	query := `
		SELECT id, telegram_id, username, full_name, avatar_url, reputation
		FROM reputations WHERE telegram_id = $1
	`
	var rec Record
	err := r.db.QueryRow(ctx, query, telegramID).Scan(
		&rec.ID, &rec.TelegramID, &rec.Username, &rec.FullName,
		&rec.AvatarURL, &rec.Reputation,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrRecordNotFound
		}
		return nil, fmt.Errorf("ошибка чтения записи (telegram_id=%d): %w", telegramID, err)
	}
	return &rec, nil
}

// Create добавляет новую запись репутации и возвращает её с присвоенным ID.
func (r *Repository) Create(ctx context.Context, rec *Record) (*Record, error) {
	query := `
		INSERT INTO reputations (telegram_id, username, full_name, avatar_url, reputation)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	created := *rec
	err := r.db.QueryRow(ctx, query,
		rec.TelegramID, rec.Username, rec.FullName, rec.AvatarURL, rec.Reputation,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания записи (telegram_id=%d): %w", rec.TelegramID, err)
	}
	return &created, nil
}

// IncrementScore увеличивает репутацию участника на 1 одним UPDATE.
// Чтение-потом-запись здесь недопустимо: при параллельных событиях очки терялись бы.
func (r *Repository) IncrementScore(ctx context.Context, telegramID int64) (*Record, error) {
	query := `
		UPDATE reputations
		SET reputation = reputation + 1
		WHERE telegram_id = $1
		RETURNING id, telegram_id, username, full_name, avatar_url, reputation
	`
	var rec Record
	err := r.db.QueryRow(ctx, query, telegramID).Scan(
		&rec.ID, &rec.TelegramID, &rec.Username, &rec.FullName,
		&rec.AvatarURL, &rec.Reputation,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrRecordNotFound
		}
		return nil, fmt.Errorf("ошибка инкремента репутации (telegram_id=%d): %w", telegramID, err)
	}
	return &rec, nil
}

// Delete удаляет запись участника. Если записи нет — молча ничего не делает.
func (r *Repository) Delete(ctx context.Context, telegramID int64) error {
	query := `DELETE FROM reputations WHERE telegram_id = $1`
	if _, err := r.db.Exec(ctx, query, telegramID); err != nil {
		return fmt.Errorf("ошибка удаления записи (telegram_id=%d): %w", telegramID, err)
	}
	return nil
}

// ListAll возвращает все записи в порядке создания (id ASC).
// Сортировку по очкам делает вызывающая сторона.
func (r *Repository) ListAll(ctx context.Context) ([]*Record, error) {
	query := `
		SELECT id, telegram_id, username, full_name, avatar_url, reputation
		FROM reputations
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса записей: %w", err)
	}
	defer rows.Close()

	var out []*Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID, &rec.TelegramID, &rec.Username, &rec.FullName,
			&rec.AvatarURL, &rec.Reputation,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки: %w", err)
		}
		out = append(out, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения строк: %w", err)
	}

	return out, nil
}
