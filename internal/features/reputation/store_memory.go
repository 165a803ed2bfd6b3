// Package reputation — store_memory.go: хранилище в памяти.
// Используется в тестах вместо PostgreSQL; повторяет семантику репозитория,
// включая порядок ListAll (порядок создания) и атомарность инкремента.
package reputation

import (
	"context"
	"sync"

	"skillblog.ru/reputation-bot/internal/common"
)

// MemoryStore — потокобезопасное хранилище записей в памяти.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	order  []int64 // telegram_id в порядке создания
	byID   map[int64]*Record
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore создаёт пустое хранилище.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID: 1,
		byID:   make(map[int64]*Record),
	}
}

func (s *MemoryStore) FindByTelegramID(_ context.Context, telegramID int64) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[telegramID]
	if !ok {
		return nil, common.ErrRecordNotFound
	}
	cp := *rec
	return &cp, nil
}

func (s *MemoryStore) Create(_ context.Context, rec *Record) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *rec
	cp.ID = s.nextID
	s.nextID++
	s.byID[cp.TelegramID] = &cp
	s.order = append(s.order, cp.TelegramID)

	out := cp
	return &out, nil
}

func (s *MemoryStore) IncrementScore(_ context.Context, telegramID int64) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[telegramID]
	if !ok {
		return nil, common.ErrRecordNotFound
	}
	rec.Reputation++
	cp := *rec
	return &cp, nil
}

func (s *MemoryStore) Delete(_ context.Context, telegramID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[telegramID]; !ok {
		return nil
	}
	delete(s.byID, telegramID)
	for i, id := range s.order {
		if id == telegramID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) ListAll(_ context.Context) ([]*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Record, 0, len(s.order))
	for _, id := range s.order {
		cp := *s.byID[id]
		out = append(out, &cp)
	}
	return out, nil
}
