// file: repository/memory_storage.go

package repository

import (
	"context"
	"sync"
)

// MemoryStorage keeps items in process memory. The session does not survive a restart.
type MemoryStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: make(map[string]string)}
}

func (s *MemoryStorage) GetItem(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[key]
	if !ok {
		return "", ErrItemNotFound
	}
	return value, nil
}

func (s *MemoryStorage) SetItems(_ context.Context, items map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range items {
		s.items[key] = value
	}
	return nil
}

func (s *MemoryStorage) RemoveItems(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.items, key)
	}
	return nil
}
