package storage

import (
	"context"
	"sync"
)

// MemoryStorage is an in-memory Storage. It backs unit tests and carries
// optional error injection for exercising failure paths.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte

	// GetErr and SetErr, when set, are returned by every call.
	GetErr error
	SetErr error
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

func (s *MemoryStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if s.GetErr != nil {
		return nil, false, s.GetErr
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	return value, ok, nil
}

func (s *MemoryStorage) Set(ctx context.Context, key string, value []byte) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}
