package storage

import (
	"context"
	"sync"

	"github.com/Veraticus/studmoney/internal/common"
)

// MemoryStorage is a process-local KeyValueStore used by tests and the
// "memory" backend.
type MemoryStorage struct {
	data   map[string][]byte
	mu     sync.RWMutex
	closed bool
}

// NewMemoryStorage creates an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

// Save stores a copy of value under key.
func (m *MemoryStorage) Save(ctx context.Context, key string, value []byte) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return common.ErrStorageClosed
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

// Load returns a copy of the value under key.
func (m *MemoryStorage) Load(ctx context.Context, key string) ([]byte, bool, error) {
	if err := validateContext(ctx); err != nil {
		return nil, false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, false, common.ErrStorageClosed
	}
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Close marks the store closed.
func (m *MemoryStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
