package store

import (
	"context"
	"sync"
)

// MemoryStore holds the snapshot and keyed state in memory. Useful in
// tests and for running without persistence.
type MemoryStore struct {
	mu     sync.Mutex
	data   []byte
	states map[string][]byte
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string][]byte)}
}

// LoadLayout returns (nil, nil) before the first save.
func (s *MemoryStore) LoadLayout() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, nil
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

// SaveLayout keeps a copy of data.
func (s *MemoryStore) SaveLayout(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	return nil
}

// ReadState returns the value saved under key, or (nil, nil) when absent.
func (s *MemoryStore) ReadState(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.states[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

// WriteState keeps a copy of value under key.
func (s *MemoryStore) WriteState(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[key] = append([]byte(nil), value...)
	return nil
}
