package testutil

import (
	"context"
	"sync"

	"stockdesk/internal/cache"
)

// MemoryStore is an in-memory cache.Store for tests.
type MemoryStore struct {
	mu    sync.Mutex
	slots map[string][]byte
	// SetCalls counts writes, for asserting write-through behavior.
	SetCalls int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, ok := s.slots[key]
	if !ok {
		return nil, cache.ErrMiss
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	s.slots[key] = stored
	s.SetCalls++
	return nil
}

// Seed places a raw payload into a slot without counting it as a write.
func (s *MemoryStore) Seed(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = value
}

// FailingStore returns the configured error from every operation.
type FailingStore struct {
	Err error
}

func (s *FailingStore) Get(context.Context, string) ([]byte, error) {
	return nil, s.Err
}

func (s *FailingStore) Set(context.Context, string, []byte) error {
	return s.Err
}
