// Package memory implements kv.Store on a process-local map. It backs unit
// tests and the "memory" driver for throwaway runs.
package memory

import (
	"context"
	"sync"

	"github.com/finwise/finwise-server/internal/kv"
)

// MemoryStore implements kv.Store with copy-on-read/write semantics so callers
// can never alias the stored bytes.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() kv.Store {
	return &MemoryStore{collections: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, collection string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.collections[collection]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (s *MemoryStore) Set(ctx context.Context, collection string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = stored
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collections, collection)
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }
