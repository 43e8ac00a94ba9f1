// Package store keeps presence-only markers keyed by string, the
// equivalent of the browser's local storage for read tracking.
package store

import (
	"context"
	"sync"
)

// Store is a presence-only key-value store.
type Store interface {
	Get(ctx context.Context, key string) (bool, error)
	Set(ctx context.Context, key string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

type memoryStore struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

// NewMemory returns an in-process store that forgets everything on exit.
func NewMemory() Store {
	return &memoryStore{keys: make(map[string]struct{})}
}

func (s *memoryStore) Get(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.keys[key]
	return ok, nil
}

func (s *memoryStore) Set(_ context.Context, key string) error {
	s.mu.Lock()
	s.keys[key] = struct{}{}
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.keys, key)
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Close() error { return nil }
