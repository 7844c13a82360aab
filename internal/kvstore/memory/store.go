// Package memory provides an in-memory kvstore.Store. It is the zero-setup
// default driver and the store used throughout the unit tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/semana-app/semana/internal/kvstore"
)

// Store keeps all values in a map guarded by a RWMutex.
type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{data: make(map[string]string)}
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return "", kvstore.ErrKeyNotFound
	}
	return value, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

func (s *Store) Keys(_ context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for key := range s.data {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *Store) Close() error {
	return nil
}
