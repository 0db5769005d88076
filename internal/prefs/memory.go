package prefs

import (
	"context"
	"sort"
	"sync"
)

type prefKey struct{ category, name string }

// MemoryStore keeps preferences in a map. Used when no database path is
// configured, and in tests.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[prefKey]string
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[prefKey]string{}}
}

func (s *MemoryStore) Get(_ context.Context, category, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[prefKey{category, name}]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) Set(_ context.Context, category, name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[prefKey{category, name}] = value
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, category, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, prefKey{category, name})
	return nil
}

// List returns the category's preferences sorted by name.
func (s *MemoryStore) List(_ context.Context, category string) ([]Preference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Preference
	for k, v := range s.values {
		if k.category == category {
			out = append(out, Preference{Category: k.category, Name: k.name, Value: v})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryStore) Close() error { return nil }
