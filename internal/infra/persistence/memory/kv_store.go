// Package memory implements an in-process key-value store.
package memory

import (
	"context"
	"slices"
	"sync"

	"cheeserater/internal/domain/repository"
	"cheeserater/internal/infra/persistence/watch"
)

type kvStore struct {
	mu     sync.RWMutex
	values map[string][]byte
	hub    *watch.Hub
}

// NewKVStore creates an empty in-memory store. Contents are lost on exit.
func NewKVStore() repository.KVStore {
	return &kvStore{
		values: make(map[string][]byte),
		hub:    watch.NewHub(),
	}
}

func (s *kvStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, repository.ErrKeyNotFound
	}

	return slices.Clone(value), nil
}

func (s *kvStore) Set(_ context.Context, key string, value []byte) error {
	stored := slices.Clone(value)

	s.mu.Lock()
	s.values[key] = stored
	s.mu.Unlock()

	s.hub.Publish(key, slices.Clone(stored))

	return nil
}

func (s *kvStore) Subscribe(ctx context.Context, key string) (<-chan []byte, error) {
	return s.hub.Subscribe(ctx, key), nil
}

func (s *kvStore) Close() error {
	s.hub.Close()

	return nil
}
