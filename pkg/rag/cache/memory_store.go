package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore is a process-local cache backend for deployments without
// Redis. Entries do not survive a restart.
type MemoryStore struct {
	inner *gocache.Cache
}

func NewMemoryStore(defaultTTL time.Duration) *MemoryStore {
	return &MemoryStore{
		inner: gocache.New(defaultTTL, 10*time.Minute),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	value, found := s.inner.Get(key)
	if !found {
		return "", nil
	}
	text, ok := value.(string)
	if !ok {
		return "", nil
	}
	return text, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	s.inner.Set(key, value, ttl)
	return nil
}
