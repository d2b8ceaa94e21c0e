package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStorage implements fiber.Storage in process, for single instance
// deployments without Redis.
type MemoryStorage struct {
	items *gocache.Cache
}

func NewMemoryStorage(cleanupInterval time.Duration) *MemoryStorage {
	return &MemoryStorage{items: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

func (s *MemoryStorage) Get(key string) ([]byte, error) {
	val, ok := s.items.Get(key)
	if !ok {
		return nil, nil
	}
	return val.([]byte), nil
}

// Set stores a copy of val; fiber reuses its buffers. exp <= 0 never expires.
func (s *MemoryStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	if exp <= 0 {
		exp = gocache.NoExpiration
	}
	buf := make([]byte, len(val))
	copy(buf, val)
	s.items.Set(key, buf, exp)
	return nil
}

func (s *MemoryStorage) Delete(key string) error {
	s.items.Delete(key)
	return nil
}

func (s *MemoryStorage) Reset() error {
	s.items.Flush()
	return nil
}

func (s *MemoryStorage) Close() error {
	return nil
}

func (s *MemoryStorage) HealthCheck(context.Context) error {
	return nil
}
