package cache

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// Storage is a fiber.Storage that can report its health.
type Storage interface {
	fiber.Storage
	HealthCheck(ctx context.Context) error
}

var (
	_ Storage = (*RedisStorage)(nil)
	_ Storage = (*MemoryStorage)(nil)
)

// Backend names the storage kind for health output.
func Backend(s Storage) string {
	switch s.(type) {
	case *RedisStorage:
		return "redis"
	case *MemoryStorage:
		return "memory"
	default:
		return "unknown"
	}
}
