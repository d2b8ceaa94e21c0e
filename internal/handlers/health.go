package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"vatcalc/internal/repositories/cache"
	"vatcalc/internal/services/vat"
)

const Version = "1.0.0"

// StatsProvider exposes collected calculation counters.
type StatsProvider interface {
	Snapshot() vat.Stats
}

type HealthHandler struct {
	storage   cache.Storage
	stats     StatsProvider
	countries int
}

func NewHealthHandler(storage cache.Storage, stats StatsProvider, countries int) *HealthHandler {
	return &HealthHandler{storage: storage, stats: stats, countries: countries}
}

func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status, code := "ok", fiber.StatusOK
	storageStatus := "connected"
	if err := h.storage.HealthCheck(ctx); err != nil {
		status, code = "degraded", fiber.StatusServiceUnavailable
		storageStatus = err.Error()
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    status,
		"version":   Version,
		"countries": h.countries,
		"services": fiber.Map{
			"limiter_storage": cache.Backend(h.storage),
			"storage_status":  storageStatus,
		},
	})
}

func (h *HealthHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"stats": h.stats.Snapshot(),
	})
}
