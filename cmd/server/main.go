// Package main is the entry point of the HTTP API.
// It loads configuration, builds the calculation service and serves it.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"vatcalc/internal/config"
	applog "vatcalc/internal/logger"
	"vatcalc/internal/middleware"
	"vatcalc/internal/models"
	"vatcalc/internal/repositories/cache"
	"vatcalc/internal/routes"
	"vatcalc/internal/services/vat"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	zl, err := applog.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	registry, err := models.LoadRegistry(cfg.CountriesFile)
	if err != nil {
		zl.Fatal("Failed to load countries", zap.String("file", cfg.CountriesFile), zap.Error(err))
	}
	zl.Info("Countries loaded", zap.Int("count", registry.Len()))

	storage := newLimiterStorage(cfg, zl)
	defer func() {
		if err := storage.Close(); err != nil {
			zl.Warn("Failed to close limiter storage", zap.Error(err))
		}
	}()

	metrics := vat.NewAtomicMetricsCollector()
	svc := vat.NewService(registry, metrics, zl)

	app := fiber.New(fiber.Config{
		AppName:               "vatcalc",
		DisableStartupMessage: cfg.IsProduction(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,HEAD,OPTIONS",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${locals:requestid}\n",
	}))

	routes.SetupRoutes(app, routes.Deps{
		Service:         svc,
		Stats:           metrics,
		Storage:         storage,
		Countries:       registry.Len(),
		RateLimitMax:    cfg.RateLimitMax,
		RateLimitWindow: cfg.RateLimitWindow,
		Logger:          zl,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(ctx); err != nil {
			zl.Warn("Shutdown did not complete", zap.Error(err))
		}
	}()

	addr := ":" + strings.TrimPrefix(cfg.Port, ":")
	zl.Info("Starting server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		zl.Fatal("Server stopped", zap.Error(err))
	}
}

// newLimiterStorage uses Redis when configured and reachable, else memory.
func newLimiterStorage(cfg config.AppConfig, zl *zap.Logger) cache.Storage {
	if !cfg.Redis.Enabled() {
		return cache.NewMemoryStorage(cfg.RateLimitWindow)
	}

	client := cache.NewRedisClient(&cache.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	storage := cache.NewRedisStorage(client, "vatcalc:limiter:")

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := storage.HealthCheck(ctx); err != nil {
		zl.Warn("⚠️ Redis unavailable, falling back to in-memory rate limiting", zap.Error(err))
		_ = client.Close()
		return cache.NewMemoryStorage(cfg.RateLimitWindow)
	}

	zl.Info("✅ Redis limiter storage connected", zap.String("host", cfg.Redis.Host))
	return storage
}
