// Package routes defines the API routing configuration.
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"vatcalc/internal/handlers"
	"vatcalc/internal/middleware"
	"vatcalc/internal/repositories/cache"
	"vatcalc/internal/services/vat"
)

// Deps carries what the routes need from main.
type Deps struct {
	Service         vat.Service
	Stats           handlers.StatsProvider
	Storage         cache.Storage
	Countries       int
	RateLimitMax    int
	RateLimitWindow time.Duration
	Logger          *zap.Logger
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, deps Deps) {
	calculatorHandler := handlers.NewCalculatorHandler(deps.Service, deps.Logger)
	healthHandler := handlers.NewHealthHandler(deps.Storage, deps.Stats, deps.Countries)

	app.Get("/health", healthHandler.HealthCheck)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to the VAT calculator API",
			"version": handlers.Version,
			"docs":    "/api",
		})
	})

	api := app.Group("/api")
	api.Get("/stats", healthHandler.Stats)

	countries := api.Group("/countries")
	countries.Get("/", calculatorHandler.ListCountries)
	countries.Get("/:code", calculatorHandler.GetCountry)
	countries.Get("/:code/defaults", calculatorHandler.CountryDefaults)

	calculate := api.Group("/calculate", middleware.RateLimiter(deps.RateLimitMax, deps.RateLimitWindow, deps.Storage))
	calculate.Get("/", calculatorHandler.CalculateQuery)
	calculate.Post("/", calculatorHandler.Calculate)
}
