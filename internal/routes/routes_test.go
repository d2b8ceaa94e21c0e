package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vatcalc/internal/models"
	"vatcalc/internal/repositories/cache"
	"vatcalc/internal/services/vat"
)

func newApp(limit int) *fiber.App {
	registry := models.DefaultRegistry()
	metrics := vat.NewAtomicMetricsCollector()

	app := fiber.New()
	SetupRoutes(app, Deps{
		Service:         vat.NewService(registry, metrics, nil),
		Stats:           metrics,
		Storage:         cache.NewMemoryStorage(time.Minute),
		Countries:       registry.Len(),
		RateLimitMax:    limit,
		RateLimitWindow: time.Minute,
	})
	return app
}

func TestSetupRoutes(t *testing.T) {
	app := newApp(100)

	for _, path := range []string{
		"/",
		"/health",
		"/api/stats",
		"/api/countries",
		"/api/countries/ID",
		"/api/countries/ID/defaults",
		"/api/calculate?country=PH&amount=560&flat_fee=6&percent_fee=2",
	} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestSetupRoutes_CalculateIsRateLimited(t *testing.T) {
	app := newApp(1)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/calculate", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/calculate", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/countries", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
