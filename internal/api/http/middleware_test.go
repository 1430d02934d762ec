package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/travel-planner/internal/config"
	"github.com/spec-kit/travel-planner/internal/observability"
	apperrors "github.com/spec-kit/travel-planner/pkg/util"
)

func newMiddlewareApp(t *testing.T) (*fiber.App, *observability.Metrics) {
	t.Helper()
	metrics := observability.NewMetrics()
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), metrics, 5*time.Second, config.CORSConfig{
		AllowedOrigins: "http://localhost:5173",
	})
	return app, metrics
}

func decodeBody(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestErrorHandling_DomainErrorEnvelope(t *testing.T) {
	t.Parallel()

	app, _ := newMiddlewareApp(t)
	app.Get("/forbidden", func(c *fiber.Ctx) error {
		return apperrors.NewForbidden("Not authorized to view this trip")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/forbidden", nil))
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Not authorized to view this trip", body["msg"])
}

func TestErrorHandling_ValidationDetails(t *testing.T) {
	t.Parallel()

	app, _ := newMiddlewareApp(t)
	app.Post("/invalid", func(c *fiber.Ctx) error {
		return apperrors.NewValidationError("Please add a destination", map[string]any{"field": "destination"})
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/invalid", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "Please add a destination", body["msg"])
	details, ok := body["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "destination", details["field"])
}

func TestErrorHandling_OpaqueInternal(t *testing.T) {
	t.Parallel()

	app, _ := newMiddlewareApp(t)
	app.Get("/boom", func(c *fiber.Ctx) error {
		return assertableError("database exploded at 10.0.0.3")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "Server Error", body["msg"])
}

func TestErrorHandling_PanicRecovery(t *testing.T) {
	t.Parallel()

	app, _ := newMiddlewareApp(t)
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("unexpected")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Server Error", body["msg"])
}

func TestErrorHandling_RecordsErrorMetric(t *testing.T) {
	t.Parallel()

	app, metrics := newMiddlewareApp(t)
	app.Get("/missing", func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("Trip", nil)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)

	// The request counter records the mapped status.
	totals := metrics.RequestTotals()
	assert.Equal(t, int64(1), totals["/missing|GET|404"])
}

type assertableError string

func (e assertableError) Error() string { return string(e) }
