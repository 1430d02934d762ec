package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/travel-planner/internal/persistence"
)

// HealthHandler exposes liveness and readiness probes.
type HealthHandler struct {
	mongo *persistence.Mongo
	redis *persistence.Redis
}

// NewHealthHandler constructs handler.
func NewHealthHandler(mongo *persistence.Mongo, redis *persistence.Redis) *HealthHandler {
	return &HealthHandler{mongo: mongo, redis: redis}
}

// Live GET /health/live. Always OK while the process is serving.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready GET /health/ready. Checks the document store; the cache is reported
// but optional, so a down Redis does not fail readiness.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	checks := fiber.Map{"mongo": "ok", "redis": "ok"}
	overall := "ok"
	status := http.StatusOK

	if err := h.mongo.Ping(ctx); err != nil {
		checks["mongo"] = err.Error()
		overall = "degraded"
		status = http.StatusServiceUnavailable
	}
	if err := h.redis.Ping(ctx); err != nil {
		checks["redis"] = err.Error()
	}

	return c.Status(status).JSON(fiber.Map{"status": overall, "checks": checks})
}
