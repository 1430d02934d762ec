package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/travel-planner/internal/service"
)

// ExploreHandler serves the public trip discovery endpoints. No auth required.
type ExploreHandler struct {
	service *service.ExploreService
}

// NewExploreHandler constructs handler.
func NewExploreHandler(exploreService *service.ExploreService) *ExploreHandler {
	return &ExploreHandler{service: exploreService}
}

// ListPublicTrips GET /api/explore/trips.
func (h *ExploreHandler) ListPublicTrips(c *fiber.Ctx) error {
	trips, err := h.service.ListPublicTrips(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(trips)
}

// GetPublicTrip GET /api/explore/trips/:id.
func (h *ExploreHandler) GetPublicTrip(c *fiber.Ctx) error {
	trip, err := h.service.GetPublicTrip(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(trip)
}
