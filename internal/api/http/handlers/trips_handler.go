package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/travel-planner/internal/api/dto"
	"github.com/spec-kit/travel-planner/internal/auth"
	"github.com/spec-kit/travel-planner/internal/domain"
	"github.com/spec-kit/travel-planner/internal/service"
	apperrors "github.com/spec-kit/travel-planner/pkg/util"
)

// TripsHandler manages trip endpoints.
type TripsHandler struct {
	service *service.TripService
}

// NewTripsHandler constructs handler.
func NewTripsHandler(tripService *service.TripService) *TripsHandler {
	return &TripsHandler{service: tripService}
}

// CreateTrip POST /api/trips.
func (h *TripsHandler) CreateTrip(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateTripRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	trip, err := h.service.CreateTrip(c.Context(), user.ID, service.TripCreateInput{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		Budget:      req.Budget,
		Activities:  activities(req.Activities),
		Notes:       req.Notes,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(trip)
}

// ListTrips GET /api/trips.
func (h *TripsHandler) ListTrips(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	trips, err := h.service.ListTrips(c.Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(trips)
}

// GetTrip GET /api/trips/:id.
func (h *TripsHandler) GetTrip(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	trip, err := h.service.GetTrip(c.Context(), user.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(trip)
}

// UpdateTrip PUT /api/trips/:id.
func (h *TripsHandler) UpdateTrip(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateTripRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.TripUpdateInput{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		Budget:      req.Budget,
		Notes:       req.Notes,
		IsPublic:    req.IsPublic,
	}
	if req.Activities != nil {
		input.Activities = activities(req.Activities)
	}

	trip, err := h.service.UpdateTrip(c.Context(), user.ID, c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(trip)
}

// DeleteTrip DELETE /api/trips/:id.
func (h *TripsHandler) DeleteTrip(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	if err := h.service.DeleteTrip(c.Context(), user.ID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "msg": "Trip removed"})
}

func activities(payloads []dto.ActivityPayload) []domain.Activity {
	out := make([]domain.Activity, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, domain.Activity{
			Name:     p.Name,
			Date:     p.Date,
			Time:     p.Time,
			Location: p.Location,
			Notes:    p.Notes,
		})
	}
	return out
}
