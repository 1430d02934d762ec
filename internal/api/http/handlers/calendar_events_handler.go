package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/travel-planner/internal/api/dto"
	"github.com/spec-kit/travel-planner/internal/auth"
	"github.com/spec-kit/travel-planner/internal/service"
	apperrors "github.com/spec-kit/travel-planner/pkg/util"
)

// CalendarEventsHandler manages calendar endpoints.
type CalendarEventsHandler struct {
	service *service.CalendarService
}

// NewCalendarEventsHandler constructs handler.
func NewCalendarEventsHandler(calendarService *service.CalendarService) *CalendarEventsHandler {
	return &CalendarEventsHandler{service: calendarService}
}

// Create POST /api/calendar-events.
func (h *CalendarEventsHandler) Create(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateCalendarEventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	event, err := h.service.CreateEvent(c.Context(), user.ID, service.CalendarEventCreateInput{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		AllDay:      req.AllDay,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(event)
}

// List GET /api/calendar-events.
func (h *CalendarEventsHandler) List(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	events, err := h.service.ListEvents(c.Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(events)
}

// Get GET /api/calendar-events/:id.
func (h *CalendarEventsHandler) Get(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	event, err := h.service.GetEvent(c.Context(), user.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(event)
}

// Update PUT /api/calendar-events/:id.
func (h *CalendarEventsHandler) Update(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateCalendarEventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	event, err := h.service.UpdateEvent(c.Context(), user.ID, c.Params("id"), service.CalendarEventUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		AllDay:      req.AllDay,
	})
	if err != nil {
		return err
	}
	return c.JSON(event)
}

// Delete DELETE /api/calendar-events/:id.
func (h *CalendarEventsHandler) Delete(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	if err := h.service.DeleteEvent(c.Context(), user.ID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "msg": "Event removed"})
}
