package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/travel-planner/internal/api/dto"
	"github.com/spec-kit/travel-planner/internal/auth"
	"github.com/spec-kit/travel-planner/internal/repository"
	"github.com/spec-kit/travel-planner/internal/service"
	apperrors "github.com/spec-kit/travel-planner/pkg/util"
)

// AnnouncementsHandler manages announcement endpoints.
type AnnouncementsHandler struct {
	service *service.AnnouncementService
}

// NewAnnouncementsHandler constructs handler.
func NewAnnouncementsHandler(announcementService *service.AnnouncementService) *AnnouncementsHandler {
	return &AnnouncementsHandler{service: announcementService}
}

// Create POST /api/announcements.
func (h *AnnouncementsHandler) Create(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	announcement, err := h.service.Create(c.Context(), user, service.AnnouncementCreateInput{
		Title:    req.Title,
		Content:  req.Content,
		Type:     req.Type,
		Priority: req.Priority,
		Tags:     req.Tags,
		Pinned:   req.Pinned,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(announcement)
}

// List GET /api/announcements.
func (h *AnnouncementsHandler) List(c *fiber.Ctx) error {
	filter := repository.AnnouncementFilter{
		Type:   c.Query("type"),
		Search: c.Query("search"),
	}
	announcements, err := h.service.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(announcements)
}

// Get GET /api/announcements/:id.
func (h *AnnouncementsHandler) Get(c *fiber.Ctx) error {
	announcement, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(announcement)
}

// Update PUT /api/announcements/:id.
func (h *AnnouncementsHandler) Update(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	announcement, err := h.service.Update(c.Context(), user.ID, c.Params("id"), service.AnnouncementUpdateInput{
		Title:    req.Title,
		Content:  req.Content,
		Type:     req.Type,
		Priority: req.Priority,
		Tags:     req.Tags,
		Pinned:   req.Pinned,
	})
	if err != nil {
		return err
	}
	return c.JSON(announcement)
}

// Delete DELETE /api/announcements/:id.
func (h *AnnouncementsHandler) Delete(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	if err := h.service.Delete(c.Context(), user.ID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "msg": "Announcement deleted"})
}
