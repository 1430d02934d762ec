package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/travel-planner/internal/api/dto"
	"github.com/spec-kit/travel-planner/internal/auth"
	"github.com/spec-kit/travel-planner/internal/service"
	apperrors "github.com/spec-kit/travel-planner/pkg/util"
)

// SettingsHandler manages account settings endpoints.
type SettingsHandler struct {
	service *service.AuthService
}

// NewSettingsHandler constructs handler.
func NewSettingsHandler(authService *service.AuthService) *SettingsHandler {
	return &SettingsHandler{service: authService}
}

// GetProfile GET /api/settings/profile.
func (h *SettingsHandler) GetProfile(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	return c.JSON(user)
}

// UpdateProfile PUT /api/settings/profile.
func (h *SettingsHandler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	updated, err := h.service.UpdateProfile(c.Context(), user, service.ProfileUpdateInput{
		Name:     req.Name,
		Email:    req.Email,
		Username: req.Username,
	})
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

// ChangePassword PUT /api/settings/password.
func (h *SettingsHandler) ChangePassword(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if err := h.service.ChangePassword(c.Context(), user, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "msg": "Password updated successfully"})
}
