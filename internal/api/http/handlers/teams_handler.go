package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/travel-planner/internal/api/dto"
	"github.com/spec-kit/travel-planner/internal/auth"
	"github.com/spec-kit/travel-planner/internal/service"
	apperrors "github.com/spec-kit/travel-planner/pkg/util"
)

// TeamsHandler manages team endpoints.
type TeamsHandler struct {
	service *service.TeamService
}

// NewTeamsHandler constructs handler.
func NewTeamsHandler(teamService *service.TeamService) *TeamsHandler {
	return &TeamsHandler{service: teamService}
}

// CreateTeam POST /api/teams.
func (h *TeamsHandler) CreateTeam(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	team, err := h.service.CreateTeam(c.Context(), user, req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(team)
}

// ListTeams GET /api/teams.
func (h *TeamsHandler) ListTeams(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	teams, err := h.service.ListTeams(c.Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(teams)
}

// GetTeam GET /api/teams/:teamId.
func (h *TeamsHandler) GetTeam(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	team, err := h.service.GetTeam(c.Context(), user.ID, c.Params("teamId"))
	if err != nil {
		return err
	}
	return c.JSON(team)
}

// UpdateTeam PUT /api/teams/:teamId.
func (h *TeamsHandler) UpdateTeam(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	team, err := h.service.UpdateTeam(c.Context(), user.ID, c.Params("teamId"), req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(team)
}

// AddMember POST /api/teams/:teamId/members.
func (h *TeamsHandler) AddMember(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.AddMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	team, err := h.service.AddMember(c.Context(), user.ID, c.Params("teamId"), req.UserIDToAdd)
	if err != nil {
		return err
	}
	return c.JSON(team)
}

// RemoveMember DELETE /api/teams/:teamId/members/:memberId.
func (h *TeamsHandler) RemoveMember(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}

	team, deleted, err := h.service.RemoveMember(c.Context(), user.ID, c.Params("teamId"), c.Params("memberId"))
	if err != nil {
		return err
	}
	if deleted {
		return c.JSON(fiber.Map{"success": true, "msg": "Member removed and team deleted as it has no members left."})
	}
	return c.JSON(team)
}

// DeleteTeam DELETE /api/teams/:teamId.
func (h *TeamsHandler) DeleteTeam(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	if err := h.service.DeleteTeam(c.Context(), user.ID, c.Params("teamId")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "msg": "Team deleted successfully"})
}
