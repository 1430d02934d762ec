package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/travel-planner/internal/api/dto"
	"github.com/spec-kit/travel-planner/internal/auth"
	"github.com/spec-kit/travel-planner/internal/service"
	apperrors "github.com/spec-kit/travel-planner/pkg/util"
)

// ChatHandler manages direct messaging endpoints.
type ChatHandler struct {
	service *service.ChatService
}

// NewChatHandler constructs handler.
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{service: chatService}
}

// SendMessage POST /api/chat/send/:receiverId.
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	msg, err := h.service.SendMessage(c.Context(), user, c.Params("receiverId"), req.Content)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(msg)
}

// GetConversation GET /api/chat/conversation/:otherUserId.
func (h *ChatHandler) GetConversation(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	msgs, err := h.service.Conversation(c.Context(), user, c.Params("otherUserId"))
	if err != nil {
		return err
	}
	return c.JSON(msgs)
}

// ListConversations GET /api/chat/conversations.
func (h *ChatHandler) ListConversations(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	conversations, err := h.service.RecentConversations(c.Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(conversations)
}

// MarkRead PUT /api/chat/read/:chatPartnerId.
func (h *ChatHandler) MarkRead(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	count, err := h.service.MarkRead(c.Context(), user.ID, c.Params("chatPartnerId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "msg": fmt.Sprintf("%d messages marked as read.", count)})
}
