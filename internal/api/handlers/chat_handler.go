package handlers

import (
	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/internal/api/presenters"
	"Meal-Planner-Backend/pkg/chat"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	ChatHandler interface {
		Chat(c *fiber.Ctx) error
	}

	chatHandler struct {
		chatService chat.ChatService
	}
)

func NewChatHandler(chatService chat.ChatService) ChatHandler {
	return &chatHandler{chatService: chatService}
}

func (h *chatHandler) Chat(c *fiber.Ctx) error {
	var req domain.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.PlainErrorResponse(c, fiber.StatusInternalServerError, domain.MessageInternalServerError, err)
	}

	res, err := h.chatService.Chat(c.Context(), req, sessionUser(c))
	if err != nil {
		var upstream *domain.UpstreamError
		if errors.As(err, &upstream) {
			return c.Status(upstream.StatusCode).JSON(fiber.Map{
				"error":   domain.MessageFailedChatUpstream,
				"details": upstream.Body,
			})
		}
		return presenters.PlainErrorResponse(c, fiber.StatusInternalServerError, domain.MessageInternalServerError, err)
	}
	return presenters.JSONResponse(c, fiber.StatusOK, res)
}
