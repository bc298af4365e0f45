package chat

import (
	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/pkg/backend"
	"Meal-Planner-Backend/pkg/ingredient"
	"context"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

const DefaultInitialMessage = "I'd like a meal plan"

type (
	ChatService interface {
		Chat(ctx context.Context, req domain.ChatRequest, sessionUser string) (json.RawMessage, error)
	}

	chatService struct {
		client backend.Client
	}
)

func NewChatService(client backend.Client) ChatService {
	return &chatService{client: client}
}

// PrepareRequest fills the defaults the AI backend expects. The opening
// message of a conversation carries a single merged ingredient list.
func PrepareRequest(req domain.ChatRequest, sessionUser string) domain.ChatRequest {
	if req.UserID == "" {
		req.UserID = sessionUser
	}
	if req.UserID == "" {
		req.UserID = uuid.NewString()
	}

	if !req.IsInitialMessage {
		return req
	}

	if strings.TrimSpace(req.Message) == "" {
		req.Message = DefaultInitialMessage
	}
	req.Ingredients = ingredient.MergeIngredients(req.Ingredients, req.ManualIngredients)
	req.ManualIngredients = nil
	return req
}

func (s *chatService) Chat(ctx context.Context, req domain.ChatRequest, sessionUser string) (json.RawMessage, error) {
	req = PrepareRequest(req, sessionUser)

	res, err := s.client.Chat(ctx, req)
	if err != nil {
		log.Errorf("chat upstream for %s: %v", req.UserID, err)
		return nil, err
	}
	return res, nil
}
