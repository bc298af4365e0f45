package handlers

import (
	"Meal-Planner-Backend/pkg/backend"
	"Meal-Planner-Backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	HealthHandler interface {
		Ping(c *fiber.Ctx) error
		Health(c *fiber.Ctx) error
	}

	healthHandler struct {
		userRepository user.UserRepository
		client         backend.Client
	}
)

func NewHealthHandler(userRepository user.UserRepository, client backend.Client) HealthHandler {
	return &healthHandler{
		userRepository: userRepository,
		client:         client,
	}
}

func (h *healthHandler) Ping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "pong"})
}

// Health reports 503 only when the database is unreachable. An unavailable AI
// backend is reported but tolerated.
func (h *healthHandler) Health(c *fiber.Ctx) error {
	status := fiber.StatusOK
	database := "ok"
	if err := h.userRepository.Ping(c.Context()); err != nil {
		log.Errorf("health: database ping: %v", err)
		database = "unavailable"
		status = fiber.StatusServiceUnavailable
	}

	aiBackend := "ok"
	if err := h.client.Health(c.Context()); err != nil {
		log.Warnf("health: AI backend: %v", err)
		aiBackend = "unavailable"
	}

	return c.Status(status).JSON(fiber.Map{
		"success":    status == fiber.StatusOK,
		"database":   database,
		"ai_backend": aiBackend,
	})
}
