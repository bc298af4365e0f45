package handlers

import (
	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/internal/api/presenters"
	"Meal-Planner-Backend/pkg/food"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	FoodHandler interface {
		AnalyzeFoodMacros(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
	}
)

func NewFoodHandler(foodService food.FoodService) FoodHandler {
	return &foodHandler{foodService: foodService}
}

func (h *foodHandler) AnalyzeFoodMacros(c *fiber.Ctx) error {
	multipartForm, err := c.MultipartForm()
	if err != nil {
		log.Errorf("analyze-food-macros form: %v", err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAnalyzeImage, nil)
	}

	form, err := readForm(multipartForm)
	if err != nil {
		log.Errorf("analyze-food-macros read: %v", err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAnalyzeImage, nil)
	}

	res, err := h.foodService.AnalyzeFoodMacros(c.Context(), form, sessionUser(c))
	if err != nil {
		if errors.Is(err, domain.ErrBackendUnavailable) {
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedAnalyzeImage, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAnalyzeImage, nil)
	}
	return presenters.JSONResponse(c, fiber.StatusOK, res)
}
