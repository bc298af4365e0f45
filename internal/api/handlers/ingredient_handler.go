package handlers

import (
	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/internal/api/presenters"
	"Meal-Planner-Backend/pkg/ingredient"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	IngredientHandler interface {
		IdentifyIngredients(c *fiber.Ctx) error
	}

	ingredientHandler struct {
		ingredientService ingredient.IngredientService
	}
)

func NewIngredientHandler(ingredientService ingredient.IngredientService) IngredientHandler {
	return &ingredientHandler{ingredientService: ingredientService}
}

func (h *ingredientHandler) IdentifyIngredients(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenters.PlainErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedNoImage, nil)
	}

	file, err := readFormFile("file", fh)
	if err != nil {
		log.Errorf("read ingredient photo: %v", err)
		return presenters.PlainErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedIdentify, nil)
	}

	res, err := h.ingredientService.IdentifyIngredients(c.Context(), file, sessionUser(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoImage):
			return presenters.PlainErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedNoImage, nil)
		case errors.Is(err, domain.ErrNotImage):
			return presenters.PlainErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedNotImage, nil)
		case errors.Is(err, domain.ErrBackendUnavailable):
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedIdentify, err)
		}
		log.Errorf("identify ingredients: %v", err)
		return presenters.PlainErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedIdentify, nil)
	}
	return presenters.JSONResponse(c, fiber.StatusOK, res)
}
