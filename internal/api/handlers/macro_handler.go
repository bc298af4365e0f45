package handlers

import (
	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/internal/api/presenters"
	"Meal-Planner-Backend/pkg/macro"
	"errors"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	MacroHandler interface {
		SaveMacros(c *fiber.Ctx) error
		GetUserMacros(c *fiber.Ctx) error
		GetUserWeeklyMacros(c *fiber.Ctx) error
	}

	macroHandler struct {
		macroService macro.MacroService
		validator    *validator.Validate
	}
)

func NewMacroHandler(macroService macro.MacroService, validator *validator.Validate) MacroHandler {
	return &macroHandler{
		macroService: macroService,
		validator:    validator,
	}
}

func macroError(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, domain.ErrUsernameRequired):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUsernameRequired, nil)
	case errors.Is(err, domain.ErrInvalidNumber):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, message, err)
	case errors.Is(err, domain.ErrInvalidDate):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidDate, err)
	case errors.Is(err, domain.ErrBackendUnavailable):
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, message, err)
	}
	log.Errorf("%s: %v", message, err)
	return presenters.ErrorResponse(c, fiber.StatusInternalServerError, message, nil)
}

func usernameParam(c *fiber.Ctx) string {
	raw := c.Params("username")
	if username, err := url.PathUnescape(raw); err == nil {
		return username
	}
	return raw
}

func (h *macroHandler) SaveMacros(c *fiber.Ctx) error {
	entry := map[string]any{}
	if err := c.BodyParser(&entry); err != nil {
		log.Errorf("save-macros body: %v", err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveMacros, nil)
	}

	res, err := h.macroService.SaveMacros(c.Context(), entry)
	if err != nil {
		return macroError(c, domain.MessageFailedSaveMacros, err)
	}
	return presenters.JSONResponse(c, fiber.StatusOK, res)
}

func (h *macroHandler) GetUserMacros(c *fiber.Ctx) error {
	username := usernameParam(c)
	date := c.Query("date")
	if date != "" {
		if err := h.validator.Var(date, "datetime=2006-01-02"); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidDate, domain.ErrInvalidDate)
		}
	}

	res, err := h.macroService.GetUserMacros(c.Context(), username, date)
	if err != nil {
		return macroError(c, domain.MessageFailedGetMacros, err)
	}
	return presenters.JSONResponse(c, fiber.StatusOK, res)
}

func (h *macroHandler) GetUserWeeklyMacros(c *fiber.Ctx) error {
	req := domain.WeeklyMacrosRequest{
		Username:  usernameParam(c),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	if req.Username == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUsernameRequired, nil)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidDate, domain.ErrInvalidDate)
	}

	res, err := h.macroService.GetUserWeeklyMacros(c.Context(), req)
	if err != nil {
		return macroError(c, domain.MessageFailedGetWeeklyMacros, err)
	}
	return presenters.JSONResponse(c, fiber.StatusOK, res)
}
