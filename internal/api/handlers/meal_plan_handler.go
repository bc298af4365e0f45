package handlers

import (
	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/internal/api/presenters"
	"Meal-Planner-Backend/pkg/mealplan"
	"errors"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type (
	MealPlanHandler interface {
		SaveMealPlan(c *fiber.Ctx) error
		GetMealPlans(c *fiber.Ctx) error
		CountMealPlans(c *fiber.Ctx) error
		RenameMealPlan(c *fiber.Ctx) error
		RenameMealPlanLegacy(c *fiber.Ctx) error
		DeleteMealPlan(c *fiber.Ctx) error
	}

	mealPlanHandler struct {
		mealPlanService mealplan.MealPlanService
		validator       *validator.Validate
	}
)

func NewMealPlanHandler(mealPlanService mealplan.MealPlanService, validator *validator.Validate) MealPlanHandler {
	return &mealPlanHandler{
		mealPlanService: mealPlanService,
		validator:       validator,
	}
}

func sessionUser(c *fiber.Ctx) string {
	username, _ := c.Locals(domain.LocalsUserID).(string)
	return username
}

func mealPlanError(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidPlanID),
		errors.Is(err, domain.ErrMealPlanNameRequired),
		errors.Is(err, domain.ErrUsernameRequired):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, message, err)
	case errors.Is(err, domain.ErrMealPlanNotFound):
		return presenters.ErrorResponse(c, fiber.StatusNotFound, message, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return presenters.ErrorResponse(c, fiber.StatusConflict, message, errors.New("a meal plan with that name already exists"))
	}
	log.Errorf("%s: %v", message, err)
	return presenters.ErrorResponse(c, fiber.StatusInternalServerError, message, err)
}

func (h *mealPlanHandler) SaveMealPlan(c *fiber.Ctx) error {
	var req domain.SaveMealPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveRequest, err)
	}

	current := sessionUser(c)
	req.UserID = strings.TrimSpace(req.UserID)
	if req.UserID == "" {
		req.UserID = current
	}
	if req.UserID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUserIDRequired, nil)
	}
	if current != "" && req.UserID != current {
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MesaageUserNotAllowed, domain.ErrUserNotAllowed)
	}
	if req.MealPlanContent == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedContentRequired, nil)
	}

	plan, err := h.mealPlanService.SaveMealPlan(c.Context(), req)
	if err != nil {
		log.Errorf("save meal plan for %s: %v", req.UserID, err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveMealPlan, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"mealPlan": plan}, fiber.StatusOK, "")
}

func (h *mealPlanHandler) GetMealPlans(c *fiber.Ctx) error {
	plans, err := h.mealPlanService.GetMealPlans(c.Context(), sessionUser(c))
	if err != nil {
		return mealPlanError(c, domain.MessageFailedGetMealPlans, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"mealPlans": plans}, fiber.StatusOK, domain.MessageSuccessGetMealPlans)
}

func (h *mealPlanHandler) CountMealPlans(c *fiber.Ctx) error {
	count, err := h.mealPlanService.CountMealPlans(c.Context(), sessionUser(c))
	if err != nil {
		return mealPlanError(c, domain.MessageFailedCountMealPlans, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"count": count}, fiber.StatusOK, domain.MessageSuccessCountMealPlans)
}

func planIDParam(c *fiber.Ctx) string {
	raw := c.Params("id")
	if id, err := url.PathUnescape(raw); err == nil {
		return id
	}
	return raw
}

func (h *mealPlanHandler) RenameMealPlan(c *fiber.Ctx) error {
	var req domain.RenameMealPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRenameMealPlan, domain.ErrMealPlanNameRequired)
	}

	plan, err := h.mealPlanService.RenameMealPlan(c.Context(), sessionUser(c), planIDParam(c), req.NewName)
	if err != nil {
		return mealPlanError(c, domain.MessageFailedRenameMealPlan, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"mealPlan": plan}, fiber.StatusOK, domain.MessageSuccessRenameMealPlan)
}

func (h *mealPlanHandler) RenameMealPlanLegacy(c *fiber.Ctx) error {
	var req domain.LegacyRenameMealPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRenameMealPlan, domain.ErrMealPlanNameRequired)
	}

	plan, err := h.mealPlanService.RenameMealPlanLegacy(c.Context(), sessionUser(c), req.ID, req.NewName)
	if err != nil {
		return mealPlanError(c, domain.MessageFailedRenameMealPlan, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"mealPlan": plan}, fiber.StatusOK, domain.MessageSuccessRenameMealPlan)
}

func (h *mealPlanHandler) DeleteMealPlan(c *fiber.Ctx) error {
	if err := h.mealPlanService.DeleteMealPlan(c.Context(), sessionUser(c), planIDParam(c)); err != nil {
		return mealPlanError(c, domain.MessageFailedDeleteMealPlan, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMealPlan)
}
