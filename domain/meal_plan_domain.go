package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSaveMealPlan   = "meal plan saved successfully"
	MessageSuccessGetMealPlans   = "success get meal plans"
	MessageSuccessCountMealPlans = "success count meal plans"
	MessageSuccessRenameMealPlan = "meal plan renamed successfully"
	MessageSuccessDeleteMealPlan = "meal plan deleted successfully"

	MessageFailedUserIDRequired  = "User ID is required"
	MessageFailedContentRequired = "Meal plan content is required"
	MessageFailedSaveMealPlan    = "Database error while saving meal plan"
	MessageFailedSaveRequest     = "Server error processing save request"
	MessageFailedGetMealPlans    = "failed to get meal plans"
	MessageFailedCountMealPlans  = "failed to count meal plans"
	MessageFailedRenameMealPlan  = "failed to rename meal plan"
	MessageFailedDeleteMealPlan  = "failed to delete meal plan"

	ErrMealPlanNotFound       = errors.New("meal plan not found")
	ErrInvalidPlanID          = errors.New("invalid plan ID format")
	ErrMealPlanNameRequired   = errors.New("plan ID and new name are required")
	ErrMealPlanContentMissing = errors.New("user ID and meal plan content are required")
	ErrMealPlanRetryFailed    = errors.New("database error (retry failed)")
)

type (
	SaveMealPlanRequest struct {
		UserID          string `json:"userId"`
		MealPlanContent string `json:"mealPlanContent"`
		PlanName        string `json:"planName,omitempty"`
	}

	RenameMealPlanRequest struct {
		NewName string `json:"newName" validate:"required"`
	}

	LegacyRenameMealPlanRequest struct {
		ID      string `json:"id" validate:"required"`
		NewName string `json:"newName" validate:"required"`
	}

	MealPlan struct {
		ID        string    `json:"id,omitempty"`
		Username  string    `json:"username"`
		Name      string    `json:"mp_name"`
		Content   string    `json:"mp"`
		CreatedAt time.Time `json:"created_at"`
	}
)
