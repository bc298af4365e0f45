package domain

import (
	"errors"
)

var (
	MessageSuccessSaveMacrosSimulated = "Meal saved successfully (simulated)"
	MessageSuccessSaveMacrosUnparsed  = "Saved successfully but couldn't parse response"

	MessageFailedUsernameRequired = "Username is required"
	MessageFailedSaveMacros       = "Failed to save macros"
	MessageFailedGetMacros        = "Failed to fetch macros"
	MessageFailedGetWeeklyMacros  = "Failed to fetch weekly macros"
	MessageFailedInvalidDate      = "Invalid date format. Use YYYY-MM-DD"

	ErrUsernameRequired = errors.New("username is required")
	ErrInvalidDate      = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidNumber    = errors.New("macro values must be numeric")
)

// MacroFields are rounded to integers before a meal entry is forwarded.
var MacroFields = []string{"calories", "proteins", "fats", "carbs"}

type (
	MacroTotals struct {
		Calories float64 `json:"calories"`
		Proteins float64 `json:"proteins"`
		Carbs    float64 `json:"carbs"`
		Fats     float64 `json:"fats"`
	}

	DateRange struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}

	WeeklyMacrosResponse struct {
		Success       bool           `json:"success"`
		DailySummary  map[string]any `json:"daily_summary"`
		WeeklyTotals  MacroTotals    `json:"weekly_totals"`
		DailyAverages MacroTotals    `json:"daily_averages"`
		DateRange     DateRange      `json:"date_range"`
	}

	DailyMacrosResponse struct {
		Success bool  `json:"success"`
		Macros  []any `json:"macros"`
	}

	WeeklyMacrosRequest struct {
		Username  string `validate:"required"`
		StartDate string `validate:"omitempty,datetime=2006-01-02"`
		EndDate   string `validate:"omitempty,datetime=2006-01-02"`
	}
)
