package domain

import (
	"errors"
	"fmt"
)

var (
	MessageFailedChatUpstream = "Failed to get response from AI"
	MessageFailedNoImage      = "No image provided"
	MessageFailedNotImage     = "File is not an image"
	MessageFailedIdentify     = "Failed to process request"
	MessageFailedAnalyzeImage = "Failed to process food image"

	SourceMock         = "mock"
	SourceMockFallback = "mock (fallback)"

	ErrNoImage  = errors.New("no image provided")
	ErrNotImage = errors.New("file is not an image")
)

type (
	ChatRequest struct {
		Message             string   `json:"message"`
		UserID              string   `json:"user_id"`
		IsInitialMessage    bool     `json:"is_initial_message,omitempty"`
		Ingredients         []string `json:"ingredients,omitempty"`
		ManualIngredients   []string `json:"manualIngredients,omitempty"`
		DietaryRestrictions []string `json:"dietaryRestrictions,omitempty"`
		Allergies           []string `json:"allergies,omitempty"`
		ProteinTarget       *int     `json:"proteinTarget,omitempty"`
	}

	UpstreamError struct {
		StatusCode int
		Body       string
	}

	IdentifyIngredientsResponse struct {
		Success     bool     `json:"success"`
		Ingredients []string `json:"ingredients"`
		Source      string   `json:"source,omitempty"`
		ImageURL    string   `json:"image_url,omitempty"`
	}

	FoodMacros struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Fats     float64 `json:"fats"`
		Carbs    float64 `json:"carbs"`
	}
)

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("AI backend returned status %d: %s", e.StatusCode, e.Body)
}
