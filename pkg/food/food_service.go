package food

import (
	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/internal/utils/storage"
	"Meal-Planner-Backend/pkg/backend"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	FoodService interface {
		AnalyzeFoodMacros(ctx context.Context, form backend.Form, username string) (any, error)
	}

	foodService struct {
		client  backend.Client
		s3      storage.AwsS3
		degrade bool
	}
)

func NewFoodService(client backend.Client, s3 storage.AwsS3, degrade bool) FoodService {
	return &foodService{
		client:  client,
		s3:      s3,
		degrade: degrade,
	}
}

func EmptyMacros() fiber.Map {
	return fiber.Map{
		"success": true,
		"macros":  domain.FoodMacros{},
	}
}

// AnalyzeFoodMacros forwards every field and file of the submitted form.
func (s *foodService) AnalyzeFoodMacros(ctx context.Context, form backend.Form, username string) (any, error) {
	imageURL := s.archive(ctx, form, username)

	raw, err := s.client.AnalyzeFoodMacros(ctx, form)
	if err != nil {
		log.Errorf("analyze-food-macros upstream: %v", err)
		if !s.degrade {
			return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
		}
		res := EmptyMacros()
		if imageURL != "" {
			res["image_url"] = imageURL
		}
		return res, nil
	}

	if imageURL == "" {
		return raw, nil
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return raw, nil
	}
	body["image_url"] = imageURL
	return body, nil
}

func (s *foodService) archive(ctx context.Context, form backend.Form, username string) string {
	if s.s3 == nil {
		return ""
	}

	for _, file := range form.Files {
		if len(file.Data) == 0 || !strings.HasPrefix(file.ContentType, "image/") {
			continue
		}
		if username == "" {
			username = "anonymous"
		}
		key, err := s.s3.UploadFile(ctx, "food-"+username, file.Data, file.ContentType, "food-photos", storage.AllowImage...)
		if err != nil {
			log.Warnf("archive food photo: %v", err)
			return ""
		}
		return s.s3.GetPublicLinkKey(key)
	}
	return ""
}
