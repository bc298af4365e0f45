package ingredient

import (
	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/internal/utils/storage"
	"Meal-Planner-Backend/pkg/backend"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

var mockIngredients = []string{
	"tomato", "onion", "garlic", "potato", "carrot", "broccoli",
	"chicken", "beef", "pork", "salmon", "tuna", "shrimp",
	"rice", "pasta", "bread", "flour", "sugar", "salt",
	"olive oil", "butter", "milk", "cheese", "eggs", "yogurt",
	"apple", "banana", "orange", "lemon", "strawberry", "blueberry",
}

type (
	IngredientService interface {
		IdentifyIngredients(ctx context.Context, file backend.File, username string) (any, error)
	}

	ingredientService struct {
		client  backend.Client
		s3      storage.AwsS3
		degrade bool

		mu  sync.Mutex
		rng *rand.Rand
	}
)

// NewIngredientService accepts a nil s3, in which case photos are not archived.
func NewIngredientService(client backend.Client, s3 storage.AwsS3, degrade bool) IngredientService {
	return &ingredientService{
		client:  client,
		s3:      s3,
		degrade: degrade,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func ValidateImage(file backend.File) error {
	if len(file.Data) == 0 {
		return domain.ErrNoImage
	}
	if !strings.HasPrefix(strings.ToLower(file.ContentType), "image/") {
		return domain.ErrNotImage
	}
	return nil
}

func (s *ingredientService) IdentifyIngredients(ctx context.Context, file backend.File, username string) (any, error) {
	if err := ValidateImage(file); err != nil {
		return nil, err
	}

	imageURL := s.archive(ctx, file, username)

	if err := s.client.Health(ctx); err != nil {
		log.Warnf("AI backend not available, using mock ingredients: %v", err)
		if !s.degrade {
			return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
		}
		return s.mockResponse(domain.SourceMock, imageURL), nil
	}

	raw, err := s.client.IdentifyIngredients(ctx, file)
	if err != nil {
		log.Errorf("identify-ingredients upstream: %v", err)
		if !s.degrade {
			return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
		}
		return s.mockResponse(domain.SourceMockFallback, imageURL), nil
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

func (s *ingredientService) mockResponse(source, imageURL string) domain.IdentifyIngredientsResponse {
	return domain.IdentifyIngredientsResponse{
		Success:     true,
		Ingredients: s.MockIngredients(),
		Source:      source,
		ImageURL:    imageURL,
	}
}

// MockIngredients picks between three and eight distinct ingredients.
func (s *ingredientService) MockIngredients() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := s.rng.Intn(6) + 3
	picks := make([]string, 0, count)
	for _, i := range s.rng.Perm(len(mockIngredients))[:count] {
		picks = append(picks, mockIngredients[i])
	}
	return picks
}

func (s *ingredientService) archive(ctx context.Context, file backend.File, username string) string {
	if s.s3 == nil {
		return ""
	}
	if username == "" {
		username = "anonymous"
	}

	key, err := s.s3.UploadFile(ctx, "ingredients-"+username, file.Data, file.ContentType, "ingredients", storage.AllowImage...)
	if err != nil {
		log.Warnf("archive ingredient photo: %v", err)
		return ""
	}
	return s.s3.GetPublicLinkKey(key)
}

// MergeIngredients returns detected followed by manual with exact duplicates
// and blank entries removed, keeping first occurrences in order.
func MergeIngredients(detected, manual []string) []string {
	seen := make(map[string]struct{}, len(detected)+len(manual))
	merged := make([]string, 0, len(detected)+len(manual))
	for _, list := range [][]string{detected, manual} {
		for _, item := range list {
			if strings.TrimSpace(item) == "" {
				continue
			}
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			merged = append(merged, item)
		}
	}
	return merged
}
