package mealplan

import (
	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/entities"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type (
	MealPlanService interface {
		SaveMealPlan(ctx context.Context, req domain.SaveMealPlanRequest) (domain.MealPlan, error)
		GetMealPlans(ctx context.Context, username string) ([]domain.MealPlan, error)
		CountMealPlans(ctx context.Context, username string) (int64, error)
		RenameMealPlan(ctx context.Context, username, planID, newName string) (domain.MealPlan, error)
		RenameMealPlanLegacy(ctx context.Context, username, planID, newName string) (domain.MealPlan, error)
		DeleteMealPlan(ctx context.Context, username, planID string) error
	}

	mealPlanService struct {
		mealPlanRepository MealPlanRepository
		now                func() time.Time
	}
)

func NewMealPlanService(mealPlanRepository MealPlanRepository) MealPlanService {
	return &mealPlanService{
		mealPlanRepository: mealPlanRepository,
		now:                time.Now,
	}
}

func DefaultPlanName(now time.Time) string {
	return fmt.Sprintf("Meal Plan (%s)", now.UTC().Format(domain.DateLayout))
}

func (s *mealPlanService) SaveMealPlan(ctx context.Context, req domain.SaveMealPlanRequest) (domain.MealPlan, error) {
	username := strings.TrimSpace(req.UserID)
	if username == "" || req.MealPlanContent == "" {
		return domain.MealPlan{}, domain.ErrMealPlanContentMissing
	}

	now := s.now().UTC()
	name := strings.TrimSpace(req.PlanName)
	if name == "" {
		name = DefaultPlanName(now)
	}

	plan := &entities.MealPlan{
		Username:  username,
		Name:      name,
		Content:   req.MealPlanContent,
		CreatedAt: now,
	}

	rows, err := s.mealPlanRepository.CreateMealPlan(ctx, plan)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		log.Infof("meal plan name %q taken for %s, retrying with a unique name", name, username)
		plan = &entities.MealPlan{
			Username:  username,
			Name:      fmt.Sprintf("%s (%d)", name, s.now().UnixMilli()),
			Content:   req.MealPlanContent,
			CreatedAt: now,
		}
		rows, err = s.mealPlanRepository.CreateMealPlan(ctx, plan)
		if err != nil {
			return domain.MealPlan{}, fmt.Errorf("%w: %v", domain.ErrMealPlanRetryFailed, err)
		}
	} else if err != nil {
		return domain.MealPlan{}, fmt.Errorf("database error: %w", err)
	}

	if rows == 0 {
		log.Warnf("meal plan insert for %s returned no rows", username)
		return domain.MealPlan{
			Username:  username,
			Name:      plan.Name,
			Content:   plan.Content,
			CreatedAt: now,
		}, nil
	}
	return toDomainMealPlan(*plan), nil
}

func (s *mealPlanService) GetMealPlans(ctx context.Context, username string) ([]domain.MealPlan, error) {
	if username == "" {
		return nil, domain.ErrUsernameRequired
	}

	plans, err := s.mealPlanRepository.GetMealPlansByUser(ctx, username)
	if err != nil {
		return nil, err
	}

	res := make([]domain.MealPlan, 0, len(plans))
	for i, plan := range plans {
		item := toDomainMealPlan(plan)
		if plan.ID == 0 {
			item.ID = SyntheticID(i, plan.Name)
		}
		if plan.CreatedAt.IsZero() {
			item.CreatedAt = s.now().UTC()
		}
		res = append(res, item)
	}
	return res, nil
}

func (s *mealPlanService) CountMealPlans(ctx context.Context, username string) (int64, error) {
	if username == "" {
		return 0, domain.ErrUsernameRequired
	}
	return s.mealPlanRepository.CountMealPlansByUser(ctx, username)
}

func (s *mealPlanService) RenameMealPlan(ctx context.Context, username, planID, newName string) (domain.MealPlan, error) {
	return s.rename(ctx, username, planID, newName, false)
}

func (s *mealPlanService) RenameMealPlanLegacy(ctx context.Context, username, planID, newName string) (domain.MealPlan, error) {
	return s.rename(ctx, username, planID, newName, true)
}

func (s *mealPlanService) rename(ctx context.Context, username, planID, newName string, lenient bool) (domain.MealPlan, error) {
	newName = strings.TrimSpace(newName)
	if planID == "" || newName == "" {
		return domain.MealPlan{}, domain.ErrMealPlanNameRequired
	}
	if username == "" {
		return domain.MealPlan{}, domain.ErrUsernameRequired
	}

	plan, err := s.resolvePlan(ctx, username, planID, lenient)
	if err != nil {
		return domain.MealPlan{}, err
	}

	if err := s.mealPlanRepository.UpdateMealPlanName(ctx, plan.ID, username, newName); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealPlan{}, domain.ErrMealPlanNotFound
		}
		return domain.MealPlan{}, err
	}

	plan.Name = newName
	return toDomainMealPlan(*plan), nil
}

func (s *mealPlanService) DeleteMealPlan(ctx context.Context, username, planID string) error {
	if planID == "" {
		return domain.ErrInvalidPlanID
	}
	if username == "" {
		return domain.ErrUsernameRequired
	}

	plan, err := s.resolvePlan(ctx, username, planID, false)
	if err != nil {
		return err
	}

	if err := s.mealPlanRepository.DeleteMealPlan(ctx, plan.ID, username); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMealPlanNotFound
		}
		return err
	}
	return nil
}

func toDomainMealPlan(plan entities.MealPlan) domain.MealPlan {
	res := domain.MealPlan{
		Username:  plan.Username,
		Name:      plan.Name,
		Content:   plan.Content,
		CreatedAt: plan.CreatedAt,
	}
	if plan.ID != 0 {
		res.ID = strconv.FormatInt(plan.ID, 10)
	}
	return res
}
