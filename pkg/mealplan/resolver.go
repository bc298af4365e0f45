package mealplan

import (
	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/entities"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

var numericID = regexp.MustCompile(`^\d+$`)

// SyntheticID is the "{index}-{mp_name}" identifier older clients hold for
// rows listed before primary keys were exposed.
func SyntheticID(index int, name string) string {
	return fmt.Sprintf("%d-%s", index, name)
}

// nameFromSyntheticID returns everything after the first dash.
func nameFromSyntheticID(planID string) (string, error) {
	_, name, ok := strings.Cut(planID, "-")
	if !ok {
		return "", domain.ErrInvalidPlanID
	}
	return name, nil
}

// resolvePlan finds the row a client identifier refers to, scoped to the
// owner. Numeric identifiers are primary keys. Anything else is treated as a
// synthetic identifier and matched by exact name, then by case-insensitive
// containment. When lenient is set the owner's most recent plan is the last
// resort.
func (s *mealPlanService) resolvePlan(ctx context.Context, username, planID string, lenient bool) (*entities.MealPlan, error) {
	if numericID.MatchString(planID) {
		id, err := strconv.ParseInt(planID, 10, 64)
		if err != nil {
			return nil, domain.ErrInvalidPlanID
		}
		plan, err := s.mealPlanRepository.GetMealPlanByID(ctx, id, username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrMealPlanNotFound
			}
			return nil, err
		}
		return plan, nil
	}

	name, err := nameFromSyntheticID(planID)
	if err != nil {
		return nil, err
	}

	plans, err := s.mealPlanRepository.GetMealPlansByUser(ctx, username)
	if err != nil {
		return nil, err
	}

	if plan := matchPlan(plans, name); plan != nil {
		return plan, nil
	}
	if lenient && len(plans) > 0 {
		return &plans[0], nil
	}
	return nil, domain.ErrMealPlanNotFound
}

func matchPlan(plans []entities.MealPlan, name string) *entities.MealPlan {
	for i := range plans {
		if plans[i].Name == name {
			return &plans[i]
		}
	}

	needle := strings.ToLower(name)
	if needle == "" {
		return nil
	}
	for i := range plans {
		candidate := strings.ToLower(plans[i].Name)
		if candidate == "" {
			continue
		}
		if strings.Contains(candidate, needle) || strings.Contains(needle, candidate) {
			return &plans[i]
		}
	}
	return nil
}
