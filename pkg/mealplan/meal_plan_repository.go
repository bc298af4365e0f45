package mealplan

import (
	"Meal-Planner-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	MealPlanRepository interface {
		CreateMealPlan(ctx context.Context, plan *entities.MealPlan) (int64, error)
		GetMealPlansByUser(ctx context.Context, username string) ([]entities.MealPlan, error)
		CountMealPlansByUser(ctx context.Context, username string) (int64, error)
		GetMealPlanByID(ctx context.Context, id int64, username string) (*entities.MealPlan, error)
		UpdateMealPlanName(ctx context.Context, id int64, username string, name string) error
		DeleteMealPlan(ctx context.Context, id int64, username string) error
	}

	mealPlanRepository struct {
		db *gorm.DB
	}
)

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

// CreateMealPlan reports the number of inserted rows alongside the error.
func (r *mealPlanRepository) CreateMealPlan(ctx context.Context, plan *entities.MealPlan) (int64, error) {
	res := r.db.WithContext(ctx).Create(plan)
	return res.RowsAffected, res.Error
}

func (r *mealPlanRepository) GetMealPlansByUser(ctx context.Context, username string) ([]entities.MealPlan, error) {
	var plans []entities.MealPlan
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("created_at DESC").
		Order("id DESC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mealPlanRepository) CountMealPlansByUser(ctx context.Context, username string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.MealPlan{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *mealPlanRepository) GetMealPlanByID(ctx context.Context, id int64, username string) (*entities.MealPlan, error) {
	var plan entities.MealPlan
	if err := r.db.WithContext(ctx).
		Where("id = ? AND username = ?", id, username).
		First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mealPlanRepository) UpdateMealPlanName(ctx context.Context, id int64, username string, name string) error {
	res := r.db.WithContext(ctx).
		Model(&entities.MealPlan{}).
		Where("id = ? AND username = ?", id, username).
		Update("mp_name", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *mealPlanRepository) DeleteMealPlan(ctx context.Context, id int64, username string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND username = ?", id, username).
		Delete(&entities.MealPlan{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
