package migration

import (
	"Meal-Planner-Backend/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Errorf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MealPlan{}); err != nil {
		log.Errorf("Error migrating saved meal plan database: %v", err)
		return err
	}

	log.Info("Database migration complete")
	return nil
}
