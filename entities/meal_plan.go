package entities

import (
	"time"
)

// MealPlan is a row of saved_mps. The (username, mp_name) pair is unique.
type MealPlan struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(255);not null;uniqueIndex:idx_saved_mps_username_name" json:"username"`
	Name      string    `gorm:"column:mp_name;type:varchar(255);not null;uniqueIndex:idx_saved_mps_username_name" json:"mp_name"`
	Content   string    `gorm:"column:mp;type:text;not null" json:"mp"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp" json:"created_at"`
}

func (MealPlan) TableName() string {
	return "saved_mps"
}
