package models

import "time"

// NutrientLog holds one nutrition entry per user per calendar day.
type NutrientLog struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
	Username      string    `gorm:"uniqueIndex:idx_nutrient_logs_user_day;not null" json:"username"`
	Date          time.Time `gorm:"uniqueIndex:idx_nutrient_logs_user_day;not null" json:"date"`
	Calories      float64   `gorm:"not null" json:"calories"`
	Protein       float64   `gorm:"not null" json:"protein"`       // grams
	Fats          float64   `gorm:"not null" json:"fats"`          // grams
	Carbohydrates float64   `gorm:"not null" json:"carbohydrates"` // grams
	Water         float64   `gorm:"not null" json:"water"`         // liters
}

// NutrientGoals is a single upsert target per user, never deleted.
type NutrientGoals struct {
	ID                uint      `gorm:"primarykey" json:"id"`
	CreatedAt         time.Time `json:"-"`
	UpdatedAt         time.Time `json:"-"`
	Username          string    `gorm:"uniqueIndex;not null" json:"username"`
	CaloriesGoal      float64   `json:"caloriesGoal"`
	ProteinGoal       float64   `json:"proteinGoal"`
	FatsGoal          float64   `json:"fatsGoal"`
	CarbohydratesGoal float64   `json:"carbohydratesGoal"`
	WaterGoal         float64   `json:"waterGoal"`
	WeightGoal        float64   `json:"weightGoal"`
}
