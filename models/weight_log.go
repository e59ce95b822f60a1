package models

import "time"

// Plausible bounds for a logged body weight, in kilograms.
const (
	MinWeight = 30
	MaxWeight = 300
)

// WeightLog holds one weight entry per user per calendar day.
type WeightLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	Username  string    `gorm:"uniqueIndex:idx_weight_logs_user_day;not null" json:"username"`
	Date      time.Time `gorm:"uniqueIndex:idx_weight_logs_user_day;not null" json:"date"`
	Weight    float64   `gorm:"not null" json:"weight"` // kilograms
}
