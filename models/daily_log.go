package models

import "time"

// Workout types accepted by the daily activity log.
var WorkoutTypes = []string{
	"None",
	"Back Workouts",
	"Chest Workouts",
	"Leg Workouts",
	"Arm Workouts",
	"Core Workouts",
	"Cardio Workouts",
	"Full-Body Workouts",
	"Flexibility and Mobility Workouts",
}

func ValidWorkoutType(s string) bool {
	for _, w := range WorkoutTypes {
		if s == w {
			return true
		}
	}
	return false
}

// DailyLog holds one activity entry per user per calendar day. Date is always a
// canonical UTC midnight; the composite unique index makes duplicate days
// impossible at the storage layer.
type DailyLog struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
	Username        string    `gorm:"uniqueIndex:idx_daily_logs_user_day;not null" json:"username"`
	Date            time.Time `gorm:"uniqueIndex:idx_daily_logs_user_day;not null" json:"date"`
	Steps           int       `gorm:"not null" json:"steps"`
	Workout         string    `gorm:"not null" json:"workout"`
	WorkoutDuration int       `gorm:"not null" json:"workoutDuration"` // minutes
	SleepHours      float64   `gorm:"not null" json:"sleepHours"`      // 0-24
}
