package models

import "time"

// MaxWorkoutsPerUser caps the number of workout plans a single user may own.
const MaxWorkoutsPerUser = 10

var Intensities = []string{"Low", "Medium", "High"}

func ValidIntensity(s string) bool {
	return s == "Low" || s == "Medium" || s == "High"
}

// Workout is a named plan owned by a user; names are unique per user.
type Workout struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	Username  string    `gorm:"uniqueIndex:idx_workouts_user_name;not null" json:"username"`
	Name      string    `gorm:"uniqueIndex:idx_workouts_user_name;not null" json:"name"`
	Exercises string    `gorm:"not null" json:"exercises"` // free text
	Duration  int       `gorm:"not null" json:"duration"`  // minutes
	Intensity string    `gorm:"not null" json:"intensity"` // Low | Medium | High
	Date      time.Time `json:"date"`
}

func ValidWorkoutStatus(s string) bool {
	return s == "Yes" || s == "No"
}

// WorkoutStatus records whether a workout was completed on a given day; one row
// per (workout, day), enforced by the composite unique index.
type WorkoutStatus struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	Username  string    `gorm:"index;not null" json:"username"`
	WorkoutID uint      `gorm:"uniqueIndex:idx_statuses_workout_day;not null" json:"workoutId"`
	Workout   Workout   `gorm:"foreignKey:WorkoutID" json:"workout"`
	Status    string    `gorm:"not null" json:"status"` // Yes | No
	Date      time.Time `gorm:"uniqueIndex:idx_statuses_workout_day;not null" json:"date"`
}
