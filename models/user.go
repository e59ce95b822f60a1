package models

import "time"

// User rows are hard-deleted so a freed username can be registered again.
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	DOB       time.Time `gorm:"not null" json:"dob"`
	Height    float64   `gorm:"not null" json:"height"` // centimeters
	Weight    float64   `gorm:"not null" json:"weight"` // kilograms
	Gender    string    `gorm:"not null" json:"gender"`
	Goal      string    `gorm:"not null" json:"goal"`
}
