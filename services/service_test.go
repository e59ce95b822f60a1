package services

import (
	"testing"
	"time"

	"backend/config"
	"backend/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory store with the full schema. Connections
// are capped at one so every query sees the same sqlite database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustRegister(t *testing.T, users *UserService, username string) *models.User {
	t.Helper()
	user, err := users.Register(RegisterInput{
		Username: username,
		Password: "password123",
		DOB:      day(1990, 1, 1),
		Height:   175,
		Weight:   70,
		Gender:   "Male",
		Goal:     "Weight Loss",
	})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return user
}
