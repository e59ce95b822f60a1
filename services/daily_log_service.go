package services

import (
	"errors"
	"time"

	"backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyLogService struct {
	db *gorm.DB
}

func NewDailyLogService(db *gorm.DB) *DailyLogService {
	return &DailyLogService{db: db}
}

type ActivityInput struct {
	Steps           int
	Workout         string
	WorkoutDuration int
	SleepHours      float64
}

// Log resolves to exactly one record per (username, day). The write is a single
// ON CONFLICT upsert against the (username, date) unique index; the preceding
// read only decides created-vs-updated for the caller's status code.
func (s *DailyLogService) Log(username string, day time.Time, in ActivityInput) (*models.DailyLog, bool, error) {
	var existing models.DailyLog
	err := s.db.Where("username = ? AND date = ?", username, day).First(&existing).Error
	created := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !created {
		return nil, false, err
	}

	log := models.DailyLog{
		Username:        username,
		Date:            day,
		Steps:           in.Steps,
		Workout:         in.Workout,
		WorkoutDuration: in.WorkoutDuration,
		SleepHours:      in.SleepHours,
	}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"steps", "workout", "workout_duration", "sleep_hours", "updated_at"}),
	}).Create(&log).Error
	if err != nil {
		return nil, false, err
	}

	var out models.DailyLog
	if err := s.db.Where("username = ? AND date = ?", username, day).First(&out).Error; err != nil {
		return nil, false, err
	}
	return &out, created, nil
}

func (s *DailyLogService) ByDay(username string, day time.Time) (*models.DailyLog, error) {
	var log models.DailyLog
	if err := s.db.Where("username = ? AND date = ?", username, day).First(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

func (s *DailyLogService) Delete(username string, day time.Time) error {
	res := s.db.Where("username = ? AND date = ?", username, day).Delete(&models.DailyLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
