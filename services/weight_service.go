package services

import (
	"errors"
	"time"

	"backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WeightService struct {
	db *gorm.DB
}

func NewWeightService(db *gorm.DB) *WeightService {
	return &WeightService{db: db}
}

// Log upserts the single weight record for (username, day). Bounds are enforced
// at binding time; the service assumes a valid weight.
func (s *WeightService) Log(username string, day time.Time, weight float64) (*models.WeightLog, bool, error) {
	var existing models.WeightLog
	err := s.db.Where("username = ? AND date = ?", username, day).First(&existing).Error
	created := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !created {
		return nil, false, err
	}

	log := models.WeightLog{Username: username, Date: day, Weight: weight}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"weight", "updated_at"}),
	}).Create(&log).Error
	if err != nil {
		return nil, false, err
	}

	var out models.WeightLog
	if err := s.db.Where("username = ? AND date = ?", username, day).First(&out).Error; err != nil {
		return nil, false, err
	}
	return &out, created, nil
}

func (s *WeightService) ByDay(username string, day time.Time) (*models.WeightLog, error) {
	var log models.WeightLog
	if err := s.db.Where("username = ? AND date = ?", username, day).First(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

func (s *WeightService) Latest(username string) (*models.WeightLog, error) {
	var log models.WeightLog
	err := s.db.Where("username = ?", username).Order("date desc").First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

// Series returns the user's weight logs since the given instant, oldest first.
func (s *WeightService) Series(username string, since time.Time) ([]models.WeightLog, error) {
	var logs []models.WeightLog
	err := s.db.
		Where("username = ? AND date >= ?", username, since).
		Order("date asc").
		Find(&logs).Error
	return logs, err
}
