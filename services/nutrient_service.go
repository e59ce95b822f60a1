package services

import (
	"errors"
	"time"

	"backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NutrientService struct {
	db *gorm.DB
}

func NewNutrientService(db *gorm.DB) *NutrientService {
	return &NutrientService{db: db}
}

type NutrientInput struct {
	Calories      float64
	Protein       float64
	Fats          float64
	Carbohydrates float64
	Water         float64
}

// Log upserts the single nutrient record for (username, day); see
// DailyLogService.Log for the resolution contract.
func (s *NutrientService) Log(username string, day time.Time, in NutrientInput) (*models.NutrientLog, bool, error) {
	var existing models.NutrientLog
	err := s.db.Where("username = ? AND date = ?", username, day).First(&existing).Error
	created := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !created {
		return nil, false, err
	}

	log := models.NutrientLog{
		Username:      username,
		Date:          day,
		Calories:      in.Calories,
		Protein:       in.Protein,
		Fats:          in.Fats,
		Carbohydrates: in.Carbohydrates,
		Water:         in.Water,
	}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"calories", "protein", "fats", "carbohydrates", "water", "updated_at"}),
	}).Create(&log).Error
	if err != nil {
		return nil, false, err
	}

	var out models.NutrientLog
	if err := s.db.Where("username = ? AND date = ?", username, day).First(&out).Error; err != nil {
		return nil, false, err
	}
	return &out, created, nil
}

func (s *NutrientService) ByDay(username string, day time.Time) (*models.NutrientLog, error) {
	var log models.NutrientLog
	if err := s.db.Where("username = ? AND date = ?", username, day).First(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

// GoalsInput uses pointers so an omitted field leaves the stored goal alone
// while an explicit zero overwrites it.
type GoalsInput struct {
	CaloriesGoal      *float64
	ProteinGoal       *float64
	FatsGoal          *float64
	CarbohydratesGoal *float64
	WaterGoal         *float64
	WeightGoal        *float64
}

func (s *NutrientService) SetGoals(username string, in GoalsInput) (*models.NutrientGoals, bool, error) {
	var goals models.NutrientGoals
	err := s.db.Where("username = ?", username).First(&goals).Error
	created := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !created {
		return nil, false, err
	}
	if created {
		goals = models.NutrientGoals{Username: username}
	}

	if in.CaloriesGoal != nil {
		goals.CaloriesGoal = *in.CaloriesGoal
	}
	if in.ProteinGoal != nil {
		goals.ProteinGoal = *in.ProteinGoal
	}
	if in.FatsGoal != nil {
		goals.FatsGoal = *in.FatsGoal
	}
	if in.CarbohydratesGoal != nil {
		goals.CarbohydratesGoal = *in.CarbohydratesGoal
	}
	if in.WaterGoal != nil {
		goals.WaterGoal = *in.WaterGoal
	}
	if in.WeightGoal != nil {
		goals.WeightGoal = *in.WeightGoal
	}

	if err := s.db.Save(&goals).Error; err != nil {
		return nil, false, err
	}
	return &goals, created, nil
}

func (s *NutrientService) Goals(username string) (*models.NutrientGoals, error) {
	var goals models.NutrientGoals
	if err := s.db.Where("username = ?", username).First(&goals).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &goals, nil
}
