package services

import (
	"errors"
	"sync"
	"time"

	"backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WorkoutService struct {
	db *gorm.DB

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db, locks: make(map[string]*sync.Mutex)}
}

// userLock serializes workout creation per username so the cap check and the
// insert cannot interleave with a concurrent request for the same user.
func (s *WorkoutService) userLock(username string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[username]
	if !ok {
		l = &sync.Mutex{}
		s.locks[username] = l
	}
	return l
}

type WorkoutInput struct {
	Name      string
	Exercises string
	Duration  int
	Intensity string
}

func (s *WorkoutService) Create(username string, in WorkoutInput) (*models.Workout, error) {
	lock := s.userLock(username)
	lock.Lock()
	defer lock.Unlock()

	count, err := s.Count(username)
	if err != nil {
		return nil, err
	}
	if count >= models.MaxWorkoutsPerUser {
		return nil, ErrWorkoutLimit
	}

	var dup int64
	err = s.db.Model(&models.Workout{}).
		Where("username = ? AND name = ?", username, in.Name).
		Count(&dup).Error
	if err != nil {
		return nil, err
	}
	if dup > 0 {
		return nil, ErrDuplicateWorkoutName
	}

	workout := models.Workout{
		Username:  username,
		Name:      in.Name,
		Exercises: in.Exercises,
		Duration:  in.Duration,
		Intensity: in.Intensity,
		Date:      time.Now().UTC(),
	}
	if err := s.db.Create(&workout).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateWorkoutName
		}
		return nil, err
	}
	return &workout, nil
}

func (s *WorkoutService) List(username string) ([]models.Workout, error) {
	var workouts []models.Workout
	err := s.db.Where("username = ?", username).Find(&workouts).Error
	return workouts, err
}

func (s *WorkoutService) Count(username string) (int64, error) {
	var count int64
	err := s.db.Model(&models.Workout{}).Where("username = ?", username).Count(&count).Error
	return count, err
}

func (s *WorkoutService) Update(id uint, in WorkoutInput) (*models.Workout, error) {
	var workout models.Workout
	if err := s.db.First(&workout, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Renaming onto a sibling workout's name is a conflict.
	var dup int64
	err := s.db.Model(&models.Workout{}).
		Where("username = ? AND name = ? AND id <> ?", workout.Username, in.Name, id).
		Count(&dup).Error
	if err != nil {
		return nil, err
	}
	if dup > 0 {
		return nil, ErrDuplicateWorkoutName
	}

	workout.Name = in.Name
	workout.Exercises = in.Exercises
	workout.Duration = in.Duration
	workout.Intensity = in.Intensity
	if err := s.db.Save(&workout).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateWorkoutName
		}
		return nil, err
	}
	return &workout, nil
}

// Delete removes the workout and every status referencing it in one
// transaction, so a crash cannot leave orphaned statuses behind.
func (s *WorkoutService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Workout{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("workout_id = ?", id).Delete(&models.WorkoutStatus{}).Error
	})
}

type StatusUpdate struct {
	WorkoutID uint
	Status    string
	Day       time.Time
}

// UpdateStatuses upserts one status row per (workout, day) for each item.
func (s *WorkoutService) UpdateStatuses(username string, items []StatusUpdate) error {
	for _, item := range items {
		status := models.WorkoutStatus{
			Username:  username,
			WorkoutID: item.WorkoutID,
			Status:    item.Status,
			Date:      item.Day,
		}
		err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "workout_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}).Create(&status).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *WorkoutService) StatusesByDay(username string, day time.Time) ([]models.WorkoutStatus, error) {
	start, end := day, day.AddDate(0, 0, 1)
	var statuses []models.WorkoutStatus
	err := s.db.Preload("Workout").
		Where("username = ? AND date >= ? AND date < ?", username, start, end).
		Find(&statuses).Error
	return statuses, err
}
