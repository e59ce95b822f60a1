package services

import (
	"errors"
	"fmt"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

// Window selects a trailing aggregation period.
type Window string

const (
	Weekly  Window = "weekly"
	Monthly Window = "monthly"
)

// ErrBadWindow is returned for a period string that is neither weekly nor monthly.
var ErrBadWindow = errors.New("invalid period")

func (w Window) Since(now time.Time) (time.Time, error) {
	switch w {
	case Weekly:
		return now.AddDate(0, 0, -7), nil
	case Monthly:
		return now.AddDate(0, -1, 0), nil
	}
	return time.Time{}, ErrBadWindow
}

type ProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

type StepProgress struct {
	InitialSteps int `json:"initialSteps"`
	LatestSteps  int `json:"latestSteps"`
	Progress     int `json:"progress"`
}

// StepProgress compares the user's earliest and latest daily logs.
func (s *ProgressService) StepProgress(username string) (*StepProgress, error) {
	var earliest, latest models.DailyLog
	err := s.db.Where("username = ?", username).Order("date asc").First(&earliest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoData
		}
		return nil, err
	}
	if err := s.db.Where("username = ?", username).Order("date desc").First(&latest).Error; err != nil {
		return nil, err
	}
	return &StepProgress{
		InitialSteps: earliest.Steps,
		LatestSteps:  latest.Steps,
		Progress:     latest.Steps - earliest.Steps,
	}, nil
}

type CaloriePoint struct {
	Date     time.Time `json:"date"`
	Calories float64   `json:"calories"`
}

// CalorieSeries returns date/calories pairs for the window, oldest first.
func (s *ProgressService) CalorieSeries(username string, window Window) ([]CaloriePoint, error) {
	since, err := window.Since(time.Now())
	if err != nil {
		return nil, err
	}
	var logs []models.NutrientLog
	err = s.db.
		Where("username = ? AND date >= ?", username, since).
		Order("date asc").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	points := make([]CaloriePoint, 0, len(logs))
	for _, log := range logs {
		points = append(points, CaloriePoint{Date: log.Date, Calories: log.Calories})
	}
	return points, nil
}

type NutrientAverages struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// NutrientAverages computes arithmetic means over the window. Zero matching
// rows yields ErrNoData so callers never divide by zero.
func (s *ProgressService) NutrientAverages(username string, window Window) (*NutrientAverages, error) {
	since, err := window.Since(time.Now())
	if err != nil {
		return nil, err
	}
	var logs []models.NutrientLog
	err = s.db.
		Where("username = ? AND date >= ?", username, since).
		Order("date asc").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, ErrNoData
	}

	var protein, carbs, fat float64
	for _, log := range logs {
		protein += log.Protein
		carbs += log.Carbohydrates
		fat += log.Fats
	}
	n := float64(len(logs))
	return &NutrientAverages{
		Protein: protein / n,
		Carbs:   carbs / n,
		Fat:     fat / n,
	}, nil
}

type CalorieIntake struct {
	CalorieGoal     float64 `json:"calorieGoal"`
	InitialCalories float64 `json:"initialCalories"`
	LatestCalories  float64 `json:"latestCalories"`
	Progress        float64 `json:"progress"`
}

// ErrNoGoals distinguishes a user without goals from one without logs.
var ErrNoGoals = errors.New("no nutrient goals")

func (s *ProgressService) CaloriesIntake(username string) (*CalorieIntake, error) {
	var logs []models.NutrientLog
	err := s.db.Where("username = ?", username).Order("date asc").Find(&logs).Error
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, ErrNoData
	}

	var goals models.NutrientGoals
	if err := s.db.Where("username = ?", username).First(&goals).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoGoals
		}
		return nil, err
	}

	initial := logs[0].Calories
	latest := logs[len(logs)-1].Calories
	return &CalorieIntake{
		CalorieGoal:     goals.CaloriesGoal,
		InitialCalories: initial,
		LatestCalories:  latest,
		Progress:        latest - initial,
	}, nil
}

type WorkoutProgress struct {
	AverageWorkoutsPerWeek string         `json:"averageWorkoutsPerWeek"`
	TotalCompleted         int            `json:"totalCompletedWorkouts"`
	WeeklyData             map[string]int `json:"weeklyData"`
}

// WorkoutProgress groups completed workouts by Sunday-start week and averages
// the counts. No completions is a valid answer with zeroed totals.
func (s *ProgressService) WorkoutProgress(username string) (*WorkoutProgress, error) {
	var completed []models.WorkoutStatus
	err := s.db.
		Where("username = ? AND status = ?", username, "Yes").
		Order("date asc").
		Find(&completed).Error
	if err != nil {
		return nil, err
	}
	if len(completed) == 0 {
		return &WorkoutProgress{
			AverageWorkoutsPerWeek: "0",
			WeeklyData:             map[string]int{},
		}, nil
	}

	weekly := make(map[string]int)
	for _, status := range completed {
		week := utils.StartOfWeek(status.Date).Format(time.RFC3339)
		weekly[week]++
	}

	avg := float64(len(completed)) / float64(len(weekly))
	return &WorkoutProgress{
		AverageWorkoutsPerWeek: fmt.Sprintf("%.2f", avg),
		TotalCompleted:         len(completed),
		WeeklyData:             weekly,
	}, nil
}

type WorkoutCompletions struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// WorkoutCompletions counts completions per workout name over the window, in a
// chart-ready labels/data shape.
func (s *ProgressService) WorkoutCompletions(username string, window Window) (*WorkoutCompletions, error) {
	since, err := window.Since(time.Now())
	if err != nil {
		return nil, err
	}

	var statuses []models.WorkoutStatus
	err = s.db.Preload("Workout").
		Where("username = ? AND date >= ? AND status = ?", username, since, "Yes").
		Order("date asc").
		Find(&statuses).Error
	if err != nil {
		return nil, err
	}
	if len(statuses) == 0 {
		return nil, ErrNoData
	}

	counts := make(map[string]int)
	var labels []string
	for _, status := range statuses {
		name := status.Workout.Name
		if _, seen := counts[name]; !seen {
			labels = append(labels, name)
		}
		counts[name]++
	}
	data := make([]int, 0, len(labels))
	for _, name := range labels {
		data = append(data, counts[name])
	}
	return &WorkoutCompletions{Labels: labels, Data: data}, nil
}
