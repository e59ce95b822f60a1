package services

import (
	"errors"
	"testing"

	"backend/models"
)

func TestDailyLog_CreateThenUpdateSameDay(t *testing.T) {
	db := newTestDB(t)
	logs := NewDailyLogService(db)
	d := day(2024, 6, 15)

	first, created, err := logs.Log("alice", d, ActivityInput{
		Steps: 5000, Workout: "Cardio Workouts", WorkoutDuration: 30, SleepHours: 7,
	})
	if err != nil {
		t.Fatalf("first log: %v", err)
	}
	if !created {
		t.Error("first log should report created")
	}
	if first.Steps != 5000 {
		t.Errorf("steps = %d, want 5000", first.Steps)
	}

	second, created, err := logs.Log("alice", d, ActivityInput{
		Steps: 9000, Workout: "Leg Workouts", WorkoutDuration: 45, SleepHours: 6.5,
	})
	if err != nil {
		t.Fatalf("second log: %v", err)
	}
	if created {
		t.Error("second log for the same day should report updated, not created")
	}
	if second.Steps != 9000 || second.Workout != "Leg Workouts" {
		t.Errorf("fields not overwritten: %+v", second)
	}

	// Exactly one record per (user, day).
	var count int64
	db.Model(&models.DailyLog{}).Where("username = ?", "alice").Count(&count)
	if count != 1 {
		t.Errorf("log count = %d, want 1", count)
	}
}

func TestDailyLog_SeparateDaysSeparateRecords(t *testing.T) {
	db := newTestDB(t)
	logs := NewDailyLogService(db)

	for i := 1; i <= 3; i++ {
		_, created, err := logs.Log("bob", day(2024, 6, i), ActivityInput{
			Steps: i * 1000, Workout: "None", SleepHours: 8,
		})
		if err != nil {
			t.Fatalf("log day %d: %v", i, err)
		}
		if !created {
			t.Errorf("day %d should be a new record", i)
		}
	}

	var count int64
	db.Model(&models.DailyLog{}).Where("username = ?", "bob").Count(&count)
	if count != 3 {
		t.Errorf("log count = %d, want 3", count)
	}
}

func TestDailyLog_ByDay(t *testing.T) {
	db := newTestDB(t)
	logs := NewDailyLogService(db)
	d := day(2024, 6, 15)

	if _, err := logs.ByDay("carol", d); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, _, err := logs.Log("carol", d, ActivityInput{Steps: 100, Workout: "None", SleepHours: 8}); err != nil {
		t.Fatalf("log: %v", err)
	}
	got, err := logs.ByDay("carol", d)
	if err != nil {
		t.Fatalf("by day: %v", err)
	}
	if got.Steps != 100 {
		t.Errorf("steps = %d, want 100", got.Steps)
	}

	// Another user's log on the same day stays invisible.
	if _, err := logs.ByDay("dave", d); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-user leak: %v", err)
	}
}

func TestDailyLog_Delete(t *testing.T) {
	db := newTestDB(t)
	logs := NewDailyLogService(db)
	d := day(2024, 6, 15)

	if err := logs.Delete("erin", d); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, _, err := logs.Log("erin", d, ActivityInput{Steps: 1, Workout: "None", SleepHours: 8}); err != nil {
		t.Fatalf("log: %v", err)
	}
	if err := logs.Delete("erin", d); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := logs.ByDay("erin", d); !errors.Is(err, ErrNotFound) {
		t.Error("log still present after delete")
	}

	// A deleted day can be logged again.
	_, created, err := logs.Log("erin", d, ActivityInput{Steps: 2, Workout: "None", SleepHours: 8})
	if err != nil {
		t.Fatalf("relog: %v", err)
	}
	if !created {
		t.Error("relog after delete should create")
	}
}
