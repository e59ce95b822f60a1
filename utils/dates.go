package utils

import (
	"errors"
	"time"
)

// ErrInvalidDate is returned when a client-supplied date string cannot be parsed.
var ErrInvalidDate = errors.New("invalid date format")

// CanonicalDay truncates t to midnight UTC. All daily log tables key on this
// value, so the same calendar day always maps to the same stored date no matter
// which timezone the caller or server sits in.
func CanonicalDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a client-supplied date ("2006-01-02" or RFC3339) down to its
// canonical day. An empty string means today.
func ParseDay(s string) (time.Time, error) {
	if s == "" {
		return CanonicalDay(time.Now()), nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return CanonicalDay(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return CanonicalDay(t), nil
	}
	return time.Time{}, ErrInvalidDate
}

// DayWindow returns the half-open interval [day, day+24h) for range queries.
func DayWindow(day time.Time) (time.Time, time.Time) {
	return day, day.AddDate(0, 0, 1)
}

// StartOfWeek returns the canonical day of the Sunday opening the week of t.
func StartOfWeek(t time.Time) time.Time {
	day := CanonicalDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}
