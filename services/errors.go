package services

import "errors"

// Sentinel errors controllers translate into HTTP status codes.
var (
	ErrNotFound             = errors.New("not found")
	ErrNoData               = errors.New("no data")
	ErrUsernameTaken        = errors.New("username is already taken")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrWrongPassword        = errors.New("old password is incorrect")
	ErrWorkoutLimit         = errors.New("a user can have a maximum of 10 workout plans")
	ErrDuplicateWorkoutName = errors.New("workout name must be unique for each user")
)
