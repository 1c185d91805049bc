package service

import "errors"

var (
	// ErrInvalidHintLevel is returned when a hint level outside 1..3 is requested.
	ErrInvalidHintLevel = errors.New("hint level must be 1, 2 or 3")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)
