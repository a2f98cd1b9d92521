package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates a request that fails business validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials indicates a failed admin login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
