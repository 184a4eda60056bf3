package service

import (
	"errors"
	"fmt"

	"devdiary/internal/journal"
	"devdiary/internal/storage"
)

var (
	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when an id does not resolve within the caller's records.
	ErrNotFound = errors.New("not found")
	// ErrUnauthenticated is returned when an operation needs a session and there is none.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrConflict is returned when registering an email that is already taken.
	ErrConflict = errors.New("conflict")
	// ErrInvalidCredentials is returned when login fails.
	ErrInvalidCredentials = errors.New("incorrect email or password")
)

// ValidationError represents a validation error with a field name.
// It matches ErrInvalidInput under errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func requireSession(s journal.Session) error {
	if !s.Authenticated() {
		return ErrUnauthenticated
	}
	return nil
}

// storeError translates storage errors into the service taxonomy.
func storeError(err error, what string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return WrapError(err, "failed to access "+what)
}
