package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared across stores and services.
var (
	// ErrNotFound is returned by lookups that matched no row.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a unique constraint (event slug) is violated.
	ErrConflict = errors.New("slug already exists")
	// ErrEventNotFound is returned when a booking references a nonexistent event.
	ErrEventNotFound = errors.New("referenced event not found")
)

// ValidationError reports one or more failed validation rules from an
// entity-creation pipeline. Check for it with errors.As or IsValidation.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// NewValidationError returns a ValidationError with the given messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
