package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks input that was rejected before any mutation.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when an operation references an unknown id.
	ErrNotFound = errors.New("not found")
)

// ValidationError names the offending field so forms can show the message inline.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
