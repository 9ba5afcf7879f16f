package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is the sentinel for errors.Is() checking. It is the only
// failure kind this core produces; every operation outside value-object
// construction is total.
var ErrValidation = errors.New("validation error")

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError builds a single-field ValidationError. Value objects use
// it so their constructors stay one-liners.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
