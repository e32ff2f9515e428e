package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")

	// ErrDataUnavailable marks a failed dictionary-store fetch. Callers
	// degrade silently and proceed with whatever is cached.
	ErrDataUnavailable = errors.New("dictionary data unavailable")

	// ErrNoTranslation marks a translation attempt that produced no usable
	// text. The original input is kept as the best-effort result.
	ErrNoTranslation = errors.New("no translation found")

	// ErrFallbackFailed marks a failed or unusable remote fallback call.
	// The best-effort dictionary result is retained.
	ErrFallbackFailed = errors.New("fallback translation failed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
