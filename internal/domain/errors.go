package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")

	// ErrNotLoaded is returned by dictionary lookups issued before any load attempt.
	ErrNotLoaded = errors.New("dictionary not loaded")

	// ErrDictionaryUnavailable covers fetch/read failures, timeouts and non-text content.
	ErrDictionaryUnavailable = errors.New("dictionary unavailable")

	// ErrDictionaryTooLarge is a specific ErrDictionaryUnavailable: the content
	// exceeded the configured byte cap.
	ErrDictionaryTooLarge = fmt.Errorf("%w: content exceeds size limit", ErrDictionaryUnavailable)

	// ErrDictionaryMalformed means the content was readable but no line parsed.
	ErrDictionaryMalformed = errors.New("dictionary malformed")
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

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// IsDictionaryFailure reports whether err means the dictionary tier cannot
// answer at all (as opposed to a plain miss).
func IsDictionaryFailure(err error) bool {
	return errors.Is(err, ErrDictionaryUnavailable) ||
		errors.Is(err, ErrDictionaryMalformed) ||
		errors.Is(err, ErrNotLoaded)
}
