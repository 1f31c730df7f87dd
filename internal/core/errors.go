package core

import "errors"

// Sentinel errors used by the explanation service.
var (
	ErrValidation = errors.New("validation error")
	ErrGeneration = errors.New("generation failed")
)

// ValidationError reports a rejected request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

var (
	// ErrUnsupportedBackground is returned for backgrounds missing from CulturalContexts.
	ErrUnsupportedBackground = NewValidationError("culturalBackground", "cultural background not supported")
	// ErrUnsupportedAge is returned for age brackets outside ChildAges.
	ErrUnsupportedAge = NewValidationError("childAge", "child age not supported")
)

// GenerationError wraps a failed LLM call with a mode-specific message.
type GenerationError struct {
	Mode    string
	Message string
	Err     error
}

func (e *GenerationError) Error() string { return e.Message + ": " + e.Err.Error() }

func (e *GenerationError) Unwrap() []error { return []error{ErrGeneration, e.Err} }
