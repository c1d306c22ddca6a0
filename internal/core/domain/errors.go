package domain

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrCartNotFound = errors.New("cart not found")
)

// A ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
