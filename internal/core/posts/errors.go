package posts

import (
	"errors"
	"fmt"
)

// Sentinel errors for common post operations
var (
	// ErrNotFound is returned when a post lookup finds no matching record
	ErrNotFound = errors.New("post not found")

	// ErrNotAuthenticated is returned when an anonymous caller attempts a
	// mutating operation
	ErrNotAuthenticated = errors.New("authentication required")

	// ErrNotAuthorized is returned when the acting principal is not the
	// post's author
	ErrNotAuthorized = errors.New("not authorized to modify this post")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// IsNotFound checks if error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
