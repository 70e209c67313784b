package comments

import "errors"

var (
	// ErrCommentNotFound indicates no comment with that id exists under the post
	ErrCommentNotFound = errors.New("comment not found")

	// ErrContentEmpty indicates comment content is empty
	ErrContentEmpty = errors.New("comment content is required")

	// ErrNotAuthenticated is returned when an anonymous caller attempts a
	// mutating operation
	ErrNotAuthenticated = errors.New("authentication required")

	// ErrNotAuthorized indicates the principal is neither the comment's
	// author nor the post's author
	ErrNotAuthorized = errors.New("not authorized to delete this comment")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCommentNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrContentEmpty)
}
