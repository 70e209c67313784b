package comments

import (
	"context"

	"Inkwell/internal/core/identity"
)

// Repository defines the data access interface for comments
type Repository interface {
	// Create inserts a new comment and fills in the assigned id and timestamp
	Create(ctx context.Context, comment *Comment) error

	// GetByID retrieves a comment scoped to its post; a comment id that
	// exists under a different post is still ErrCommentNotFound
	GetByID(ctx context.Context, postID, commentID int64) (*Comment, error)

	// ListByPost retrieves all comments on a post, newest first, with
	// author usernames hydrated
	ListByPost(ctx context.Context, postID int64) ([]*Comment, error)

	// Delete removes a single comment
	Delete(ctx context.Context, id int64) error
}

// Service defines the interface for comment business logic
type Service interface {
	AddComment(ctx context.Context, principal *identity.Principal, postID int64, content string) (*AddCommentResponse, error)
	ListForPost(ctx context.Context, postID int64) ([]*Comment, error)
	DeleteComment(ctx context.Context, principal *identity.Principal, postID, commentID int64) (*DeleteCommentResponse, error)
}
