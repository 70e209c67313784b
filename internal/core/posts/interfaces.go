package posts

import (
	"context"

	"Inkwell/internal/core/identity"
)

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts a new post and fills in the assigned id and timestamp
	Create(ctx context.Context, post *Post) error

	// GetByID retrieves a post with its author username hydrated
	GetByID(ctx context.Context, id int64) (*Post, error)

	// List retrieves one page of posts, newest first, plus the total count
	List(ctx context.Context, limit, offset int) ([]*Post, int, error)

	// ListByAuthor is List filtered to a single author
	ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]*Post, int, error)

	// Update persists field changes to an existing post
	Update(ctx context.Context, post *Post) error

	// Delete removes a post and all of its comments.
	// The cascade is an explicit two-step delete, not a database-level one.
	Delete(ctx context.Context, id int64) error
}

// Service defines the interface for post business logic
type Service interface {
	ListPosts(ctx context.Context, page, pageSize int) (*PostPage, error)
	ListPostsByAuthor(ctx context.Context, username string, page, pageSize int) (*PostPage, error)
	GetPost(ctx context.Context, id int64) (*Post, error)
	CreatePost(ctx context.Context, principal *identity.Principal, req CreatePostRequest) (*Post, error)
	UpdatePost(ctx context.Context, principal *identity.Principal, id int64, req UpdatePostRequest) (*Post, error)
	DeletePost(ctx context.Context, principal *identity.Principal, id int64) (*DeletePostResponse, error)
}
