package users

import "context"

// Repository defines the interface for user data persistence
type Repository interface {
	// Upsert creates or refreshes a user record by id.
	// Idempotent: indexing the same principal twice is safe.
	Upsert(ctx context.Context, user *User) (*User, error)

	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)

	// GetProfileStats retrieves aggregated post/comment counts for a user.
	GetProfileStats(ctx context.Context, id int64) (*ProfileStats, error)
}

// Service defines the interface for user business logic
type Service interface {
	// IndexUser creates or updates a user in the local database.
	// Called when the identity provider reports a principal we haven't
	// seen yet, so posts and comments always have a row to reference.
	IndexUser(ctx context.Context, id int64, username string) (*User, error)

	GetUserByID(ctx context.Context, id int64) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)

	// GetProfile retrieves a user's profile with aggregated statistics.
	GetProfile(ctx context.Context, username string) (*Profile, error)
}
