package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"Inkwell/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

// Upsert creates or refreshes a user record by id
func (r *postgresUserRepo) Upsert(ctx context.Context, user *users.User) (*users.User, error) {
	query := `
		INSERT INTO users (id, username)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET username = EXCLUDED.username
		RETURNING id, username, created_at`

	err := r.db.QueryRowContext(ctx, query, user.ID, user.Username).
		Scan(&user.ID, &user.Username, &user.CreatedAt)
	if err != nil {
		// Username uniqueness is a separate constraint from the id conflict
		if strings.Contains(err.Error(), "duplicate key") &&
			strings.Contains(err.Error(), "users_username_key") {
			return nil, users.ErrUsernameAlreadyTaken
		}
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by their id
func (r *postgresUserRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	user := &users.User{}
	query := `SELECT id, username, created_at FROM users WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.Username, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// GetByUsername retrieves a user by their username
func (r *postgresUserRepo) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	user := &users.User{}
	query := `SELECT id, username, created_at FROM users WHERE username = $1`

	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

// GetProfileStats retrieves aggregated post/comment counts for a user
func (r *postgresUserRepo) GetProfileStats(ctx context.Context, id int64) (*users.ProfileStats, error) {
	stats := &users.ProfileStats{}
	query := `
		SELECT
			(SELECT COUNT(*) FROM posts WHERE author_id = $1),
			(SELECT COUNT(*) FROM comments WHERE author_id = $1)`

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&stats.PostCount, &stats.CommentCount)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile stats: %w", err)
	}

	return stats, nil
}
