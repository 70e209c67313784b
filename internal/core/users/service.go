package users

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Username validation regex, matching the identity provider's contract:
// letters, digits and @ . + - _ only.
var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9@.+_-]+$`)

type userService struct {
	repo Repository
}

// NewUserService creates a new user service
func NewUserService(repo Repository) Service {
	return &userService{repo: repo}
}

// IndexUser creates or updates a user in the local database
func (s *userService) IndexUser(ctx context.Context, id int64, username string) (*User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("user id must be positive, got %d", id)
	}
	username = strings.TrimSpace(username)
	if err := validateUsername(username); err != nil {
		return nil, err
	}

	user := &User{
		ID:       id,
		Username: username,
	}

	// Repository handles duplicate constraint errors
	return s.repo.Upsert(ctx, user)
}

// GetUserByID retrieves a user by their id
func (s *userService) GetUserByID(ctx context.Context, id int64) (*User, error) {
	if id <= 0 {
		return nil, ErrUserNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// GetUserByUsername retrieves a user by their username
func (s *userService) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUserNotFound
	}
	return s.repo.GetByUsername(ctx, username)
}

// GetProfile retrieves a user's profile with aggregated statistics
func (s *userService) GetProfile(ctx context.Context, username string) (*Profile, error) {
	user, err := s.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	stats, err := s.repo.GetProfileStats(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile stats for %s: %w", username, err)
	}

	return &Profile{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		Stats:     stats,
	}, nil
}

func validateUsername(username string) error {
	if username == "" {
		return &InvalidUsernameError{Username: username, Reason: "username is required"}
	}
	if len(username) > 150 {
		return &InvalidUsernameError{Username: username, Reason: "must be at most 150 characters"}
	}
	if !usernameRegex.MatchString(username) {
		return &InvalidUsernameError{
			Username: username,
			Reason:   "must contain only letters, digits and @/./+/-/_ characters",
		}
	}
	return nil
}
