package users

import (
	"time"
)

// User is an account tracked by the blog service. Accounts are created and
// owned by the external identity provider - this table only mirrors the
// stable id and username so posts and comments have something to reference.
type User struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Username  string    `json:"username" db:"username"`
	ID        int64     `json:"id" db:"id"`
}

// ProfileStats contains aggregated activity counts for a user profile.
type ProfileStats struct {
	PostCount    int `json:"postCount"`
	CommentCount int `json:"commentCount"`
}

// Profile is the full profile response for GET /api/users/{username}.
type Profile struct {
	CreatedAt time.Time     `json:"createdAt"`
	Username  string        `json:"username"`
	Stats     *ProfileStats `json:"stats,omitempty"`
	ID        int64         `json:"id"`
}
