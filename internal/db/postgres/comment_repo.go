package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"Inkwell/internal/core/comments"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

// Create inserts a new comment into the comments table
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) error {
	query := `
		INSERT INTO comments (post_id, author_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, comment.PostID, comment.AuthorID, comment.Content).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			if strings.Contains(err.Error(), "fk_comments_post") {
				return fmt.Errorf("post not found: %d", comment.PostID)
			}
			if strings.Contains(err.Error(), "fk_comments_author") {
				return fmt.Errorf("author not found: %d", comment.AuthorID)
			}
		}
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

// GetByID retrieves a comment scoped to its post
func (r *postgresCommentRepo) GetByID(ctx context.Context, postID, commentID int64) (*comments.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.author_id, c.content, c.created_at, u.username
		FROM comments c
		INNER JOIN users u ON c.author_id = u.id
		WHERE c.id = $1 AND c.post_id = $2`

	var comment comments.Comment
	err := r.db.QueryRowContext(ctx, query, commentID, postID).Scan(
		&comment.ID, &comment.PostID, &comment.AuthorID,
		&comment.Content, &comment.CreatedAt, &comment.AuthorUsername,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return &comment, nil
}

// ListByPost retrieves all comments on a post, newest first
func (r *postgresCommentRepo) ListByPost(ctx context.Context, postID int64) ([]*comments.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.author_id, c.content, c.created_at, u.username
		FROM comments c
		INNER JOIN users u ON c.author_id = u.id
		WHERE c.post_id = $1
		ORDER BY c.created_at DESC, c.id DESC`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("WARN: failed to close rows: %v", err)
		}
	}()

	var results []*comments.Comment
	for rows.Next() {
		var comment comments.Comment
		if err := rows.Scan(
			&comment.ID, &comment.PostID, &comment.AuthorID,
			&comment.Content, &comment.CreatedAt, &comment.AuthorUsername,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		results = append(results, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return results, nil
}

// Delete removes a single comment
func (r *postgresCommentRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return comments.ErrCommentNotFound
	}

	return nil
}
