package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"Inkwell/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post into the posts table
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (title, content, image_path, thumbnail_path, author_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(
		ctx, query,
		post.Title, post.Content,
		nullString(post.ImagePath), nullString(post.ThumbnailPath),
		post.AuthorID,
	).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			return fmt.Errorf("author not found: %d", post.AuthorID)
		}
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// GetByID retrieves a post by id with its author username hydrated
func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	query := `
		SELECT
			p.id, p.title, p.content, p.image_path, p.thumbnail_path,
			p.created_at, p.author_id, u.username
		FROM posts p
		INNER JOIN users u ON p.author_id = u.id
		WHERE p.id = $1`

	var post posts.Post
	var imagePath, thumbnailPath sql.NullString

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.Title, &post.Content, &imagePath, &thumbnailPath,
		&post.CreatedAt, &post.AuthorID, &post.AuthorUsername,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	if imagePath.Valid {
		post.ImagePath = &imagePath.String
	}
	if thumbnailPath.Valid {
		post.ThumbnailPath = &thumbnailPath.String
	}

	return &post, nil
}

// List retrieves one page of posts, newest first, plus the total count
func (r *postgresPostRepo) List(ctx context.Context, limit, offset int) ([]*posts.Post, int, error) {
	return r.list(ctx, "", nil, limit, offset)
}

// ListByAuthor retrieves one page of a single author's posts, newest first
func (r *postgresPostRepo) ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]*posts.Post, int, error) {
	return r.list(ctx, "p.author_id = $1", []interface{}{authorID}, limit, offset)
}

// list is the shared page query. The newest-first ordering uses id as a
// tiebreak so posts created in the same instant still page stably.
func (r *postgresPostRepo) list(ctx context.Context, filter string, args []interface{}, limit, offset int) ([]*posts.Post, int, error) {
	whereClause := ""
	if filter != "" {
		whereClause = "WHERE " + filter
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM posts p %s`, whereClause)

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	paramIndex := len(args) + 1
	query := fmt.Sprintf(`
		SELECT
			p.id, p.title, p.content, p.image_path, p.thumbnail_path,
			p.created_at, p.author_id, u.username
		FROM posts p
		INNER JOIN users u ON p.author_id = u.id
		%s
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $%d OFFSET $%d`, whereClause, paramIndex, paramIndex+1)

	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query posts: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("WARN: failed to close rows: %v", err)
		}
	}()

	var results []*posts.Post
	for rows.Next() {
		var post posts.Post
		var imagePath, thumbnailPath sql.NullString

		if err := rows.Scan(
			&post.ID, &post.Title, &post.Content, &imagePath, &thumbnailPath,
			&post.CreatedAt, &post.AuthorID, &post.AuthorUsername,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan post: %w", err)
		}

		if imagePath.Valid {
			post.ImagePath = &imagePath.String
		}
		if thumbnailPath.Valid {
			post.ThumbnailPath = &thumbnailPath.String
		}

		results = append(results, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating posts: %w", err)
	}

	return results, total, nil
}

// Update persists field changes to an existing post
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) error {
	query := `
		UPDATE posts
		SET title = $1, content = $2, image_path = $3, thumbnail_path = $4,
			author_id = $5
		WHERE id = $6`

	result, err := r.db.ExecContext(
		ctx, query,
		post.Title, post.Content,
		nullString(post.ImagePath), nullString(post.ThumbnailPath),
		post.AuthorID, post.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return posts.ErrNotFound
	}

	return nil
}

// Delete removes a post and all of its comments.
// The cascade is an explicit two-step routine: comments first, then the
// post. Each statement relies on the store's native row-level atomicity;
// no multi-row transaction is composed.
func (r *postgresPostRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE post_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete comments for post %d: %w", id, err)
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return posts.ErrNotFound
	}

	return nil
}

// nullString converts an optional string to its sql representation
func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
