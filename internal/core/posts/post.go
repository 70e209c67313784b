package posts

import (
	"fmt"
	"time"
)

// PostLocation returns the canonical API location for a post id.
// Comment operations return it as their resumption point.
func PostLocation(id int64) string {
	return fmt.Sprintf("/api/posts/%d", id)
}

// MaxTitleLength is the upper bound on post titles.
const MaxTitleLength = 100

// DefaultPageSize matches the paginate_by used by the web frontend.
const DefaultPageSize = 3

// MaxPageSize caps pageSize requested by clients.
const MaxPageSize = 100

// Post is a blog post. Content is an opaque rich-text markup string
// produced by the editor widget - the service never parses it.
// ImagePath and ThumbnailPath are media-relative blob references.
type Post struct {
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	Title          string    `json:"title" db:"title"`
	Content        string    `json:"content" db:"content"`
	AuthorUsername string    `json:"authorUsername,omitempty" db:"-"`
	ImagePath      *string   `json:"imagePath,omitempty" db:"image_path"`
	ThumbnailPath  *string   `json:"thumbnailPath,omitempty" db:"thumbnail_path"`
	ID             int64     `json:"id" db:"id"`
	AuthorID       int64     `json:"authorId" db:"author_id"`
}

// Location returns the canonical API location of the post.
func (p *Post) Location() string {
	return PostLocation(p.ID)
}

// CreatePostRequest represents input for creating a new post.
// The author is never part of the request - it is always taken from the
// acting principal.
type CreatePostRequest struct {
	Title         string  `json:"title"`
	Content       string  `json:"content"`
	ImagePath     *string `json:"imagePath,omitempty"`
	ThumbnailPath *string `json:"thumbnailPath,omitempty"`
}

// UpdatePostRequest represents input for updating an existing post.
// Nil image/thumbnail paths leave the stored values untouched; new files
// replace prior values only when supplied.
type UpdatePostRequest struct {
	Title         string  `json:"title"`
	Content       string  `json:"content"`
	ImagePath     *string `json:"imagePath,omitempty"`
	ThumbnailPath *string `json:"thumbnailPath,omitempty"`
}

// PostPage is one page of a newest-first post listing.
type PostPage struct {
	Posts      []*Post `json:"posts"`
	Page       int     `json:"page"`
	PageSize   int     `json:"pageSize"`
	Total      int     `json:"total"`
	TotalPages int     `json:"totalPages"`
	HasNext    bool    `json:"hasNext"`
	HasPrev    bool    `json:"hasPrev"`
}

// DeletePostResponse carries the success notification emitted to the caller.
type DeletePostResponse struct {
	Message string `json:"message"`
}
