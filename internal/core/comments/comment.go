package comments

import (
	"time"
)

// Comment is a plain-text comment bound to exactly one post and one author.
// A post's comments are enumerated newest first.
type Comment struct {
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	Content        string    `json:"content" db:"content"`
	AuthorUsername string    `json:"authorUsername,omitempty" db:"-"`
	ID             int64     `json:"id" db:"id"`
	PostID         int64     `json:"postId" db:"post_id"`
	AuthorID       int64     `json:"authorId" db:"author_id"`
}

// AddCommentResponse is returned after a comment is created. Location is
// the parent post's canonical location - the caller resumes at the post
// detail view, not at the comment.
type AddCommentResponse struct {
	Location string   `json:"location"`
	Comment  *Comment `json:"comment"`
}

// DeleteCommentResponse reports the outcome of a delete. Denied or missing
// comments surface as a warning with the flow continuing to the post's
// detail view rather than as a hard failure.
type DeleteCommentResponse struct {
	Location string `json:"location"`
	Message  string `json:"message,omitempty"`
	Warning  string `json:"warning,omitempty"`
	Deleted  bool   `json:"deleted"`
}
