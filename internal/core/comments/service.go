package comments

import (
	"context"
	"fmt"
	"strings"

	"Inkwell/internal/core/authz"
	"Inkwell/internal/core/identity"
	"Inkwell/internal/core/posts"
)

type commentService struct {
	repo     Repository
	postRepo posts.Repository
}

// NewCommentService creates a new comment service
func NewCommentService(repo Repository, postRepo posts.Repository) Service {
	return &commentService{
		repo:     repo,
		postRepo: postRepo,
	}
}

// AddComment persists a comment on an existing post. The comment's author
// is always the acting principal. Returns the post's canonical location as
// the operation's resumption point.
func (s *commentService) AddComment(ctx context.Context, principal *identity.Principal, postID int64, content string) (*AddCommentResponse, error) {
	if !principal.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	// Referential check: the parent post must exist before we write
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(content) == "" {
		return nil, ErrContentEmpty
	}

	comment := &Comment{
		PostID:   post.ID,
		AuthorID: principal.ID,
		Content:  content,
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment on post %d: %w", postID, err)
	}

	comment.AuthorUsername = principal.Username

	return &AddCommentResponse{
		Location: posts.PostLocation(post.ID),
		Comment:  comment,
	}, nil
}

// ListForPost retrieves a post's comments, newest first
func (s *commentService) ListForPost(ctx context.Context, postID int64) ([]*Comment, error) {
	if postID <= 0 {
		return nil, posts.ErrNotFound
	}
	return s.repo.ListByPost(ctx, postID)
}

// DeleteComment removes a comment if the principal is its author or the
// author of the post it belongs to. Denials surface as ErrNotAuthorized;
// the transport layer downgrades them to a warning plus a redirect to the
// post detail view, leaving the comment intact.
func (s *commentService) DeleteComment(ctx context.Context, principal *identity.Principal, postID, commentID int64) (*DeleteCommentResponse, error) {
	if !principal.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	comment, err := s.repo.GetByID(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !authz.CanDeleteComment(principal, comment.AuthorID, post.AuthorID) {
		return nil, ErrNotAuthorized
	}

	if err := s.repo.Delete(ctx, comment.ID); err != nil {
		return nil, fmt.Errorf("failed to delete comment %d: %w", commentID, err)
	}

	return &DeleteCommentResponse{
		Deleted:  true,
		Message:  "Comment deleted",
		Location: posts.PostLocation(post.ID),
	}, nil
}
