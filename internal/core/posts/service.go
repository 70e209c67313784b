package posts

import (
	"context"
	"fmt"
	"strings"

	"Inkwell/internal/core/authz"
	"Inkwell/internal/core/identity"
	"Inkwell/internal/core/users"
)

type postService struct {
	repo     Repository
	userRepo users.Repository
}

// NewPostService creates a new post service
func NewPostService(repo Repository, userRepo users.Repository) Service {
	return &postService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// ListPosts retrieves one page of posts, newest first
func (s *postService) ListPosts(ctx context.Context, page, pageSize int) (*PostPage, error) {
	page, pageSize = clampPagination(page, pageSize)

	offset := (page - 1) * pageSize
	items, total, err := s.repo.List(ctx, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return buildPage(items, page, pageSize, total), nil
}

// ListPostsByAuthor retrieves one page of a single author's posts, newest first.
// Returns users.ErrUserNotFound if no user matches the username.
func (s *postService) ListPostsByAuthor(ctx context.Context, username string, page, pageSize int) (*PostPage, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}

	page, pageSize = clampPagination(page, pageSize)

	offset := (page - 1) * pageSize
	items, total, err := s.repo.ListByAuthor(ctx, user.ID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by %s: %w", username, err)
	}

	return buildPage(items, page, pageSize, total), nil
}

// GetPost retrieves a single post by id
func (s *postService) GetPost(ctx context.Context, id int64) (*Post, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// CreatePost persists a new post owned by the acting principal.
// The author always comes from the principal, never from client input.
func (s *postService) CreatePost(ctx context.Context, principal *identity.Principal, req CreatePostRequest) (*Post, error) {
	if !principal.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	if err := validateFields(req.Title, req.Content); err != nil {
		return nil, err
	}

	post := &Post{
		Title:         strings.TrimSpace(req.Title),
		Content:       req.Content,
		ImagePath:     req.ImagePath,
		ThumbnailPath: req.ThumbnailPath,
		AuthorID:      principal.ID,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	post.AuthorUsername = principal.Username
	return post, nil
}

// UpdatePost applies field changes to an existing post.
// Only the author may update; the author is re-assigned from the acting
// principal even on update so a tampered payload can never move ownership.
func (s *postService) UpdatePost(ctx context.Context, principal *identity.Principal, id int64, req UpdatePostRequest) (*Post, error) {
	if !principal.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !authz.CanModifyPost(principal, post.AuthorID) {
		return nil, ErrNotAuthorized
	}

	if err := validateFields(req.Title, req.Content); err != nil {
		return nil, err
	}

	post.Title = strings.TrimSpace(req.Title)
	post.Content = req.Content
	post.AuthorID = principal.ID
	post.AuthorUsername = principal.Username

	// New files replace prior values only if supplied
	if req.ImagePath != nil {
		post.ImagePath = req.ImagePath
	}
	if req.ThumbnailPath != nil {
		post.ThumbnailPath = req.ThumbnailPath
	}

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post %d: %w", id, err)
	}

	return post, nil
}

// DeletePost removes a post and, by explicit cascade, all of its comments.
func (s *postService) DeletePost(ctx context.Context, principal *identity.Principal, id int64) (*DeletePostResponse, error) {
	if !principal.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !authz.CanModifyPost(principal, post.AuthorID) {
		return nil, ErrNotAuthorized
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete post %d: %w", id, err)
	}

	return &DeletePostResponse{Message: "Post deleted successfully."}, nil
}

func validateFields(title, content string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return NewValidationError("title", "title is required")
	}
	if len(title) > MaxTitleLength {
		return NewValidationError("title",
			fmt.Sprintf("title must be at most %d characters", MaxTitleLength))
	}
	if strings.TrimSpace(content) == "" {
		return NewValidationError("content", "content is required")
	}
	return nil
}

func clampPagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

func buildPage(items []*Post, page, pageSize, total int) *PostPage {
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	return &PostPage{
		Posts:      items,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1 && total > 0,
	}
}
