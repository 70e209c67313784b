package comments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Inkwell/internal/core/identity"
	"Inkwell/internal/core/posts"
)

// MockCommentRepository is a mock implementation of Repository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, postID, commentID int64) (*Comment, error) {
	args := m.Called(ctx, postID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID int64) ([]*Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPostRepository is a mock implementation of posts.Repository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *posts.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, limit, offset int) ([]*posts.Post, int, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*posts.Post), args.Int(1), args.Error(2)
}

func (m *MockPostRepository) ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]*posts.Post, int, error) {
	args := m.Called(ctx, authorID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*posts.Post), args.Int(1), args.Error(2)
}

func (m *MockPostRepository) Update(ctx context.Context, post *posts.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestService() (Service, *MockCommentRepository, *MockPostRepository) {
	repo := new(MockCommentRepository)
	postRepo := new(MockPostRepository)
	return NewCommentService(repo, postRepo), repo, postRepo
}

var (
	alice    = &identity.Principal{ID: 1, Username: "alice"}
	bob      = &identity.Principal{ID: 2, Username: "bob"}
	charlie  = &identity.Principal{ID: 3, Username: "charlie"}
	testPost = &posts.Post{ID: 7, Title: "First post", AuthorID: alice.ID}
)

func TestAddComment_Anonymous(t *testing.T) {
	service, repo, _ := newTestService()

	_, err := service.AddComment(context.Background(), nil, 7, "nice post")

	assert.ErrorIs(t, err, ErrNotAuthenticated)
	repo.AssertNotCalled(t, "Create")
}

func TestAddComment_PostNotFound(t *testing.T) {
	service, repo, postRepo := newTestService()

	postRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, posts.ErrNotFound)

	_, err := service.AddComment(context.Background(), bob, 99, "nice post")

	assert.ErrorIs(t, err, posts.ErrNotFound)
	repo.AssertNotCalled(t, "Create")
}

func TestAddComment_EmptyContent(t *testing.T) {
	service, repo, postRepo := newTestService()

	postRepo.On("GetByID", mock.Anything, int64(7)).Return(testPost, nil)

	_, err := service.AddComment(context.Background(), bob, 7, "   ")

	assert.ErrorIs(t, err, ErrContentEmpty)
	repo.AssertNotCalled(t, "Create")
}

func TestAddComment_ReturnsPostLocation(t *testing.T) {
	service, repo, postRepo := newTestService()

	postRepo.On("GetByID", mock.Anything, int64(7)).Return(testPost, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *Comment) bool {
		return c.PostID == 7 && c.AuthorID == bob.ID
	})).Run(func(args mock.Arguments) {
		c := args.Get(1).(*Comment)
		c.ID = 42
		c.CreatedAt = time.Now()
	}).Return(nil)

	response, err := service.AddComment(context.Background(), bob, 7, "nice post")

	require.NoError(t, err)
	assert.Equal(t, "/api/posts/7", response.Location)
	require.NotNil(t, response.Comment)
	assert.Equal(t, int64(42), response.Comment.ID)
	assert.Equal(t, "bob", response.Comment.AuthorUsername)
	repo.AssertExpectations(t)
}

func TestDeleteComment_ByCommentAuthor(t *testing.T) {
	service, repo, postRepo := newTestService()

	repo.On("GetByID", mock.Anything, int64(7), int64(42)).Return(&Comment{
		ID: 42, PostID: 7, AuthorID: bob.ID,
	}, nil)
	postRepo.On("GetByID", mock.Anything, int64(7)).Return(testPost, nil)
	repo.On("Delete", mock.Anything, int64(42)).Return(nil)

	response, err := service.DeleteComment(context.Background(), bob, 7, 42)

	require.NoError(t, err)
	assert.True(t, response.Deleted)
	assert.Equal(t, "/api/posts/7", response.Location)
	repo.AssertExpectations(t)
}

func TestDeleteComment_ByPostAuthor(t *testing.T) {
	service, repo, postRepo := newTestService()

	// bob commented on alice's post; alice may remove it
	repo.On("GetByID", mock.Anything, int64(7), int64(42)).Return(&Comment{
		ID: 42, PostID: 7, AuthorID: bob.ID,
	}, nil)
	postRepo.On("GetByID", mock.Anything, int64(7)).Return(testPost, nil)
	repo.On("Delete", mock.Anything, int64(42)).Return(nil)

	response, err := service.DeleteComment(context.Background(), alice, 7, 42)

	require.NoError(t, err)
	assert.True(t, response.Deleted)
	repo.AssertExpectations(t)
}

func TestDeleteComment_ByStranger(t *testing.T) {
	service, repo, postRepo := newTestService()

	repo.On("GetByID", mock.Anything, int64(7), int64(42)).Return(&Comment{
		ID: 42, PostID: 7, AuthorID: bob.ID,
	}, nil)
	postRepo.On("GetByID", mock.Anything, int64(7)).Return(testPost, nil)

	_, err := service.DeleteComment(context.Background(), charlie, 7, 42)

	assert.ErrorIs(t, err, ErrNotAuthorized)
	repo.AssertNotCalled(t, "Delete")
}

func TestDeleteComment_WrongPost(t *testing.T) {
	service, repo, _ := newTestService()

	// Comment 42 lives under post 7, not post 8
	repo.On("GetByID", mock.Anything, int64(8), int64(42)).Return(nil, ErrCommentNotFound)

	_, err := service.DeleteComment(context.Background(), bob, 8, 42)

	assert.ErrorIs(t, err, ErrCommentNotFound)
	repo.AssertNotCalled(t, "Delete")
}
