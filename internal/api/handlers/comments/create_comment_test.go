package comments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/middleware"
	commentsCore "Inkwell/internal/core/comments"
	"Inkwell/internal/core/identity"
	"Inkwell/internal/core/posts"
)

func createCommentRequest(t *testing.T, handler *CreateCommentHandler, target, body string, p *identity.Principal) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	r.Post("/api/posts/{postID}/comments", handler.HandleCreate)

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	if p != nil {
		req = req.WithContext(middleware.SetTestPrincipal(req.Context(), p))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleCreateComment_Anonymous(t *testing.T) {
	handler := NewCreateCommentHandler(&commentTestService{})

	rec := createCommentRequest(t, handler, "/api/posts/7/comments",
		`{"content": "hello"}`, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestHandleCreateComment_PostNotFound(t *testing.T) {
	handler := NewCreateCommentHandler(&commentTestService{
		addFunc: func(ctx context.Context, principal *identity.Principal, postID int64, content string) (*commentsCore.AddCommentResponse, error) {
			return nil, posts.ErrNotFound
		},
	})

	rec := createCommentRequest(t, handler, "/api/posts/999/comments",
		`{"content": "hello"}`, &identity.Principal{ID: 3, Username: "charlie"})

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error != "PostNotFound" {
		t.Errorf("expected PostNotFound, got %q", resp.Error)
	}
}

func TestHandleCreateComment_EmptyContent(t *testing.T) {
	handler := NewCreateCommentHandler(&commentTestService{
		addFunc: func(ctx context.Context, principal *identity.Principal, postID int64, content string) (*commentsCore.AddCommentResponse, error) {
			return nil, commentsCore.ErrContentEmpty
		},
	})

	rec := createCommentRequest(t, handler, "/api/posts/7/comments",
		`{"content": ""}`, &identity.Principal{ID: 3, Username: "charlie"})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleCreateComment_Success(t *testing.T) {
	var gotPostID int64
	var gotContent string
	handler := NewCreateCommentHandler(&commentTestService{
		addFunc: func(ctx context.Context, principal *identity.Principal, postID int64, content string) (*commentsCore.AddCommentResponse, error) {
			gotPostID = postID
			gotContent = content
			return &commentsCore.AddCommentResponse{
				Location: posts.PostLocation(postID),
				Comment: &commentsCore.Comment{
					ID:             42,
					PostID:         postID,
					AuthorID:       principal.ID,
					AuthorUsername: principal.Username,
					Content:        content,
				},
			}, nil
		},
	})

	rec := createCommentRequest(t, handler, "/api/posts/7/comments",
		`{"content": "nice post"}`, &identity.Principal{ID: 3, Username: "charlie"})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotPostID != 7 {
		t.Errorf("expected post id 7, got %d", gotPostID)
	}
	if gotContent != "nice post" {
		t.Errorf("unexpected content %q", gotContent)
	}

	var resp commentsCore.AddCommentResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Location != "/api/posts/7" {
		t.Errorf("unexpected location %q", resp.Location)
	}
	if resp.Comment == nil || resp.Comment.ID != 42 {
		t.Errorf("unexpected comment %+v", resp.Comment)
	}
}

func TestHandleCreateComment_InvalidPostID(t *testing.T) {
	handler := NewCreateCommentHandler(&commentTestService{})

	rec := createCommentRequest(t, handler, "/api/posts/abc/comments",
		`{"content": "hello"}`, &identity.Principal{ID: 3, Username: "charlie"})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
