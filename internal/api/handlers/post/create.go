package post

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/posts"
)

var errInvalidPostID = errors.New("postID must be a positive integer")

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// createPostInput is the request body for POST /api/posts.
// There is deliberately no author field - the author always comes from
// the authenticated principal.
type createPostInput struct {
	Title         string  `json:"title"`
	Content       string  `json:"content"`
	ImagePath     *string `json:"imagePath,omitempty"`
	ThumbnailPath *string `json:"thumbnailPath,omitempty"`
	AuthorID      *int64  `json:"authorId,omitempty"`
}

// HandleCreate handles POST /api/posts
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// Limit request body size; 1MB allows large rich-text content while
	// preventing abuse
	r.Body = http.MaxBytesReader(w, r.Body, 1*1024*1024)

	var input createPostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "RequestTooLarge",
				"Request body too large (max 1MB)")
			return
		}
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	principal := middleware.GetPrincipal(r)
	if !principal.IsAuthenticated() {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	// Reject client-provided author ids outright - the author is derived
	// from the authenticated principal to prevent spoofing
	if input.AuthorID != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest",
			"authorId must not be provided - derived from authenticated user")
		return
	}

	req := posts.CreatePostRequest{
		Title:         input.Title,
		Content:       input.Content,
		ImagePath:     input.ImagePath,
		ThumbnailPath: input.ThumbnailPath,
	}

	created, err := h.service.CreatePost(r.Context(), principal, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		log.Printf("Failed to encode post creation response: %v", err)
	}
}
