package post

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/posts"
)

// UpdateHandler handles post update requests
type UpdateHandler struct {
	service posts.Service
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(service posts.Service) *UpdateHandler {
	return &UpdateHandler{service: service}
}

// updatePostInput mirrors createPostInput; nil image/thumbnail paths keep
// the stored values.
type updatePostInput struct {
	Title         string  `json:"title"`
	Content       string  `json:"content"`
	ImagePath     *string `json:"imagePath,omitempty"`
	ThumbnailPath *string `json:"thumbnailPath,omitempty"`
	AuthorID      *int64  `json:"authorId,omitempty"`
}

// HandleUpdate handles PUT /api/posts/{postID}
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	postID, err := parsePostID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1*1024*1024)

	var input updatePostInput
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

	// Same anti-spoofing rule as create: ownership never comes from the body
	if input.AuthorID != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest",
			"authorId must not be provided - derived from authenticated user")
		return
	}

	req := posts.UpdatePostRequest{
		Title:         input.Title,
		Content:       input.Content,
		ImagePath:     input.ImagePath,
		ThumbnailPath: input.ThumbnailPath,
	}

	updated, err := h.service.UpdatePost(r.Context(), principal, postID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(updated); err != nil {
		log.Printf("Failed to encode post update response: %v", err)
	}
}
