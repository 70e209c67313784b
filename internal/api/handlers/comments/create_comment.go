package comments

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/middleware"
	commentsCore "Inkwell/internal/core/comments"
)

// CreateCommentHandler handles comment creation requests
type CreateCommentHandler struct {
	service commentsCore.Service
}

// NewCreateCommentHandler creates a new handler for creating comments
func NewCreateCommentHandler(service commentsCore.Service) *CreateCommentHandler {
	return &CreateCommentHandler{service: service}
}

// createCommentInput is the request body for POST /api/posts/{postID}/comments
type createCommentInput struct {
	Content string `json:"content"`
}

// HandleCreate handles comment creation.
// Responds with the parent post's canonical location - the caller resumes
// at the post detail view.
func (h *CreateCommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	postID, err := parseCommentPostID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	// 100KB is plenty for a plain-text comment
	r.Body = http.MaxBytesReader(w, r.Body, 100*1024)

	var input createCommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	principal := middleware.GetPrincipal(r)
	if !principal.IsAuthenticated() {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	response, err := h.service.AddComment(r.Context(), principal, postID, input.Content)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode comment creation response: %v", err)
	}
}

// parseCommentPostID reads the postID URL parameter
func parseCommentPostID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil || id < 1 {
		return 0, errInvalidPostID
	}
	return id, nil
}
