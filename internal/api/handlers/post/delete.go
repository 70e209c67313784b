package post

import (
	"encoding/json"
	"log"
	"net/http"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/posts"
)

// DeleteHandler handles post deletion requests
type DeleteHandler struct {
	service posts.Service
}

// NewDeleteHandler creates a new handler for deleting posts
func NewDeleteHandler(service posts.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

// HandleDelete handles DELETE /api/posts/{postID}
// Deleting a post cascades to all of its comments. Only the author may
// delete.
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	postID, err := parsePostID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	principal := middleware.GetPrincipal(r)
	if !principal.IsAuthenticated() {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	response, err := h.service.DeletePost(r.Context(), principal, postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode post delete response: %v", err)
	}
}
