package comments

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/middleware"
	commentsCore "Inkwell/internal/core/comments"
	"Inkwell/internal/core/posts"
)

var (
	errInvalidPostID    = errors.New("postID must be a positive integer")
	errInvalidCommentID = errors.New("commentID must be a positive integer")
)

// DeleteCommentHandler handles comment deletion requests
type DeleteCommentHandler struct {
	service commentsCore.Service
}

// NewDeleteCommentHandler creates a new handler for deleting comments
func NewDeleteCommentHandler(service commentsCore.Service) *DeleteCommentHandler {
	return &DeleteCommentHandler{service: service}
}

// HandleDelete handles DELETE /api/posts/{postID}/comments/{commentID}
//
// A denied or missing comment is NOT a hard failure here: the caller gets
// 200 with a warning and the post's location, and the flow continues to
// the detail view with the comment left intact. Only a missing post (or
// an anonymous caller) fails outright.
func (h *DeleteCommentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	postID, err := parseCommentPostID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	commentID, err := strconv.ParseInt(chi.URLParam(r, "commentID"), 10, 64)
	if err != nil || commentID < 1 {
		writeError(w, http.StatusBadRequest, "InvalidRequest", errInvalidCommentID.Error())
		return
	}

	principal := middleware.GetPrincipal(r)
	if !principal.IsAuthenticated() {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	response, err := h.service.DeleteComment(r.Context(), principal, postID, commentID)
	switch {
	case err == nil:

	case errors.Is(err, commentsCore.ErrNotAuthorized):
		response = &commentsCore.DeleteCommentResponse{
			Deleted:  false,
			Warning:  "You do not have permission to delete this comment",
			Location: posts.PostLocation(postID),
		}

	case errors.Is(err, commentsCore.ErrCommentNotFound):
		response = &commentsCore.DeleteCommentResponse{
			Deleted:  false,
			Warning:  "Comment not found",
			Location: posts.PostLocation(postID),
		}

	default:
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode comment delete response: %v", err)
	}
}
