package post

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Inkwell/internal/core/comments"
	"Inkwell/internal/core/posts"
)

// GetHandler handles post detail requests
type GetHandler struct {
	service        posts.Service
	commentService comments.Service
}

// NewGetHandler creates a new detail handler
func NewGetHandler(service posts.Service, commentService comments.Service) *GetHandler {
	return &GetHandler{
		service:        service,
		commentService: commentService,
	}
}

// detailResponse is the post detail view: the post, its comments newest
// first, and an empty comment input affordance for the presentation layer
// to render.
type detailResponse struct {
	Post        *posts.Post         `json:"post"`
	Comments    []*comments.Comment `json:"comments"`
	CommentForm commentForm         `json:"commentForm"`
}

type commentForm struct {
	Content     string `json:"content"`
	Placeholder string `json:"placeholder"`
}

// HandleGet handles GET /api/posts/{postID}
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	postID, err := parsePostID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	result, err := h.service.GetPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	postComments, err := h.commentService.ListForPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if postComments == nil {
		postComments = []*comments.Comment{}
	}

	response := detailResponse{
		Post:     result,
		Comments: postComments,
		CommentForm: commentForm{
			Placeholder: "Write a comment...",
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode post detail response: %v", err)
	}
}

// parsePostID reads the postID URL parameter
func parsePostID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "postID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, errInvalidPostID
	}
	return id, nil
}
