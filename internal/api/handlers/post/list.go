package post

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Inkwell/internal/core/posts"
)

var (
	errInvalidPage     = errors.New("page must be a positive integer")
	errInvalidPageSize = errors.New("pageSize must be a positive integer")
)

// ListHandler handles post listing requests
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList handles GET /api/posts?page=&pageSize=
// Returns one page of posts, newest first.
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, pageSize, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	result, err := h.service.ListPosts(r.Context(), page, pageSize)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeListResponse(w, result)
}

// HandleListByAuthor handles GET /api/users/{username}/posts?page=&pageSize=
// 404 if the username is unknown.
func (h *ListHandler) HandleListByAuthor(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "username is required")
		return
	}

	page, pageSize, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	result, err := h.service.ListPostsByAuthor(r.Context(), username, page, pageSize)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeListResponse(w, result)
}

// parsePagination reads page/pageSize query params. Absent params fall
// back to the service defaults; garbage is rejected rather than silently
// treated as page one.
func parsePagination(r *http.Request) (page, pageSize int, err error) {
	page = 1
	pageSize = posts.DefaultPageSize

	if v := r.URL.Query().Get("page"); v != "" {
		page, err = strconv.Atoi(v)
		if err != nil || page < 1 {
			return 0, 0, errInvalidPage
		}
	}
	if v := r.URL.Query().Get("pageSize"); v != "" {
		pageSize, err = strconv.Atoi(v)
		if err != nil || pageSize < 1 {
			return 0, 0, errInvalidPageSize
		}
	}
	return page, pageSize, nil
}

func writeListResponse(w http.ResponseWriter, result *posts.PostPage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Printf("Failed to encode post list response: %v", err)
	}
}
