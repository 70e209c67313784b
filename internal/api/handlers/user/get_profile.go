package user

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/core/users"
)

// GetProfileHandler handles user profile requests
type GetProfileHandler struct {
	service users.Service
}

// NewGetProfileHandler creates a new profile handler
func NewGetProfileHandler(service users.Service) *GetProfileHandler {
	return &GetProfileHandler{service: service}
}

// HandleGetProfile handles GET /api/users/{username}
// Returns the profile with aggregated post/comment counts.
func (h *GetProfileHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "username is required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), username)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			handlers.WriteError(w, http.StatusNotFound, "UserNotFound", "User not found")
			return
		}
		log.Printf("Unexpected error in profile handler: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, profile)
}
