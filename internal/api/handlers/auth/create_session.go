package auth

import (
	"log"
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/api/middleware"
)

// CreateSessionHandler exchanges verified bearer credentials for a session
// cookie, so browser clients don't have to carry the JWT on every request.
type CreateSessionHandler struct {
	auth *middleware.AuthMiddleware
}

// NewCreateSessionHandler creates a new session exchange handler
func NewCreateSessionHandler(auth *middleware.AuthMiddleware) *CreateSessionHandler {
	return &CreateSessionHandler{auth: auth}
}

// HandleCreate handles POST /api/auth/session.
// The principal has already been verified (and indexed) by RequireAuth;
// this writes it into the session cookie.
func (h *CreateSessionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)
	if !principal.IsAuthenticated() {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired",
			"Authentication required")
		return
	}

	if err := h.auth.SaveSession(w, r, principal); err != nil {
		log.Printf("Failed to save session for user %d: %v", principal.ID, err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, principal)
}
