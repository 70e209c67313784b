package routes

import (
	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/handlers/auth"
	"Inkwell/internal/api/middleware"
)

// RegisterAuthRoutes registers the session exchange endpoint.
// Callers authenticate with a bearer token and receive a session cookie.
func RegisterAuthRoutes(r chi.Router, authMiddleware *middleware.AuthMiddleware) {
	sessionHandler := auth.NewCreateSessionHandler(authMiddleware)

	r.With(authMiddleware.RequireAuth).Post("/api/auth/session", sessionHandler.HandleCreate)
}
