package routes

import (
	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/handlers/user"
	"Inkwell/internal/core/users"
)

// RegisterUserRoutes registers public user profile endpoints on the router
func RegisterUserRoutes(r chi.Router, service users.Service) {
	profileHandler := user.NewGetProfileHandler(service)

	r.Get("/api/users/{username}", profileHandler.HandleGetProfile)
}
