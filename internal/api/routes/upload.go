package routes

import (
	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/handlers/uploads"
	"Inkwell/internal/api/middleware"
	uploadsCore "Inkwell/internal/core/uploads"
)

// RegisterUploadRoutes registers the editor image upload endpoint.
// Auth is optional: anonymous uploads land under the anonymous owner
// segment.
func RegisterUploadRoutes(r chi.Router, resolver *uploadsCore.Resolver, authMiddleware *middleware.AuthMiddleware) {
	uploadHandler := uploads.NewUploadImageHandler(resolver)

	r.With(authMiddleware.OptionalAuth).Post("/api/uploads/images", uploadHandler.HandleUpload)
}
