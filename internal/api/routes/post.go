package routes

import (
	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/handlers/post"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/comments"
	"Inkwell/internal/core/posts"
)

// RegisterPostRoutes registers post endpoints on the router.
// Reads are public; create/update/delete require authentication and
// update/delete additionally require ownership (checked in the service).
func RegisterPostRoutes(r chi.Router, service posts.Service, commentService comments.Service, authMiddleware *middleware.AuthMiddleware) {
	listHandler := post.NewListHandler(service)
	getHandler := post.NewGetHandler(service, commentService)
	createHandler := post.NewCreateHandler(service)
	updateHandler := post.NewUpdateHandler(service)
	deleteHandler := post.NewDeleteHandler(service)

	r.Get("/api/posts", listHandler.HandleList)
	r.Get("/api/posts/{postID}", getHandler.HandleGet)
	r.Get("/api/users/{username}/posts", listHandler.HandleListByAuthor)

	r.With(authMiddleware.RequireAuth).Post("/api/posts", createHandler.HandleCreate)
	r.With(authMiddleware.RequireAuth).Put("/api/posts/{postID}", updateHandler.HandleUpdate)
	r.With(authMiddleware.RequireAuth).Delete("/api/posts/{postID}", deleteHandler.HandleDelete)
}
