package routes

import (
	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/handlers/comments"
	"Inkwell/internal/api/middleware"
	commentsCore "Inkwell/internal/core/comments"
)

// RegisterCommentRoutes registers comment endpoints on the router.
// Both operations require authentication; delete authority is the comment
// author or the post author.
func RegisterCommentRoutes(r chi.Router, service commentsCore.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := comments.NewCreateCommentHandler(service)
	deleteHandler := comments.NewDeleteCommentHandler(service)

	r.With(authMiddleware.RequireAuth).Post(
		"/api/posts/{postID}/comments",
		createHandler.HandleCreate)

	r.With(authMiddleware.RequireAuth).Delete(
		"/api/posts/{postID}/comments/{commentID}",
		deleteHandler.HandleDelete)
}
