// Package authz holds the stateless authorization predicates evaluated at
// the start of every mutating operation. Ownership is always re-checked per
// call against current state - there is no caching and no revocation window.
package authz

import (
	"Inkwell/internal/core/identity"
)

// CanModifyPost reports whether the principal may update or delete a post.
// Only the post's author may mutate it.
func CanModifyPost(p *identity.Principal, postAuthorID int64) bool {
	return p.IsAuthenticated() && p.ID == postAuthorID
}

// CanDeleteComment reports whether the principal may delete a comment.
// Dual authority: the comment's author or the author of the post it
// belongs to.
func CanDeleteComment(p *identity.Principal, commentAuthorID, postAuthorID int64) bool {
	if !p.IsAuthenticated() {
		return false
	}
	return p.ID == commentAuthorID || p.ID == postAuthorID
}
