package identity

// Principal is the authenticated actor performing an operation.
// Principals are produced only by the auth middleware from a verified
// session or bearer token - never from request bodies, so a client can
// never name someone else as the actor.
type Principal struct {
	Username string `json:"username"`
	ID       int64  `json:"id"`
}

// IsAuthenticated reports whether p represents a logged-in user.
// A nil principal is the anonymous actor.
func (p *Principal) IsAuthenticated() bool {
	return p != nil && p.ID != 0
}
