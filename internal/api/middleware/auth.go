package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"Inkwell/internal/core/identity"
	"Inkwell/internal/core/users"
)

// SessionName is the cookie name written by the identity provider's
// login flow.
const SessionName = "inkwell_session"

// Context keys for storing user information
type contextKey string

const principalKey contextKey = "principal"

var errInvalidSubject = errors.New("token subject is not a valid user id")

// AuthMiddleware authenticates requests against the external identity
// provider's credentials. Two forms are accepted: a bearer JWT minted by
// the provider (HS256, shared secret) or a session cookie it wrote at
// login. The bearer token takes priority when both are present.
type AuthMiddleware struct {
	store       *sessions.CookieStore
	jwtKey      []byte
	userService users.Service
}

// NewAuthMiddleware creates a new auth middleware.
// sessionSecret signs the session cookie store; jwtKey verifies bearer
// tokens. Resolved principals are mirrored into the local users table via
// userService so posts and comments always have an author row to reference.
func NewAuthMiddleware(sessionSecret, jwtKey []byte, userService users.Service) *AuthMiddleware {
	return &AuthMiddleware{
		store:       sessions.NewCookieStore(sessionSecret),
		jwtKey:      jwtKey,
		userService: userService,
	}
}

// RequireAuth ensures the caller is authenticated.
// If not, returns 401. If authenticated, injects the principal into the
// request context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := m.resolvePrincipal(r)
		if !principal.IsAuthenticated() {
			writeAuthError(w, "Authentication required")
			return
		}

		if err := m.indexPrincipal(r, principal); err != nil {
			log.Printf("[AUTH_INDEX] failed to index user %d ip=%s path=%s error=%v",
				principal.ID, r.RemoteAddr, r.URL.Path, err)
			writeInternalError(w)
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth loads the principal if the caller is authenticated, but
// doesn't require it. Used by endpoints that serve both authenticated and
// anonymous callers.
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := m.resolvePrincipal(r)
		if !principal.IsAuthenticated() {
			next.ServeHTTP(w, r)
			return
		}

		// Indexing failure degrades to anonymous rather than failing a
		// request that never required auth in the first place
		if err := m.indexPrincipal(r, principal); err != nil {
			log.Printf("[AUTH_INDEX] failed to index user %d ip=%s path=%s error=%v",
				principal.ID, r.RemoteAddr, r.URL.Path, err)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// resolvePrincipal extracts a principal from the request credentials.
// Returns nil for anonymous or invalid credentials.
func (m *AuthMiddleware) resolvePrincipal(r *http.Request) *identity.Principal {
	if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		raw := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		principal, err := m.verifyToken(raw)
		if err != nil {
			log.Printf("[AUTH_FAILURE] type=token ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			return nil
		}
		return principal
	}

	return m.sessionPrincipal(r)
}

// verifyToken validates a bearer JWT and extracts the principal from its
// sub and username claims.
func (m *AuthMiddleware) verifyToken(raw string) (*identity.Principal, error) {
	tok, err := jwt.Parse([]byte(raw),
		jwt.WithKey(jwa.HS256, m.jwtKey),
		jwt.WithValidate(true),
	)
	if err != nil {
		return nil, err
	}

	id, err := strconv.ParseInt(tok.Subject(), 10, 64)
	if err != nil || id <= 0 {
		return nil, errInvalidSubject
	}

	username := ""
	if v, ok := tok.Get("username"); ok {
		username, _ = v.(string)
	}

	return &identity.Principal{ID: id, Username: username}, nil
}

// indexPrincipal upserts the resolved principal into the local users table.
// Idempotent per the repository contract, so every authenticated request
// may call it; a principal seen for the first time gets its author row
// here, before any post or comment write can reference it.
func (m *AuthMiddleware) indexPrincipal(r *http.Request, p *identity.Principal) error {
	if m.userService == nil {
		return nil
	}
	_, err := m.userService.IndexUser(r.Context(), p.ID, p.Username)
	return err
}

// sessionPrincipal extracts the principal from the session cookie, if any
func (m *AuthMiddleware) sessionPrincipal(r *http.Request) *identity.Principal {
	session, err := m.store.Get(r, SessionName)
	if err != nil || session.IsNew {
		return nil
	}

	id, ok := session.Values["user_id"].(int64)
	if !ok || id <= 0 {
		return nil
	}
	username, _ := session.Values["username"].(string)

	return &identity.Principal{ID: id, Username: username}
}

// SaveSession writes a principal into the session cookie. Exposed for the
// identity provider's login callback and for tests.
func (m *AuthMiddleware) SaveSession(w http.ResponseWriter, r *http.Request, p *identity.Principal) error {
	session, err := m.store.Get(r, SessionName)
	if err != nil {
		// A stale or tampered cookie still yields a fresh session
		session, err = m.store.New(r, SessionName)
		if err != nil {
			return err
		}
	}

	session.Values["user_id"] = p.ID
	session.Values["username"] = p.Username
	return session.Save(r, w)
}

// GetPrincipal extracts the principal from the request context.
// Returns nil (anonymous) if not authenticated.
func GetPrincipal(r *http.Request) *identity.Principal {
	principal, _ := r.Context().Value(principalKey).(*identity.Principal)
	return principal
}

// SetTestPrincipal injects a principal into the context for tests.
func SetTestPrincipal(ctx context.Context, p *identity.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// writeAuthError writes a JSON error response for authentication failures
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	response := `{"error":"AuthRequired","message":"` + message + `"}`
	if _, err := w.Write([]byte(response)); err != nil {
		log.Printf("Failed to write auth error response: %v", err)
	}
}

// writeInternalError writes a JSON error response for indexing failures
func writeInternalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	response := `{"error":"InternalServerError","message":"An internal error occurred"}`
	if _, err := w.Write([]byte(response)); err != nil {
		log.Printf("Failed to write error response: %v", err)
	}
}
