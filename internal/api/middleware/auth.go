package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/sessions"

	"Snapgram/internal/api/handlers"
)

// Context keys for storing user information
type contextKey string

const userIDKey contextKey = "user_id"

// SessionName is the cookie carrying the session token.
const SessionName = "snapgram_session"

// SessionAuth authenticates requests from the session cookie. Token
// issuance happens upstream (the auth collaborator); this middleware only
// decodes the cookie and injects the user id into the request context.
type SessionAuth struct {
	store sessions.Store
}

// NewSessionAuth creates session auth middleware sharing the issuer's
// cookie secret.
func NewSessionAuth(secret []byte) *SessionAuth {
	store := sessions.NewCookieStore(secret)
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	return &SessionAuth{store: store}
}

// RequireAuth ensures the request carries a valid session.
// If not authenticated, returns 401.
// If authenticated, injects the user id into context.
func (m *SessionAuth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.store.Get(r, SessionName)
		if err != nil || session.IsNew {
			handlers.WriteError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		userID, ok := sessionUserID(session)
		if !ok {
			log.Printf("[AUTH_FAILURE] type=missing_user_id ip=%s method=%s path=%s",
				r.RemoteAddr, r.Method, r.URL.Path)
			handlers.WriteError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Issue writes a session cookie for the given user. Used at the boundary
// with the auth collaborator and by tests.
func (m *SessionAuth) Issue(w http.ResponseWriter, r *http.Request, userID int64) error {
	session, _ := m.store.Get(r, SessionName)
	session.Values["user_id"] = userID
	return session.Save(r, w)
}

// GetUserID returns the authenticated user id from the request context,
// or 0 when the request is unauthenticated.
func GetUserID(r *http.Request) int64 {
	if id, ok := r.Context().Value(userIDKey).(int64); ok {
		return id
	}
	return 0
}

// WithUserID returns a context carrying the given user id. Test helper.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func sessionUserID(session *sessions.Session) (int64, bool) {
	switch v := session.Values["user_id"].(type) {
	case int64:
		return v, v != 0
	case int:
		return int64(v), v != 0
	default:
		return 0, false
	}
}
