package middleware

import (
	"context"
	"net/http"

	"restofresh-web/internal/logger"
	"restofresh-web/internal/session"
)

type contextKey string

const sessionKey contextKey = "session"

// SessionFrom returns the request's session injected by SessionMiddleware.
func SessionFrom(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*session.Session)
	return s, ok
}

// SessionMiddleware resolves the visitor's session from the cookie and makes
// it available to every handler downstream.
func SessionMiddleware(m *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := m.Resolve(w, r)
			if err != nil {
				logger.FromCtx(r.Context()).Error("resolve session failed: " + err.Error())
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, s)))
		})
	}
}

// AdminOnly rejects requests whose session is not logged in with the admin
// role. It sits in front of the /api/admin subtree.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := SessionFrom(r.Context())
		if !ok || !s.Auth.IsAuthenticated() {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		if !s.Auth.IsAdmin() {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
