package server

import (
	"context"
	"net/http"
	"strings"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeyAccessToken stores the caller's bearer token
	ContextKeyAccessToken ContextKey = "access_token"
)

// RequireAuth is middleware that requires a Bearer access token on the
// request. The HR login system issuing these tokens lives outside this
// service; the token is treated as opaque here beyond presence.
func (s *Server) RequireAuth() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			accessToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			if accessToken == "" {
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAccessToken, accessToken)
			next(w, r.WithContext(ctx))
		}
	}
}
