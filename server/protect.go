package server

import (
	"context"
	"net/http"
	"strings"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// ContextKeyToken stores the verified *oauth2.AccessToken[S].
	ContextKeyToken ContextKey = "access_token"
)

// Protect wraps a handler behind a bearer token check. The token must exist,
// be unexpired, and carry at least the required scopes; otherwise the
// request is denied with 401 and a WWW-Authenticate challenge, and the
// protected handler never runs.
func (s *Server[S]) Protect(required []S, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := s.service.Verify(bearerToken(r), required)
		if err != nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyToken, token)
		next(w, r.WithContext(ctx))
	}
}

// bearerToken extracts the bearer token candidate from, in priority order,
// the Authorization header, the access_token form field, and the
// access_token query parameter. Later sources are not consulted once one
// yields a candidate.
func bearerToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			if token := strings.TrimSpace(parts[1]); token != "" {
				return token
			}
		}
	}
	if token := r.PostFormValue("access_token"); token != "" {
		return token
	}
	return r.URL.Query().Get("access_token")
}
