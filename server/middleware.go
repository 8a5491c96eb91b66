package server

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// logRequests emits one structured log line per request.
func (s *Server[S]) logRequests(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next(w, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

// rateLimit rejects requests beyond the configured token-bucket rate. With
// no limiter configured it is a no-op.
func (s *Server[S]) rateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.tokenLimiter != nil && !s.tokenLimiter.Allow() {
			writeJSONError(w, "slow_down", "Too many requests", http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}
