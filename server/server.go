// Package server exposes the OAuth2 flows over HTTP: the authorization
// endpoint, the token endpoint, and the Protect middleware that guards
// resource handlers behind a bearer token check.
package server

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/dlarsson/snaplet-oauth2/auth"
	"github.com/dlarsson/snaplet-oauth2/clients"
)

// Decider collects the resource owner's decision for an authorization
// request. On DecisionInProgress the decider must have written its own
// response (a login page, typically); the handler then stops without
// touching the response again.
type Decider[S comparable] func(w http.ResponseWriter, r *http.Request, client *clients.Client, scopes []S) auth.Decision

// CodeDisplay renders an authorization code for an out-of-band client.
type CodeDisplay func(w http.ResponseWriter, r *http.Request, code string)

// Server routes OAuth2 endpoint requests to the auth service.
type Server[S comparable] struct {
	mux          *http.ServeMux
	service      *auth.Service[S]
	decide       Decider[S]
	displayCode  CodeDisplay
	tokenLimiter *rate.Limiter
}

// Option modifies a Server instance.
type Option[S comparable] func(*Server[S])

// WithCodeDisplay replaces the plain-text code display used for out-of-band
// clients.
func WithCodeDisplay[S comparable](display CodeDisplay) Option[S] {
	return func(s *Server[S]) {
		s.displayCode = display
	}
}

// WithTokenRate applies a token-bucket rate limit to the token endpoint.
func WithTokenRate[S comparable](perSecond float64, burst int) Option[S] {
	return func(s *Server[S]) {
		s.tokenLimiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// New creates a Server around the auth service and the embedding
// application's resource-owner decider.
func New[S comparable](service *auth.Service[S], decide Decider[S], options ...Option[S]) (*Server[S], error) {
	if service == nil {
		return nil, fmt.Errorf("[server.New] auth service is required")
	}
	if decide == nil {
		return nil, fmt.Errorf("[server.New] decider is required")
	}

	s := &Server[S]{
		mux:         http.NewServeMux(),
		service:     service,
		decide:      decide,
		displayCode: defaultCodeDisplay,
	}

	for _, opt := range options {
		opt(s)
	}

	s.initRoutes()
	return s, nil
}

func (s *Server[S]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func defaultCodeDisplay(w http.ResponseWriter, r *http.Request, code string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "Authorization code: %s\n", code)
}
