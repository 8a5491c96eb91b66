package auth

import (
	"github.com/dlarsson/snaplet-oauth2/oauth2"
	"github.com/dlarsson/snaplet-oauth2/scope"
)

// Verify checks a bearer token against a required scope list: the token must
// exist, must not have expired, and the required scopes must be a subset of
// the granted ones. The lookup is non-destructive. Every failure collapses
// to ErrUnauthorized.
func (s *Service[S]) Verify(rawToken string, required []S) (*oauth2.AccessToken[S], error) {
	if rawToken == "" {
		return nil, ErrUnauthorized
	}
	token, err := s.backend.LookupToken(rawToken)
	if err != nil {
		return nil, ErrUnauthorized
	}
	if token.Expired(s.nowTime()) {
		return nil, ErrUnauthorized
	}
	if !scope.Subset(required, token.Scope) {
		return nil, ErrUnauthorized
	}
	return token, nil
}
