package auth

import (
	"net/url"

	"github.com/pkg/errors"

	"github.com/dlarsson/snaplet-oauth2/clients"
	"github.com/dlarsson/snaplet-oauth2/oauth2"
	"github.com/dlarsson/snaplet-oauth2/params"
)

// TokenError is a token exchange failure carrying the protocol error code
// reported to the client. The wrapped cause, if any, is for logging only and
// never reaches the wire.
type TokenError struct {
	Code oauth2.ErrorCode
	err  error
}

func (e *TokenError) Error() string {
	if e.err != nil {
		return string(e.Code) + ": " + e.err.Error()
	}
	return string(e.Code)
}

func (e *TokenError) Unwrap() error {
	return e.err
}

func tokenError(code oauth2.ErrorCode, err error) *TokenError {
	return &TokenError{Code: code, err: err}
}

// Exchange runs the token exchange pipeline over the request's form
// parameters, short-circuiting on the first failure. Every failure is a
// *TokenError. The grant is destructively inspected before the remaining
// checks run, so even a failing exchange consumes it; unknown and
// already-consumed codes are indistinguishable to the caller.
func (s *Service[S]) Exchange(form url.Values) (*oauth2.AccessToken[S], error) {
	grantType, err := params.RequireOne(form, "grant_type")
	if err != nil {
		return nil, tokenError(oauth2.ErrInvalidRequest, errors.Wrap(err, "[Exchange] invalid grant_type parameter"))
	}
	if grantType != oauth2.AuthorizationCodeGrant {
		return nil, tokenError(oauth2.ErrUnsupportedGrantType, nil)
	}

	code, err := params.RequireOne(form, "code")
	if err != nil {
		return nil, tokenError(oauth2.ErrInvalidRequest, errors.Wrap(err, "[Exchange] invalid code parameter"))
	}
	grant, err := s.backend.InspectGrant(code)
	if err != nil {
		return nil, tokenError(oauth2.ErrInvalidGrant, nil)
	}

	redirectURI, err := params.RequireOne(form, "redirect_uri")
	if err != nil {
		return nil, tokenError(oauth2.ErrInvalidRequest, errors.Wrap(err, "[Exchange] invalid redirect_uri parameter"))
	}
	if _, perr := url.Parse(redirectURI); perr != nil || redirectURI != grant.RedirectURI {
		return nil, tokenError(oauth2.ErrInvalidGrant, nil)
	}

	clientID, err := params.RequireOne(form, "client_id")
	if err != nil {
		return nil, tokenError(oauth2.ErrInvalidRequest, errors.Wrap(err, "[Exchange] invalid client_id parameter"))
	}
	client, err := s.backend.LookupClient(clientID)
	if err != nil {
		return nil, tokenError(oauth2.ErrInvalidClient, nil)
	}
	if client.ID != grant.ClientID {
		return nil, tokenError(oauth2.ErrInvalidGrant, nil)
	}
	if !client.Public() {
		secret, _, serr := params.OptionalOne(form, "client_secret")
		if serr != nil || !clients.CheckSecretHash(secret, client.SecretHash) {
			return nil, tokenError(oauth2.ErrInvalidClient, nil)
		}
	}

	if grant.Expired(s.nowTime()) {
		return nil, tokenError(oauth2.ErrInvalidGrant, nil)
	}

	value, err := s.generateCode()
	if err != nil {
		return nil, errors.Wrap(err, "[Exchange] generateCode")
	}
	token := &oauth2.AccessToken[S]{
		Token:        value,
		Type:         oauth2.TokenTypeBearer,
		ExpiresAt:    s.nowTime().Add(s.tokenTTL),
		RefreshToken: value,
		ClientID:     client.ID,
		Scope:        grant.Scope,
	}
	if err := s.backend.StoreToken(token); err != nil {
		return nil, errors.Wrap(err, "[Exchange] backend.StoreToken")
	}
	return token, nil
}
