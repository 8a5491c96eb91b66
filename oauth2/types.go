package oauth2

import "time"

// Protocol literals and lifetimes for the authorization-code grant.
const (
	// CodeResponseType is the only supported response_type value.
	CodeResponseType = "code"

	// AuthorizationCodeGrant is the only supported grant_type value.
	AuthorizationCodeGrant = "authorization_code"

	// TokenTypeBearer is the token_type of every issued access token.
	TokenTypeBearer = "Bearer"

	// GrantTTL is how long an authorization grant stays redeemable.
	GrantTTL = 10 * time.Minute

	// AccessTokenTTL is how long an issued access token stays valid.
	AccessTokenTTL = time.Hour
)

// Grant is a short-lived, single-use proof that a resource owner approved a
// client for a scope set. It is consumed by at most one token exchange.
type Grant[S comparable] struct {
	Code        string
	ExpiresAt   time.Time
	RedirectURI string
	ClientID    string
	Scope       []S
}

// Expired reports whether the grant's redemption window has passed. A grant
// is still redeemable at its exact expiry instant.
func (g *Grant[S]) Expired(now time.Time) bool {
	return now.After(g.ExpiresAt)
}

// AccessToken is a bearer credential. The token value doubles as its own
// identifier in the backend. RefreshToken carries the same value as Token;
// no refresh-token redemption path exists in this core.
type AccessToken[S comparable] struct {
	Token        string
	Type         string
	ExpiresAt    time.Time
	RefreshToken string
	ClientID     string
	Scope        []S
}

// Expired reports whether the token may no longer be used. Unlike grants, a
// token is unusable from its expiry instant onwards.
func (t *AccessToken[S]) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
