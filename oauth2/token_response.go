package oauth2

import "time"

// TokenResponse is the token endpoint success body as defined in RFC 6749.
type TokenResponse struct {
	// AccessToken is the opaque bearer token value.
	AccessToken string `json:"access_token"`

	// TokenType is always "Bearer" in this implementation.
	TokenType string `json:"token_type"`

	// ExpiresIn is the remaining lifetime in seconds, computed when the
	// response is built rather than when the token was issued.
	ExpiresIn int `json:"expires_in"`

	// RefreshToken reuses the access token value; no refresh grant is
	// implemented.
	RefreshToken string `json:"refresh_token,omitempty"`

	// Scope is the space-separated granted scope list.
	Scope string `json:"scope,omitempty"`
}

// NewTokenResponse builds the wire response for an issued token. The scope
// string is pre-rendered by the caller's scope codec.
func NewTokenResponse[S comparable](token *AccessToken[S], scope string, now time.Time) TokenResponse {
	return TokenResponse{
		AccessToken:  token.Token,
		TokenType:    token.Type,
		ExpiresIn:    int(token.ExpiresAt.Sub(now).Seconds()),
		RefreshToken: token.RefreshToken,
		Scope:        scope,
	}
}
