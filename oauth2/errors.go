package oauth2

// ErrorCode is a wire-visible OAuth2 protocol error identifier, reported to
// clients either as an error query parameter on a redirect or inside a JSON
// error body.
type ErrorCode string

const (
	ErrInvalidRequest       ErrorCode = "invalid_request"
	ErrInvalidScope         ErrorCode = "invalid_scope"
	ErrAccessDenied         ErrorCode = "access_denied"
	ErrInvalidGrant         ErrorCode = "invalid_grant"
	ErrInvalidClient        ErrorCode = "invalid_client"
	ErrUnsupportedGrantType ErrorCode = "unsupported_grant_type"
)
