package auth

import "github.com/pkg/errors"

// Failures that precede establishment of a trusted redirect target. These
// are reported generically to the caller, never via redirect: redirecting to
// an unverified URI would itself be a vulnerability.
var (
	ErrUnknownClient             = errors.New("unknown client")
	ErrMalformedRedirectionURI   = errors.New("malformed redirection uri")
	ErrMismatchingRedirectionURI = errors.New("mismatching redirection uri")
)

// ErrUnauthorized is the single opaque failure of the resource guard. The
// specific reason (absent, expired or under-scoped token) is never disclosed.
var ErrUnauthorized = errors.New("unauthorized")
