// Package auth implements the server side of the OAuth2 authorization-code
// grant: the authorization flow, the token exchange flow, and the bearer
// token check used to guard protected resources.
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/pkg/errors"

	"github.com/dlarsson/snaplet-oauth2/backend"
	"github.com/dlarsson/snaplet-oauth2/clients"
	"github.com/dlarsson/snaplet-oauth2/oauth2"
	"github.com/dlarsson/snaplet-oauth2/scope"
)

const codeGenerationLength = 32

// Service orchestrates the grant and token lifecycle against a storage
// backend, parameterized over the application's scope type.
type Service[S comparable] struct {
	backend      backend.Backend[S]
	scopes       scope.Codec[S]
	grantTTL     time.Duration
	tokenTTL     time.Duration
	generateCode func() (string, error)
	nowTime      func() time.Time
}

// Option modifies a Service instance.
type Option[S comparable] func(*Service[S])

// WithNowTime sets the now time function (primarily for testing).
func WithNowTime[S comparable](nowFunc func() time.Time) Option[S] {
	return func(s *Service[S]) {
		s.nowTime = nowFunc
	}
}

// WithCodeGenerator replaces the unguessable-string generator used for
// authorization codes and token values.
func WithCodeGenerator[S comparable](gen func() (string, error)) Option[S] {
	return func(s *Service[S]) {
		s.generateCode = gen
	}
}

// WithGrantTTL overrides the authorization grant lifetime.
func WithGrantTTL[S comparable](ttl time.Duration) Option[S] {
	return func(s *Service[S]) {
		s.grantTTL = ttl
	}
}

// WithTokenTTL overrides the access token lifetime.
func WithTokenTTL[S comparable](ttl time.Duration) Option[S] {
	return func(s *Service[S]) {
		s.tokenTTL = ttl
	}
}

// NewService initializes a Service with required dependencies. Optional
// configuration can be provided via options.
func NewService[S comparable](b backend.Backend[S], codec scope.Codec[S], options ...Option[S]) (*Service[S], error) {
	if b == nil {
		return nil, errors.New("[NewService] backend is required")
	}
	if codec == nil {
		return nil, errors.New("[NewService] scope codec is required")
	}

	service := &Service[S]{
		backend:      b,
		scopes:       codec,
		grantTTL:     oauth2.GrantTTL,
		tokenTTL:     oauth2.AccessTokenTTL,
		generateCode: GenerateCode,
		nowTime:      time.Now,
	}

	for _, opt := range options {
		opt(service)
	}

	return service, nil
}

// RegisterClient validates and stores a client. Registration is an upsert
// by client ID.
func (s *Service[S]) RegisterClient(client *clients.Client) error {
	if client.ID == "" {
		return errors.New("[RegisterClient] client ID is required")
	}
	if err := clients.ValidateRedirectURI(client.RedirectURI); err != nil {
		return errors.Wrap(err, "[RegisterClient]")
	}
	if err := s.backend.StoreClient(client); err != nil {
		return errors.Wrap(err, "[RegisterClient] backend.StoreClient")
	}
	return nil
}

// Now returns the service's current time. Exposed so response serialization
// uses the same clock as issuance (and the same fixed clock in tests).
func (s *Service[S]) Now() time.Time {
	return s.nowTime()
}

// FormatScope renders a scope list with the service's codec.
func (s *Service[S]) FormatScope(scopes []S) string {
	return scope.FormatList(s.scopes, scopes)
}

// GenerateCode is the default unguessable-string generator: 256 bits from
// crypto/rand, base64url encoded.
func GenerateCode() (string, error) {
	bytes := make([]byte, codeGenerationLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", errors.Wrap(err, "[GenerateCode] rand.Read")
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
