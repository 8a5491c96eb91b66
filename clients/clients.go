package clients

import (
	"net/url"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// OOBRedirectURI is the reserved out-of-band redirect marker for clients
// that cannot receive HTTP redirects. The authorization code is displayed
// to the resource owner directly instead.
const OOBRedirectURI = "urn:ietf:wg:oauth:2.0:oob"

var ErrInvalidRedirectURI = errors.New("invalid redirect uri")

// Client is a registered OAuth2 client. Clients are immutable after
// registration; the backend owns the stored record.
type Client struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	RedirectURI string `json:"redirectURI"`

	// SecretHash holds the bcrypt hash of the client secret, or is empty
	// for public clients.
	SecretHash string `json:"secretHash,omitempty"`
}

// New creates a client for the given redirect URI. A fresh ID is assigned
// when none is supplied. The redirect URI must be an absolute URI or the
// out-of-band marker.
func New(id, redirectURI string) (*Client, error) {
	if err := ValidateRedirectURI(redirectURI); err != nil {
		return nil, errors.Wrap(err, "[clients.New]")
	}
	if id == "" {
		id = uuid.New().String()
	}
	return &Client{ID: id, RedirectURI: redirectURI}, nil
}

// Public returns true if the client has no secret registered.
func (c *Client) Public() bool {
	return c.SecretHash == ""
}

// OutOfBand returns true if the client cannot receive redirects.
func (c *Client) OutOfBand() bool {
	return c.RedirectURI == OOBRedirectURI
}

// ValidateRedirectURI checks that a redirect URI is absolute. The
// out-of-band marker is accepted as-is.
func ValidateRedirectURI(redirectURI string) error {
	if redirectURI == OOBRedirectURI {
		return nil
	}
	u, err := url.Parse(redirectURI)
	if err != nil {
		return errors.Wrapf(ErrInvalidRedirectURI, "%q", redirectURI)
	}
	if !u.IsAbs() {
		return errors.Wrapf(ErrInvalidRedirectURI, "%q is not absolute", redirectURI)
	}
	return nil
}
