// Package backend defines the storage contract the OAuth2 core requires of
// any persistence layer. The backend exclusively owns all persisted
// entities; the flows hold only transient in-request copies.
package backend

import (
	"github.com/pkg/errors"

	"github.com/dlarsson/snaplet-oauth2/clients"
	"github.com/dlarsson/snaplet-oauth2/oauth2"
)

// ErrNotFound is returned by lookups when no record exists for the key.
var ErrNotFound = errors.New("not found")

// Backend is the capability set required of a storage implementation,
// parameterized over the application's scope type. Implementations must
// serialize conflicting mutations; no operation spans multiple codes or
// clients, so cross-key transactions are never needed.
type Backend[S comparable] interface {
	// StoreClient upserts a client by its ID.
	StoreClient(client *clients.Client) error

	// LookupClient returns the client or ErrNotFound.
	LookupClient(clientID string) (*clients.Client, error)

	// StoreGrant inserts a grant keyed by its code. Codes are generated to
	// avoid collision; overwriting an existing code is undefined.
	StoreGrant(grant *oauth2.Grant[S]) error

	// InspectGrant atomically removes and returns the grant for code, or
	// ErrNotFound. Two concurrent callers must never both receive the grant
	// for the same code: this is what makes grant codes single-use.
	InspectGrant(code string) (*oauth2.Grant[S], error)

	// StoreToken inserts or overwrites a token by its value.
	StoreToken(token *oauth2.AccessToken[S]) error

	// LookupToken returns the token or ErrNotFound. The read is
	// non-destructive.
	LookupToken(token string) (*oauth2.AccessToken[S], error)
}
