// Package memory provides the reference in-memory backend. It is suitable
// for tests and single-instance deployments.
package memory

import (
	"sync"

	"github.com/dlarsson/snaplet-oauth2/backend"
	"github.com/dlarsson/snaplet-oauth2/clients"
	"github.com/dlarsson/snaplet-oauth2/oauth2"
)

var _ backend.Backend[string] = (*Store[string])(nil)

// Store keeps clients, live grants and live tokens in three independently
// guarded maps. The grants map uses a single mutex around the
// delete-and-return of InspectGrant so concurrent redemption attempts for
// the same code can never both succeed. There is no background sweep:
// expired grants are purged by the destructive inspect, and tokens are never
// removed at all — an accepted leak for this reference backend.
type Store[S comparable] struct {
	clientsLock sync.RWMutex
	clients     map[string]*clients.Client

	grantsLock sync.Mutex
	grants     map[string]*oauth2.Grant[S]

	tokensLock sync.RWMutex
	tokens     map[string]*oauth2.AccessToken[S]
}

func New[S comparable]() *Store[S] {
	return &Store[S]{
		clients: make(map[string]*clients.Client),
		grants:  make(map[string]*oauth2.Grant[S]),
		tokens:  make(map[string]*oauth2.AccessToken[S]),
	}
}

func (s *Store[S]) StoreClient(client *clients.Client) error {
	s.clientsLock.Lock()
	defer s.clientsLock.Unlock()
	s.clients[client.ID] = client
	return nil
}

func (s *Store[S]) LookupClient(clientID string) (*clients.Client, error) {
	s.clientsLock.RLock()
	defer s.clientsLock.RUnlock()
	client, ok := s.clients[clientID]
	if !ok {
		return nil, backend.ErrNotFound
	}
	return client, nil
}

func (s *Store[S]) StoreGrant(grant *oauth2.Grant[S]) error {
	s.grantsLock.Lock()
	defer s.grantsLock.Unlock()
	s.grants[grant.Code] = grant
	return nil
}

func (s *Store[S]) InspectGrant(code string) (*oauth2.Grant[S], error) {
	s.grantsLock.Lock()
	defer s.grantsLock.Unlock()
	grant, ok := s.grants[code]
	if !ok {
		return nil, backend.ErrNotFound
	}
	delete(s.grants, code)
	return grant, nil
}

func (s *Store[S]) StoreToken(token *oauth2.AccessToken[S]) error {
	s.tokensLock.Lock()
	defer s.tokensLock.Unlock()
	s.tokens[token.Token] = token
	return nil
}

func (s *Store[S]) LookupToken(token string) (*oauth2.AccessToken[S], error) {
	s.tokensLock.RLock()
	defer s.tokensLock.RUnlock()
	t, ok := s.tokens[token]
	if !ok {
		return nil, backend.ErrNotFound
	}
	return t, nil
}
