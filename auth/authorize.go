package auth

import (
	"net/url"

	"github.com/pkg/errors"

	"github.com/dlarsson/snaplet-oauth2/clients"
	"github.com/dlarsson/snaplet-oauth2/oauth2"
	"github.com/dlarsson/snaplet-oauth2/params"
	"github.com/dlarsson/snaplet-oauth2/scope"
)

// Decision is the outcome of the external resource-owner-authentication
// collaborator.
type Decision int

const (
	// DecisionInProgress means authentication is still pending: the
	// collaborator has produced its own response and the flow stops without
	// creating a grant. A later top-level request completes the flow.
	DecisionInProgress Decision = iota

	// DecisionDenied means the resource owner refused the request.
	DecisionDenied

	// DecisionGranted means the resource owner approved the request.
	DecisionGranted
)

// Decider is supplied by the embedding application to verify the resource
// owner and collect their decision for the given client and scope list.
type Decider[S comparable] func(client *clients.Client, scopes []S) Decision

// Outcome classifies how an authorization request concluded.
type Outcome int

const (
	// OutcomeError is a failure with no trusted redirect target; Err holds
	// the reason and the response must be generic.
	OutcomeError Outcome = iota

	// OutcomeErrorRedirect reports ErrorCode via the error query parameter
	// on RedirectURI.
	OutcomeErrorRedirect

	// OutcomeCodeRedirect delivers the authorization code via the code query
	// parameter on RedirectURI.
	OutcomeCodeRedirect

	// OutcomeCodeDisplay delivers the code to an out-of-band client through
	// the code-display collaborator.
	OutcomeCodeDisplay

	// OutcomeInProgress means the decider suspended the flow; its response
	// is returned to the caller verbatim.
	OutcomeInProgress
)

// Result is the terminal state of one authorization request. RedirectURI,
// when set, is the fully built redirect target with the code or error
// already merged into its query string.
type Result[S comparable] struct {
	Outcome     Outcome
	Err         error
	ErrorCode   oauth2.ErrorCode
	RedirectURI string
	Code        string
	Client      *clients.Client
}

// Authorize runs the authorization flow over the request's query parameters.
// Validation failures before the redirect URI is verified yield
// OutcomeError; everything after is reported through the verified redirect
// target. Exactly one backend write happens, and only on a granted decision.
func (s *Service[S]) Authorize(query url.Values, decide Decider[S]) Result[S] {
	// Client validation: no error reporting via redirect is possible yet.
	clientID, err := params.RequireOne(query, "client_id")
	if err != nil {
		return Result[S]{Outcome: OutcomeError, Err: errors.Wrap(err, "[Authorize] invalid client_id parameter")}
	}
	client, err := s.backend.LookupClient(clientID)
	if err != nil {
		return Result[S]{Outcome: OutcomeError, Err: errors.Wrapf(ErrUnknownClient, "%q", clientID)}
	}

	redirectURI, err := params.RequireOne(query, "redirect_uri")
	if err != nil {
		return Result[S]{Outcome: OutcomeError, Err: errors.Wrap(err, "[Authorize] invalid redirect_uri parameter")}
	}
	if u, perr := url.Parse(redirectURI); perr != nil || !u.IsAbs() {
		return Result[S]{Outcome: OutcomeError, Err: errors.Wrapf(ErrMalformedRedirectionURI, "%q", redirectURI)}
	}
	if redirectURI != client.RedirectURI {
		return Result[S]{Outcome: OutcomeError, Err: ErrMismatchingRedirectionURI}
	}

	// The redirect target is verified; protocol errors go back to it.
	responseType, err := params.RequireOne(query, "response_type")
	if err != nil || responseType != oauth2.CodeResponseType {
		return s.errorRedirect(client, oauth2.ErrInvalidRequest)
	}

	scopes, err := s.resolveScope(query)
	if err != nil {
		return s.errorRedirect(client, oauth2.ErrInvalidScope)
	}

	switch decide(client, scopes) {
	case DecisionInProgress:
		return Result[S]{Outcome: OutcomeInProgress, Client: client}
	case DecisionDenied:
		return s.errorRedirect(client, oauth2.ErrAccessDenied)
	}

	code, err := s.generateCode()
	if err != nil {
		return Result[S]{Outcome: OutcomeError, Err: errors.Wrap(err, "[Authorize] generateCode")}
	}
	grant := &oauth2.Grant[S]{
		Code:        code,
		ExpiresAt:   s.nowTime().Add(s.grantTTL),
		RedirectURI: client.RedirectURI,
		ClientID:    client.ID,
		Scope:       scopes,
	}
	if err := s.backend.StoreGrant(grant); err != nil {
		return Result[S]{Outcome: OutcomeError, Err: errors.Wrap(err, "[Authorize] backend.StoreGrant")}
	}

	if client.OutOfBand() {
		return Result[S]{Outcome: OutcomeCodeDisplay, Code: code, Client: client}
	}
	return Result[S]{
		Outcome:     OutcomeCodeRedirect,
		Code:        code,
		RedirectURI: mergeQuery(client.RedirectURI, "code", code),
		Client:      client,
	}
}

func (s *Service[S]) errorRedirect(client *clients.Client, code oauth2.ErrorCode) Result[S] {
	return Result[S]{
		Outcome:     OutcomeErrorRedirect,
		ErrorCode:   code,
		RedirectURI: mergeQuery(client.RedirectURI, "error", string(code)),
		Client:      client,
	}
}

// resolveScope parses the optional scope parameter, falling back to the
// codec's default set when the parameter is omitted.
func (s *Service[S]) resolveScope(query url.Values) ([]S, error) {
	raw, ok, err := params.OptionalOne(query, "scope")
	if err != nil {
		return nil, errors.Wrap(err, "[resolveScope] invalid scope parameter")
	}
	if !ok || raw == "" {
		def, defined := s.scopes.Default()
		if !defined {
			return nil, errors.New("[resolveScope] no scope requested and no default scope defined")
		}
		return def, nil
	}
	return scope.ParseList(s.scopes, raw)
}

// mergeQuery appends key=value to the query string of rawURI, preserving any
// query parameters already present. rawURI has been validated upstream.
func mergeQuery(rawURI, key, value string) string {
	u, err := url.Parse(rawURI)
	if err != nil {
		return rawURI
	}
	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()
	return u.String()
}
