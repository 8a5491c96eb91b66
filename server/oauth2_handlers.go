package server

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/dlarsson/snaplet-oauth2/auth"
	"github.com/dlarsson/snaplet-oauth2/clients"
	"github.com/dlarsson/snaplet-oauth2/oauth2"
)

const contentTypeJSON = "application/json; charset=utf-8"

// Authorize begins the authorization flow.
func (s *Server[S]) Authorize() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		decide := func(client *clients.Client, scopes []S) auth.Decision {
			return s.decide(w, r, client, scopes)
		}

		result := s.service.Authorize(r.URL.Query(), decide)
		switch result.Outcome {
		case auth.OutcomeInProgress:
			// The decider already wrote the in-progress response.

		case auth.OutcomeErrorRedirect, auth.OutcomeCodeRedirect:
			http.Redirect(w, r, result.RedirectURI, http.StatusSeeOther)

		case auth.OutcomeCodeDisplay:
			s.displayCode(w, r, result.Code)

		default:
			log.Err(result.Err).Msg("authorization request rejected")
			http.Error(w, "Invalid authorization request: "+result.Err.Error(), http.StatusBadRequest)
		}
	}
}

// Token exchanges an authorization code for an access token.
func (s *Server[S]) Token() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeJSONError(w, "invalid_request", "Failed to parse form data", http.StatusBadRequest)
			return
		}

		token, err := s.service.Exchange(r.PostForm)
		if err != nil {
			var tokenErr *auth.TokenError
			if errors.As(err, &tokenErr) {
				writeJSONError(w, string(tokenErr.Code), "", http.StatusBadRequest)
				return
			}
			log.Err(err).Msg("token exchange failed")
			writeJSONError(w, "server_error", "", http.StatusInternalServerError)
			return
		}

		resp := oauth2.NewTokenResponse(token, s.service.FormatScope(token.Scope), s.service.Now())
		w.Header().Set("Content-Type", contentTypeJSON)
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("Pragma", "no-cache")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// writeJSONError writes an OAuth2 error response.
func writeJSONError(w http.ResponseWriter, errorCode, description string, statusCode int) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)
	body := map[string]string{"error": errorCode}
	if description != "" {
		body["error_description"] = description
	}
	_ = json.NewEncoder(w).Encode(body)
}
