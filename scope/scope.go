package scope

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownScope is returned by codecs when a scope token is not part of
// the application's vocabulary.
var ErrUnknownScope = errors.New("unknown scope")

// Codec defines how an application's scope vocabulary is read from and
// written to the wire. Parse and Format must be mutual inverses:
// Parse(Format(s)) == s for every scope value, and Format(Parse(t)) == t
// for every valid scope token t.
type Codec[S comparable] interface {
	// Parse converts a single scope token into a scope value.
	Parse(token string) (S, error)

	// Format renders a scope value as its wire token.
	Format(s S) string

	// Default returns the scope set to use when a request carries no scope
	// parameter. The second return value is false when the application
	// defines no default, in which case scope resolution fails.
	Default() ([]S, bool)
}

// ParseList parses a space-separated scope parameter into a list of scope
// values. Empty tokens are skipped.
func ParseList[S comparable](c Codec[S], raw string) ([]S, error) {
	tokens := strings.Fields(raw)
	scopes := make([]S, 0, len(tokens))
	for _, token := range tokens {
		s, err := c.Parse(token)
		if err != nil {
			return nil, errors.Wrapf(err, "[ParseList] scope token %q", token)
		}
		scopes = append(scopes, s)
	}
	return scopes, nil
}

// FormatList renders a scope list as a space-separated scope parameter.
func FormatList[S comparable](c Codec[S], scopes []S) string {
	tokens := make([]string, 0, len(scopes))
	for _, s := range scopes {
		tokens = append(tokens, c.Format(s))
	}
	return strings.Join(tokens, " ")
}

// Contains reports whether s is part of the granted scope list.
func Contains[S comparable](granted []S, s S) bool {
	for _, g := range granted {
		if g == s {
			return true
		}
	}
	return false
}

// Subset reports whether every required scope is part of the granted list.
func Subset[S comparable](required, granted []S) bool {
	for _, r := range required {
		if !Contains(granted, r) {
			return false
		}
	}
	return true
}
