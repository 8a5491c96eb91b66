// Package params extracts request parameters from a multi-valued parameter
// map, distinguishing between a key that is absent, present exactly once,
// and present more than once.
package params

import (
	"fmt"
	"net/url"
)

// Reason classifies why a parameter failed extraction.
type Reason string

const (
	Missing     Reason = "missing"
	MoreThanOne Reason = "more than one"
)

// Error is the typed failure produced by RequireOne and OptionalOne.
type Error struct {
	Key    string
	Reason Reason
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %q parameter", e.Reason, e.Key)
}

// RequireOne returns the single value for key. It fails with Missing when
// the key is absent and with MoreThanOne when the key occurs multiple times.
func RequireOne(values url.Values, key string) (string, error) {
	vs, ok := values[key]
	if !ok || len(vs) == 0 {
		return "", &Error{Key: key, Reason: Missing}
	}
	if len(vs) > 1 {
		return "", &Error{Key: key, Reason: MoreThanOne}
	}
	return vs[0], nil
}

// OptionalOne behaves like RequireOne but reports an absent key through the
// second return value instead of failing.
func OptionalOne(values url.Values, key string) (string, bool, error) {
	vs, ok := values[key]
	if !ok || len(vs) == 0 {
		return "", false, nil
	}
	if len(vs) > 1 {
		return "", false, &Error{Key: key, Reason: MoreThanOne}
	}
	return vs[0], true, nil
}
