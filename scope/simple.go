package scope

import (
	"github.com/pkg/errors"
)

var _ Codec[string] = (*Simple)(nil)

// Simple is a string-valued Codec over a fixed vocabulary. It is the
// reference codec used by the example server and the test suites; real
// applications typically define their own scope type and codec.
type Simple struct {
	vocabulary map[string]struct{}
	defaults   []string
}

// NewSimple creates a codec for the given vocabulary. The optional defaults
// are used when a request omits the scope parameter and must all be part of
// the vocabulary.
func NewSimple(vocabulary []string, defaults ...string) (*Simple, error) {
	vocab := make(map[string]struct{}, len(vocabulary))
	for _, token := range vocabulary {
		vocab[token] = struct{}{}
	}
	for _, d := range defaults {
		if _, ok := vocab[d]; !ok {
			return nil, errors.Wrapf(ErrUnknownScope, "[NewSimple] default %q", d)
		}
	}
	return &Simple{vocabulary: vocab, defaults: defaults}, nil
}

func (c *Simple) Parse(token string) (string, error) {
	if _, ok := c.vocabulary[token]; !ok {
		return "", errors.Wrapf(ErrUnknownScope, "%q", token)
	}
	return token, nil
}

func (c *Simple) Format(s string) string {
	return s
}

func (c *Simple) Default() ([]string, bool) {
	if len(c.defaults) == 0 {
		return nil, false
	}
	defaults := make([]string, len(c.defaults))
	copy(defaults, c.defaults)
	return defaults, true
}
