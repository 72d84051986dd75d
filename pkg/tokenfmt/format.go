package tokenfmt

import (
	"strings"

	"github.com/tokenfmt/tokenfmt/pkg/culture"
)

type options struct {
	allowMissing bool
	nonPublic    bool
	provider     *culture.Provider
}

// Option configures a single Format call. Calls are otherwise independent
// and stateless; no configuration persists between them.
type Option func(*options)

// AllowMissingKeys treats a missing map key or struct field as a null value
// instead of failing with *KeyNotFoundError. A non-nullable segment whose
// key is missing still fails, with *NullValueError.
func AllowMissingKeys() Option {
	return func(o *options) { o.allowMissing = true }
}

// NonPublicAccess widens structured-object field visibility to unexported
// fields.
func NonPublicAccess() Option {
	return func(o *options) { o.nonPublic = true }
}

// WithProvider sets the format provider used to render format specifiers.
// Defaults to culture.Default().
func WithProvider(p *culture.Provider) Option {
	return func(o *options) { o.provider = p }
}

// Format substitutes the named tokens in template with values resolved
// against source and returns the final string. source may be a MapSource,
// a FieldSource, a plain map[string]any or map[string]string, or a struct
// (or pointer to struct); intermediate values along a dotted path are
// adapted the same way. The template is read-only and must not be mutated
// for the duration of the call.
func Format(template string, source any, opts ...Option) (string, error) {
	o := options{provider: culture.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	var out strings.Builder
	out.Grow(len(template))
	res := &resolver{root: source, opts: o}
	err := scan(template, &out, func(decl string, offset int) error {
		return res.renderToken(decl, offset, &out)
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// MustFormat is like Format but panics on error. Intended for package-level
// constants whose templates are fixed at compile time.
func MustFormat(template string, source any, opts ...Option) string {
	s, err := Format(template, source, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
