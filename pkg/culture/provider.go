package culture

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Provider carries the locale used to render format specifiers. Providers
// are immutable and safe for concurrent use.
type Provider struct {
	tag     language.Tag
	printer *message.Printer
}

var defaultProvider = ForTag(language.Und)

// Default returns the culture-neutral provider. Plain decimal rendering,
// root-locale grouping for the N and P specifiers.
func Default() *Provider { return defaultProvider }

// ForTag returns a provider for the given language tag.
func ForTag(tag language.Tag) *Provider {
	return &Provider{tag: tag, printer: message.NewPrinter(tag)}
}

// Parse builds a provider from a BCP-47 tag such as "en-US" or "de".
func Parse(s string) (*Provider, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("parsing language tag %q: %w", s, err)
	}
	return ForTag(tag), nil
}

// Tag returns the provider's language tag.
func (p *Provider) Tag() language.Tag { return p.tag }

// SpecError reports a format specifier a value's type cannot satisfy.
type SpecError struct {
	Spec string
	Kind string // value kind, for the message
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("invalid format specifier %q for %s value", e.Spec, e.Kind)
}

// FormatValue renders value according to spec when the value's type has a
// built-in formatting capability: signed and unsigned integers, floats, and
// time.Time. ok is false for every other type, letting callers fall back to
// default stringification. An empty spec means default rendering.
func (p *Provider) FormatValue(value any, spec string) (s string, ok bool, err error) {
	switch v := value.(type) {
	case int:
		s, err = p.formatInt(int64(v), spec)
	case int8:
		s, err = p.formatInt(int64(v), spec)
	case int16:
		s, err = p.formatInt(int64(v), spec)
	case int32:
		s, err = p.formatInt(int64(v), spec)
	case int64:
		s, err = p.formatInt(v, spec)
	case uint:
		s, err = p.formatUint(uint64(v), spec)
	case uint8:
		s, err = p.formatUint(uint64(v), spec)
	case uint16:
		s, err = p.formatUint(uint64(v), spec)
	case uint32:
		s, err = p.formatUint(uint64(v), spec)
	case uint64:
		s, err = p.formatUint(v, spec)
	case float32:
		s, err = p.formatFloat(float64(v), spec)
	case float64:
		s, err = p.formatFloat(v, spec)
	case time.Time:
		s = p.formatTime(v, spec)
	default:
		return "", false, nil
	}
	return s, true, err
}

// formatTime renders a time with a Go reference layout. An empty layout
// falls back to RFC3339.
func (p *Provider) formatTime(t time.Time, layout string) string {
	if layout == "" {
		return t.Format(time.RFC3339)
	}
	return t.Format(layout)
}
