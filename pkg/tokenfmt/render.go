package tokenfmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tokenfmt/tokenfmt/pkg/culture"
)

// Formattable is implemented by values that render themselves according to a
// token's format specifier. The renderer consults it only when the token
// declared a specifier and the value was fully resolved (no null
// substitution occurred along the path).
type Formattable interface {
	FormatToken(spec string, provider *culture.Provider) (string, error)
}

// render appends the fully resolved terminal value to out. With a specifier
// present, a Formattable value formats itself; numeric and time primitives
// are adapted through the provider's built-in specifier grammar; everything
// else falls back to the default textual representation.
func render(out *strings.Builder, value any, spec string, hasSpec bool, provider *culture.Provider) error {
	if hasSpec {
		if f, ok := value.(Formattable); ok {
			s, err := f.FormatToken(spec, provider)
			if err != nil {
				return err
			}
			out.WriteString(s)
			return nil
		}
		if s, ok, err := provider.FormatValue(value, spec); ok {
			if err != nil {
				return err
			}
			out.WriteString(s)
			return nil
		}
		// No formatting capability: the specifier is ignored.
	}
	out.WriteString(stringify(value))
	return nil
}

// stringify converts an arbitrary value to its default textual
// representation.
func stringify(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case time.Time:
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
