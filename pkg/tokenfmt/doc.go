// Package tokenfmt substitutes named tokens in a template string with values
// resolved from a caller-supplied data source. It is intended for localized
// message templates, log lines, and error messages where named, nested,
// nullability-aware tokens read better than positional placeholders.
//
// # Token Syntax
//
// Tokens are written between single braces. Doubled braces escape a literal
// brace:
//
//	"Hello {Name}!"          substitutes the value of key "Name"
//	"Rate: {{escaped}}"      renders as "Rate: {escaped}"
//
// A token's key path may chain dot-separated segments; each segment is
// resolved against the value the previous segment produced:
//
//	"{User.Address.City}"
//
// A segment followed by '?' is nullable: a null value (or a missing key under
// AllowMissingKeys) renders the text after the '?' instead of failing, and
// ends the path walk:
//
//	"{User.Nickname?}"          null renders as ""
//	"{User.Nickname?guest}"     null renders as "guest"
//
// Everything after the first ':' in a declaration is a format specifier. It
// applies only to the final resolved value, and never to a null substitute:
//
//	"{Count:D4}"             5 renders as "0005"
//	"{When:2006-01-02}"      time.Time rendered with a Go layout
//
// Because the path is split on '.' and the specifier on ':' before key
// parsing, a null-substitute literal cannot itself contain '.' or ':'.
//
// # Data Sources
//
// A data source is either map-like or object-like. Plain map[string]any,
// map[string]string, and struct values (or pointers to structs) work
// directly; the MapSource and FieldSource interfaces let callers plug in
// their own lookup mechanisms. Struct field names are matched exactly, and
// unexported fields are visible only under the NonPublicAccess option.
//
// # Errors
//
// Format fails fast. Malformed templates yield *SyntaxError, absent keys
// yield *KeyNotFoundError, and null values on non-nullable segments yield
// *NullValueError. No partial output is returned on failure.
package tokenfmt
