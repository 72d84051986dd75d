package tokenfmt

import "fmt"

// SyntaxError reports a malformed template: an unmatched brace, a nested
// brace, an empty token declaration, or an empty key name.
type SyntaxError struct {
	Msg    string // what is wrong
	Offset int    // byte offset into the template
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("template syntax error at offset %d: %s", e.Offset, e.Msg)
}

// KeyNotFoundError reports a key segment that the data source does not
// contain, when AllowMissingKeys is not set.
type KeyNotFoundError struct {
	Key   string // the missing key segment
	Token string // full token declaration text
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("token key %q not found (in {%s})", e.Key, e.Token)
}

// NullValueError reports a non-nullable key segment that resolved to null,
// either directly or via a missing key under AllowMissingKeys.
type NullValueError struct {
	Key   string // the segment that resolved to null
	Token string // full token declaration text
}

func (e *NullValueError) Error() string {
	return fmt.Sprintf("non-nullable token key %q resolved to null (in {%s})", e.Key, e.Token)
}
