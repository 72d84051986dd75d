package tokenfmt

import "strings"

// scan walks the template left to right exactly once, copying literal runs
// to out, unescaping doubled braces, and handing each token declaration to
// emit along with its byte offset. emit appends the token's rendered value
// to out (or, for syntax-only validation, nothing at all).
func scan(template string, out *strings.Builder, emit func(decl string, offset int) error) error {
	i := 0
	for {
		j := strings.IndexAny(template[i:], "{}")
		if j < 0 {
			out.WriteString(template[i:])
			return nil
		}
		j += i
		out.WriteString(template[i:j])
		ch := template[j]

		// A doubled brace is an escape and wins over token detection.
		if j+1 < len(template) && template[j+1] == ch {
			out.WriteByte(ch)
			i = j + 2
			continue
		}
		if ch == '}' {
			return &SyntaxError{Msg: "closing brace with no preceding opening brace", Offset: j}
		}

		// Token declaration runs to the next brace, which must close it.
		// Braces never nest, not even inside a format specifier, so a '{'
		// here means the token was never closed.
		k := strings.IndexAny(template[j+1:], "{}")
		if k < 0 || template[j+1+k] == '{' {
			return &SyntaxError{Msg: "opening brace without matching closing brace", Offset: j}
		}
		k += j + 1
		decl := template[j+1 : k]
		if decl == "" {
			return &SyntaxError{Msg: "empty token declaration", Offset: j}
		}
		if err := emit(decl, j+1); err != nil {
			return err
		}
		i = k + 1
	}
}
