package tokenfmt

import "strings"

// Check validates template syntax without resolving any token against a
// data source. It reports the same *SyntaxError values Format would.
func Check(template string) error {
	_, err := Tokens(template)
	return err
}

// Tokens returns the token declarations found in template, in order. Each
// declaration's key path is parsed eagerly so structural errors (empty keys)
// surface even though no resolution happens.
func Tokens(template string) ([]string, error) {
	var decls []string
	var discard strings.Builder
	err := scan(template, &discard, func(decl string, offset int) error {
		path, _, _ := splitSpec(decl)
		rest := path
		for {
			piece, remaining, last := nextSegment(rest)
			if _, err := parseSegment(piece, offset); err != nil {
				return err
			}
			if last {
				break
			}
			rest = remaining
		}
		decls = append(decls, decl)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return decls, nil
}
