package tokenfmt

import "strings"

// segment is one parsed step of a token's key path.
type segment struct {
	name       string
	nullable   bool
	substitute string
}

// splitSpec separates a declaration's key path from its optional format
// specifier. The first ':' starts the specifier; an empty specifier after
// the colon still counts as present.
func splitSpec(decl string) (path, spec string, hasSpec bool) {
	if i := strings.IndexByte(decl, ':'); i >= 0 {
		return decl[:i], decl[i+1:], true
	}
	return decl, "", false
}

// nextSegment takes the next dot-separated piece off the front of path.
// last reports that no further dots remain.
func nextSegment(path string) (piece, rest string, last bool) {
	if i := strings.IndexByte(path, '.'); i >= 0 {
		return path[:i], path[i+1:], false
	}
	return path, "", true
}

// parseSegment decomposes one path piece. The first '?' marks the segment
// nullable; everything after it (possibly nothing) is the null-substitute
// literal. offset positions syntax errors within the template.
func parseSegment(piece string, offset int) (segment, error) {
	var seg segment
	if i := strings.IndexByte(piece, '?'); i >= 0 {
		seg.name = piece[:i]
		seg.nullable = true
		seg.substitute = piece[i+1:]
	} else {
		seg.name = piece
	}
	if seg.name == "" {
		return segment{}, &SyntaxError{Msg: "empty token key", Offset: offset}
	}
	return seg, nil
}
