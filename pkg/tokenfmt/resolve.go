package tokenfmt

import "strings"

// resolver walks one token's key path against the data source and appends
// the outcome to the output. It is created per Format call and holds no
// state between calls.
type resolver struct {
	root any
	opts options
}

// renderToken resolves one token declaration and appends the result to out.
// Segments are parsed lazily, one at a time, so resolution order matches
// declaration order and a null or missing outcome never touches the
// unreached tail of the path.
func (r *resolver) renderToken(decl string, offset int, out *strings.Builder) error {
	path, spec, hasSpec := splitSpec(decl)
	current := r.root
	rest := path
	for {
		piece, remaining, last := nextSegment(rest)
		seg, err := parseSegment(piece, offset)
		if err != nil {
			return err
		}

		value, found := lookup(current, seg.name, r.opts.nonPublic)
		if !found && !r.opts.allowMissing {
			return &KeyNotFoundError{Key: seg.name, Token: decl}
		}

		// A missing key under AllowMissingKeys is normalized to null BEFORE
		// the nullability check: the option relaxes "key must exist", never
		// "non-nullable key must not be null".
		if !found || isNull(value) {
			if !seg.nullable {
				return &NullValueError{Key: seg.name, Token: decl}
			}
			// Null substitution ends the walk. Later segments stay unparsed
			// and the format specifier never applies to the substitute.
			out.WriteString(seg.substitute)
			return nil
		}

		if last {
			return render(out, value, spec, hasSpec, r.opts.provider)
		}
		current = value
		rest = remaining
	}
}
