package culture

import (
	"strconv"
	"strings"

	"golang.org/x/text/number"
)

// parseSpec splits a specifier into its letter and optional precision
// digits. ok is false when the specifier does not follow letter+digits form.
func parseSpec(spec string) (letter byte, prec int, hasPrec bool, ok bool) {
	if spec == "" {
		return 0, 0, false, false
	}
	letter = spec[0]
	rest := spec[1:]
	if rest == "" {
		return letter, 0, false, true
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, 0, false, false
	}
	return letter, n, true, true
}

func precOr(prec int, hasPrec bool, def int) int {
	if hasPrec {
		return prec
	}
	return def
}

func (p *Provider) formatInt(v int64, spec string) (string, error) {
	if spec == "" {
		return strconv.FormatInt(v, 10), nil
	}
	letter, prec, hasPrec, ok := parseSpec(spec)
	if !ok {
		return "", &SpecError{Spec: spec, Kind: "integer"}
	}
	switch letter {
	case 'D', 'd':
		return padLeft(strconv.FormatInt(v, 10), prec), nil
	case 'X':
		return strings.ToUpper(padLeft(strconv.FormatInt(v, 16), prec)), nil
	case 'x':
		return padLeft(strconv.FormatInt(v, 16), prec), nil
	case 'N', 'n':
		return p.printer.Sprintf("%v", number.Decimal(v, number.Scale(precOr(prec, hasPrec, 0)))), nil
	case 'F', 'f':
		return strconv.FormatFloat(float64(v), 'f', precOr(prec, hasPrec, 2), 64), nil
	case 'E', 'e':
		return strconv.FormatFloat(float64(v), byte(letter|0x20), precOr(prec, hasPrec, 6), 64), nil
	case 'P', 'p':
		return p.printer.Sprintf("%v", number.Percent(float64(v), number.Scale(precOr(prec, hasPrec, 0)))), nil
	default:
		return "", &SpecError{Spec: spec, Kind: "integer"}
	}
}

func (p *Provider) formatUint(v uint64, spec string) (string, error) {
	if spec == "" {
		return strconv.FormatUint(v, 10), nil
	}
	letter, prec, hasPrec, ok := parseSpec(spec)
	if !ok {
		return "", &SpecError{Spec: spec, Kind: "integer"}
	}
	switch letter {
	case 'D', 'd':
		return padLeft(strconv.FormatUint(v, 10), prec), nil
	case 'X':
		return strings.ToUpper(padLeft(strconv.FormatUint(v, 16), prec)), nil
	case 'x':
		return padLeft(strconv.FormatUint(v, 16), prec), nil
	case 'N', 'n':
		return p.printer.Sprintf("%v", number.Decimal(v, number.Scale(precOr(prec, hasPrec, 0)))), nil
	case 'F', 'f':
		return strconv.FormatFloat(float64(v), 'f', precOr(prec, hasPrec, 2), 64), nil
	case 'E', 'e':
		return strconv.FormatFloat(float64(v), byte(letter|0x20), precOr(prec, hasPrec, 6), 64), nil
	case 'P', 'p':
		return p.printer.Sprintf("%v", number.Percent(float64(v), number.Scale(precOr(prec, hasPrec, 0)))), nil
	default:
		return "", &SpecError{Spec: spec, Kind: "integer"}
	}
}

func (p *Provider) formatFloat(v float64, spec string) (string, error) {
	if spec == "" {
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	}
	letter, prec, hasPrec, ok := parseSpec(spec)
	if !ok {
		return "", &SpecError{Spec: spec, Kind: "float"}
	}
	switch letter {
	case 'F', 'f':
		return strconv.FormatFloat(v, 'f', precOr(prec, hasPrec, 2), 64), nil
	case 'N', 'n':
		return p.printer.Sprintf("%v", number.Decimal(v, number.Scale(precOr(prec, hasPrec, 2)))), nil
	case 'E', 'e':
		return strconv.FormatFloat(v, byte(letter|0x20), precOr(prec, hasPrec, 6), 64), nil
	case 'P', 'p':
		return p.printer.Sprintf("%v", number.Percent(v, number.Scale(precOr(prec, hasPrec, 0)))), nil
	default:
		// D and X are integer-only.
		return "", &SpecError{Spec: spec, Kind: "float"}
	}
}

// padLeft zero-pads the digits of s to width, keeping a leading sign in
// front of the padding.
func padLeft(s string, width int) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	if neg {
		s = "-" + s
	}
	return s
}
