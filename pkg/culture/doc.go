// Package culture provides the format provider used to render token format
// specifiers. A Provider carries a BCP-47 language tag and renders numeric
// and time values according to a small specifier grammar:
//
//	D / d    zero-padded decimal (integers): D4 formats 5 as "0005"
//	X / x    upper/lower hexadecimal (integers), optional zero-pad width
//	F / f    fixed-point, optional precision (default 2)
//	N / n    locale-grouped number, optional fraction digits
//	E / e    scientific notation, optional precision (default 6)
//	P / p    percentage, optional fraction digits
//
// time.Time values take a Go reference layout as the specifier instead.
// Locale-aware rendering (N, P) goes through golang.org/x/text/message.
package culture
