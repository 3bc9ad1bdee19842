package parse

import (
	"strings"
	"unicode"
)

// DDash is the token which ends option parsing.
const DDash = "--"

// IsDDash reports whether tok is the literal double-dash separator.
func IsDDash(tok string) bool {
	return tok == DDash
}

// IsOptionLike reports whether tok introduces an option: a dash followed by
// a letter ("-x", "-abc") or two dashes followed by a letter ("--file").
// Negative numbers such as "-5" and the lone "-" are values.
func IsOptionLike(tok string) bool {
	switch {
	case strings.HasPrefix(tok, "--"):
		return len(tok) > 2 && isLetter(tok[2:])
	case strings.HasPrefix(tok, "-"):
		return len(tok) > 1 && isLetter(tok[1:])
	}

	return false
}

// IsLong reports whether tok is an option token with the long "--" prefix.
func IsLong(tok string) bool {
	return strings.HasPrefix(tok, "--") && IsOptionLike(tok)
}

// IsNegated reports whether tok is a negated long option such as "--no-color".
func IsNegated(tok string) bool {
	name, _, _ := SplitAssignment(tok)
	return strings.HasPrefix(name, "--no-") && len(name) > len("--no-")
}

// IsShortCluster reports whether tok packs several short flags ("-abc").
func IsShortCluster(tok string) bool {
	name, _, _ := SplitAssignment(tok)
	return !strings.HasPrefix(name, "--") && IsOptionLike(name) && len(name) > 2
}

// SplitAssignment splits tok on its first "=". hasValue is false when tok
// contains no "=".
func SplitAssignment(tok string) (name, value string, hasValue bool) {
	if i := strings.IndexByte(tok, '='); i >= 0 {
		return tok[:i], tok[i+1:], true
	}

	return tok, "", false
}

// StripDashes removes the leading option dashes of tok.
func StripDashes(tok string) string {
	if strings.HasPrefix(tok, "--") {
		return tok[2:]
	}

	return strings.TrimPrefix(tok, "-")
}

func isLetter(s string) bool {
	for _, r := range s {
		return unicode.IsLetter(r)
	}

	return false
}
