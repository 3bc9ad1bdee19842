package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// Forced overrides auto-casting for a declared position or option name.
type Forced int

const (
	// ForceNone lets auto-casting decide.
	ForceNone Forced = iota
	// ForceString keeps the raw token.
	ForceString
	// ForceBoolean converts the token to a boolean.
	ForceBoolean
)

var numberPattern = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?$`)

// Cast converts a raw token. A forced kind always wins over auto-casting.
// With auto-casting, "true" and "false" become booleans and numeric tokens
// become float64; everything else stays a string.
func Cast(raw string, forced Forced, autoCast bool) any {
	switch forced {
	case ForceString:
		return raw
	case ForceBoolean:
		return castBoolean(raw)
	}

	if !autoCast {
		return raw
	}

	return autoCastString(raw)
}

// CastValue auto-casts v when it is a string (element-wise for arrays) and
// returns any other value unchanged, so CastValue(CastValue(v)) == CastValue(v).
func CastValue(v any) any {
	switch t := v.(type) {
	case string:
		return autoCastString(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = CastValue(e)
		}
		return out
	}

	return v
}

// IsNumeric reports whether raw is accepted as a number by auto-casting.
func IsNumeric(raw string) bool {
	return numberPattern.MatchString(raw)
}

func autoCastString(raw string) any {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}

	if numberPattern.MatchString(raw) {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	}

	return raw
}

func castBoolean(raw string) bool {
	switch strings.ToLower(raw) {
	case "false", "no", "0", "off", "":
		return false
	}

	return true
}

// ToBoolean interprets an already cast value as a boolean.
func ToBoolean(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return castBoolean(t)
	case float64:
		return t != 0
	case nil:
		return false
	}

	return true
}
