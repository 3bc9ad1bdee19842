package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatValue renders a parsed value the way it would have been typed:
// integral numbers without a fraction, arrays joined by commas.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return FormatFloat(t)
	case float32:
		return FormatFloat(float64(t))
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = FormatValue(e)
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(t, ",")
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// FormatFloat prints f using the shortest representation which round-trips.
func FormatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

// AsSlice reports whether v is an array value and returns it as []any.
func AsSlice(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, true
	}

	return nil, false
}

// QuoteList renders values as a bracketed, quoted list: ["a", "b"].
func QuoteList(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Quote(FormatValue(v))
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
