package parse

import (
	"strings"
	"unicode/utf8"

	"github.com/caporal-go/caporal/errs"
	"github.com/iancoleman/strcase"
)

// Arity describes whether an option takes a value.
type Arity int

const (
	// ArityNone marks a boolean flag.
	ArityNone Arity = iota
	// ArityOptional is declared with [value].
	ArityOptional
	// ArityRequired is declared with <value>.
	ArityRequired
)

func (a Arity) String() string {
	switch a {
	case ArityOptional:
		return "optional"
	case ArityRequired:
		return "required"
	}

	return "none"
}

const ellipsis = "..."

// ArgumentSynopsis is the parsed form of "<name>", "[name]" or "<name...>".
type ArgumentSynopsis struct {
	Name     string
	Synopsis string
	Required bool
	Variadic bool
}

// OptionSynopsis is the parsed form of an option declaration such as
// "-f, --file <path>".
type OptionSynopsis struct {
	// Name is the camel-cased long name, or the short name when there is none.
	Name      string
	Short     string
	Long      string
	ValueName string
	Synopsis  string
	Arity     Arity
	Variadic  bool
	Boolean   bool
	// Negated is set for "--no-x" declarations; Long is then "x".
	Negated bool
}

// AllNames returns the short and long names without dashes.
func (o OptionSynopsis) AllNames() []string {
	var names []string
	if o.Short != "" {
		names = append(names, o.Short)
	}
	if o.Long != "" {
		names = append(names, o.Long)
	}

	return names
}

// ParseArgumentSynopsis parses an argument declaration. Angle brackets make
// the argument required, square brackets or none make it optional, and a
// trailing "..." makes it variadic.
func ParseArgumentSynopsis(s string) (ArgumentSynopsis, error) {
	synopsis := strings.TrimSpace(s)
	inner, required, ok := unwrap(synopsis)
	if !ok {
		return ArgumentSynopsis{}, errs.ErrArgumentSynopsisSyntax.WithArgs(s)
	}

	variadic := strings.HasSuffix(inner, ellipsis)
	inner = strings.TrimSpace(strings.TrimSuffix(inner, ellipsis))
	if inner == "" || strings.ContainsAny(inner, "<>[] \t") {
		return ArgumentSynopsis{}, errs.ErrArgumentSynopsisSyntax.WithArgs(s)
	}

	return ArgumentSynopsis{
		Name:     CanonicalName(inner),
		Synopsis: synopsis,
		Required: required,
		Variadic: variadic,
	}, nil
}

// ParseOptionSynopsis parses an option declaration. Pieces are separated by
// whitespace or commas: "--name" sets the long name, "-n" the short name,
// and "<v>" or "[v]" the value arity. At least one name is required.
func ParseOptionSynopsis(s string) (OptionSynopsis, error) {
	out := OptionSynopsis{Synopsis: strings.TrimSpace(s)}
	syntaxErr := errs.ErrOptionSynopsisSyntax.WithArgs(s)

	pieces := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	for _, piece := range pieces {
		switch {
		case strings.HasPrefix(piece, "--"):
			name := piece[2:]
			if out.Long != "" || !IsOptionLike(piece) {
				return OptionSynopsis{}, syntaxErr
			}
			if strings.HasPrefix(name, "no-") && len(name) > 3 {
				out.Negated = true
				name = name[3:]
			}
			out.Long = name
		case strings.HasPrefix(piece, "-"):
			name := piece[1:]
			if out.Short != "" || utf8.RuneCountInString(name) != 1 || !IsOptionLike(piece) {
				return OptionSynopsis{}, syntaxErr
			}
			out.Short = name
		default:
			inner, required, ok := unwrap(piece)
			if !ok || out.Arity != ArityNone || !strings.ContainsAny(piece[:1], "<[") {
				return OptionSynopsis{}, syntaxErr
			}
			if strings.HasSuffix(inner, ellipsis) {
				out.Variadic = true
				inner = strings.TrimSuffix(inner, ellipsis)
			}
			if inner == "" {
				return OptionSynopsis{}, syntaxErr
			}
			out.ValueName = inner
			out.Arity = ArityOptional
			if required {
				out.Arity = ArityRequired
			}
		}
	}

	if out.Long == "" && out.Short == "" {
		return OptionSynopsis{}, syntaxErr
	}
	if out.Negated && out.Arity != ArityNone {
		return OptionSynopsis{}, syntaxErr
	}
	if out.Variadic && out.Short != "" {
		return OptionSynopsis{}, errs.ErrVariadicShortOption.WithArgs(out.Synopsis)
	}

	out.Boolean = out.Arity == ArityNone
	out.Name = out.Short
	if out.Long != "" {
		out.Name = CanonicalName(out.Long)
	}

	return out, nil
}

// CanonicalName converts a declared name to the key used in parsed results.
// Single characters are kept verbatim so "-V" and "-v" stay distinct.
func CanonicalName(name string) string {
	if utf8.RuneCountInString(name) == 1 {
		return name
	}

	return strcase.ToLowerCamel(name)
}

// unwrap strips "<...>" or "[...]". Bare tokens are accepted as optional.
func unwrap(s string) (inner string, required bool, ok bool) {
	if s == "" {
		return "", false, false
	}

	switch {
	case strings.HasPrefix(s, "<"):
		if !strings.HasSuffix(s, ">") || len(s) < 2 {
			return "", false, false
		}
		return s[1 : len(s)-1], true, true
	case strings.HasPrefix(s, "["):
		if !strings.HasSuffix(s, "]") || len(s) < 2 {
			return "", false, false
		}
		return s[1 : len(s)-1], false, true
	case strings.ContainsAny(s, "<>[]"):
		return "", false, false
	}

	return s, false, true
}
