package caporal

import (
	"github.com/caporal-go/caporal/errs"
	"github.com/caporal-go/caporal/parse"
	"github.com/caporal-go/caporal/validation"
)

// NewArgument creates a positional argument from its synopsis: "<name>" is
// required, "[name]" optional and a trailing "..." makes it variadic.
//
// Usage example:
//
//	arg, err := NewArgument("<files...>", "files to process",
//	    WithKind(validation.String))
func NewArgument(synopsis, description string, configs ...ConfigureFieldFunc) (*Argument, error) {
	s, err := parse.ParseArgumentSynopsis(synopsis)
	if err != nil {
		return nil, err
	}

	a := &Argument{Field: Field{
		Name:        s.Name,
		Synopsis:    s.Synopsis,
		Description: description,
		Required:    s.Required,
		Visible:     true,
		variadic:    s.Variadic,
	}}
	if err := a.Set(configs...); err != nil {
		return nil, err
	}

	return a, nil
}

// NewOption creates an option from its synopsis, e.g. "-f, --file <path>".
// An option without a value marker is a boolean flag defaulting to false; a
// "--no-x" declaration creates the boolean option x defaulting to true.
func NewOption(synopsis, description string, configs ...ConfigureFieldFunc) (*Option, error) {
	s, err := parse.ParseOptionSynopsis(synopsis)
	if err != nil {
		return nil, err
	}

	o := &Option{
		Field: Field{
			Name:        s.Name,
			Synopsis:    s.Synopsis,
			Description: description,
			Visible:     true,
			variadic:    s.Variadic,
			isOption:    true,
		},
		Short:     s.Short,
		Long:      s.Long,
		ValueName: s.ValueName,
		Arity:     s.Arity,
		Boolean:   s.Boolean,
		Negated:   s.Negated,
	}
	if o.Negated {
		o.Default, o.hasDefault = true, true
	}
	if err := o.Set(configs...); err != nil {
		return nil, err
	}

	if f, ok := o.Validator.(validation.Flag); ok && f.Kind() == validation.Boolean {
		o.Boolean = true
	}
	if o.Boolean && !o.hasDefault {
		o.Default, o.hasDefault = false, true
	}

	return o, nil
}

// Set configures the field with the provided ConfigureFieldFunc(s) and
// returns the first configuration error.
func (f *Field) Set(configs ...ConfigureFieldFunc) error {
	var err error
	for _, config := range configs {
		config(f, &err)
		if err != nil {
			return err
		}
	}

	return nil
}

// String returns the declared synopsis
func (a *Argument) String() string {
	return a.Synopsis
}

// String returns the declared synopsis
func (o *Option) String() string {
	return o.Synopsis
}

// Names returns the names the option answers to on the command line,
// without dashes.
func (o *Option) Names() []string {
	var names []string
	if o.Short != "" {
		names = append(names, o.Short)
	}
	if o.Long != "" {
		names = append(names, o.Long)
	}

	return names
}

// Matches reports whether key designates o: its canonical name, its short
// name or its long name.
func (o *Option) Matches(key string) bool {
	return key != "" && (key == o.Name || key == o.Short || key == o.Long)
}

// ResultKeys returns the keys o is stored under in a Call: the canonical
// name and, when there is one, the short name.
func (o *Option) ResultKeys() []string {
	keys := []string{o.Name}
	if o.Short != "" && o.Short != o.Name {
		keys = append(keys, o.Short)
	}

	return keys
}

// forced returns the tokenizer override derived from the validator.
func (f *Field) forced() parse.Forced {
	flag, ok := f.Validator.(validation.Flag)
	if !ok {
		return parse.ForceNone
	}

	switch flag.Kind() &^ validation.Array {
	case validation.Boolean:
		return parse.ForceBoolean
	case validation.String:
		return parse.ForceString
	}

	return parse.ForceNone
}

func requiredIsSyntactic(f *Field) error {
	return errs.ErrRequiredArgument.WithArgs(f.Name)
}
