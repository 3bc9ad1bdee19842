package caporal

import (
	"github.com/caporal-go/caporal/validation"
)

// WithDescription sets the description shown in help output
func WithDescription(description string) ConfigureFieldFunc {
	return func(field *Field, err *error) {
		field.Description = description
	}
}

// WithDefault sets the value used when the field is absent from the command line
func WithDefault(value any) ConfigureFieldFunc {
	return func(field *Field, err *error) {
		field.Default = value
		field.hasDefault = true
	}
}

// WithValidator sets the validator of the field. spec is a validation.Validator,
// a *regexp.Regexp, a list of choices, a validation.Kind mask, a
// validation.Predicate or a validation.ValidatorFunc.
func WithValidator(spec any) ConfigureFieldFunc {
	return func(field *Field, err *error) {
		v, e := validation.From(spec)
		if e != nil {
			*err = e
			return
		}
		field.Validator = v
	}
}

// WithChoices restricts the field to the given values
func WithChoices(values ...string) ConfigureFieldFunc {
	return func(field *Field, err *error) {
		field.Validator = validation.NewChoice(values...)
	}
}

// WithPattern restricts the field to values matching the regular expression
func WithPattern(pattern string) ConfigureFieldFunc {
	return func(field *Field, err *error) {
		v, e := validation.NewRegex(pattern)
		if e != nil {
			*err = e
			return
		}
		field.Validator = v
	}
}

// WithKind checks and coerces the field's value by type, e.g.
// validation.Number or validation.Array|validation.String.
func WithKind(kind validation.Kind) ConfigureFieldFunc {
	return func(field *Field, err *error) {
		v, e := validation.NewFlag(kind)
		if e != nil {
			*err = e
			return
		}
		field.Validator = v
	}
}

// WithFunc validates the field with a predicate whose result replaces the value
func WithFunc(predicate validation.Predicate, description string) ConfigureFieldFunc {
	return func(field *Field, err *error) {
		field.Validator = validation.NewFunc(predicate, description)
	}
}

// WithCheck validates the field's string form with one of the ready-made
// checks of the validation package
func WithCheck(check validation.ValidatorFunc) ConfigureFieldFunc {
	return func(field *Field, err *error) {
		field.Validator = validation.Check(check)
	}
}

// SetRequired marks an option as mandatory. Arguments are required or
// optional through their synopsis only.
func SetRequired(required bool) ConfigureFieldFunc {
	return func(field *Field, err *error) {
		if !field.isOption {
			*err = requiredIsSyntactic(field)
			return
		}
		field.Required = required
	}
}

// SetVisible hides the field from help output when false
func SetVisible(visible bool) ConfigureFieldFunc {
	return func(field *Field, err *error) {
		field.Visible = visible
	}
}
