// Package validation holds the closed set of validators applied to
// arguments and options, and the engine applying them.
package validation

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/caporal-go/caporal/errs"
	"github.com/caporal-go/caporal/i18n"
	"github.com/caporal-go/caporal/internal/util"
)

// Validator is one of Regex, Choice, Func or Flag. The set is closed.
type Validator interface {
	// Expectation describes the accepted values, e.g. "a number".
	Expectation(provider i18n.MessageProvider) string
	sealed()
}

// Kind is the bit mask of a Flag validator.
type Kind uint8

const (
	Number Kind = 1 << iota
	String
	Boolean
	Array
)

const allKinds = Number | String | Boolean | Array

// Has reports whether every bit of other is set in k.
func (k Kind) Has(other Kind) bool {
	return k&other == other
}

func (k Kind) String() string {
	var names []string
	for _, bit := range []struct {
		kind Kind
		name string
	}{{Number, "number"}, {String, "string"}, {Boolean, "boolean"}, {Array, "array"}} {
		if k&bit.kind != 0 {
			names = append(names, bit.name)
		}
	}

	return strings.Join(names, "|")
}

// Regex accepts values whose string form matches Pattern.
type Regex struct {
	Pattern *regexp.Regexp
}

// NewRegex compiles pattern into a Regex validator.
func NewRegex(pattern string) (Regex, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Regex{}, errs.ErrInvalidPattern.WithArgs(pattern).Wrap(err)
	}

	return Regex{Pattern: re}, nil
}

func (r Regex) Expectation(provider i18n.MessageProvider) string {
	return message(provider, errs.MsgExpectPatternKey, r.Pattern.String())
}

// Choice accepts values whose string form equals the string form of one of Values.
type Choice struct {
	Values []any
}

// NewChoice creates a Choice validator from string choices.
func NewChoice(values ...string) Choice {
	c := Choice{Values: make([]any, len(values))}
	for i, v := range values {
		c.Values[i] = v
	}

	return c
}

func (c Choice) Expectation(provider i18n.MessageProvider) string {
	return message(provider, errs.MsgExpectChoiceKey, util.QuoteList(c.Values))
}

// Predicate validates and optionally coerces a value. It may block; the
// caller runs predicates concurrently.
type Predicate func(ctx context.Context, value any) (any, error)

// Func accepts values for which Predicate returns no error. The predicate's
// result replaces the value.
type Func struct {
	Predicate   Predicate
	Description string
}

// NewFunc wraps a predicate.
func NewFunc(p Predicate, description string) Func {
	return Func{Predicate: p, Description: description}
}

func (f Func) Expectation(provider i18n.MessageProvider) string {
	if f.Description != "" {
		return f.Description
	}

	return message(provider, errs.MsgExpectFuncKey)
}

// Flag checks and coerces values by type. Bits combine: Number|Boolean
// accepts either, Array|Number accepts a comma separated list of numbers.
type Flag struct {
	mask Kind
}

// NewFlag returns a Flag for mask, which must be a non-zero combination of
// Number, String, Boolean and Array.
func NewFlag(mask Kind) (Flag, error) {
	if mask == 0 || mask&^allKinds != 0 {
		return Flag{}, errs.ErrInvalidFlagMask.WithArgs(int(mask))
	}

	return Flag{mask: mask}, nil
}

// MustFlag is like NewFlag but panics on an invalid mask.
func MustFlag(mask Kind) Flag {
	f, err := NewFlag(mask)
	if err != nil {
		panic(err)
	}

	return f
}

// Kind returns the mask of f.
func (f Flag) Kind() Kind {
	return f.mask
}

func (f Flag) Expectation(provider i18n.MessageProvider) string {
	var parts []string
	if f.mask&Number != 0 {
		parts = append(parts, message(provider, errs.MsgExpectNumberKey))
	}
	if f.mask&Boolean != 0 {
		parts = append(parts, message(provider, errs.MsgExpectBoolKey))
	}
	if f.mask&String != 0 {
		parts = append(parts, message(provider, errs.MsgExpectStringKey))
	}
	if len(parts) == 0 {
		parts = append(parts, message(provider, errs.MsgExpectStringKey))
	}

	inner := strings.Join(parts, " | ")
	if f.mask&Array != 0 {
		return message(provider, errs.MsgExpectArrayKey, inner)
	}

	return inner
}

func (Regex) sealed()  {}
func (Choice) sealed() {}
func (Func) sealed()   {}
func (Flag) sealed()   {}

// From converts a loosely typed declaration into a Validator: a Validator,
// a *regexp.Regexp, a list of choices ([]string or []any), a Kind mask, a
// Predicate or a ValidatorFunc.
func From(spec any) (Validator, error) {
	switch s := spec.(type) {
	case Validator:
		return s, nil
	case *regexp.Regexp:
		if s == nil {
			break
		}
		return Regex{Pattern: s}, nil
	case []string:
		return NewChoice(s...), nil
	case []any:
		return Choice{Values: s}, nil
	case Kind:
		return NewFlag(s)
	case Predicate:
		if s == nil {
			break
		}
		return Func{Predicate: s}, nil
	case func(context.Context, any) (any, error):
		if s == nil {
			break
		}
		return Func{Predicate: s}, nil
	case ValidatorFunc:
		if s == nil {
			break
		}
		return Check(s), nil
	case func(string) error:
		if s == nil {
			break
		}
		return Check(s), nil
	}

	return nil, errs.ErrInvalidValidator.WithArgs(fmt.Sprintf("%T", spec))
}

func message(provider i18n.MessageProvider, key string, args ...any) string {
	e := i18n.NewError(key)
	if len(args) > 0 {
		return e.WithArgs(args...).Format(provider)
	}

	return e.Format(provider)
}
