package parse

import (
	"strings"
)

// Options configures the tokenizer for one command. Option names are given
// without dashes; argument positions are 0-based slot indexes.
type Options struct {
	Boolean      []string
	String       []string
	Variadic     []string
	BooleanArgs  []int
	StringArgs   []int
	VariadicArgs []int
	// Alias maps an option name to another name of the same option, usually
	// short to long. Aliases are symmetric.
	Alias map[string]string
	// DDash sends the tokens following "--" to Result.DDash instead of the
	// positional arguments.
	DDash    bool
	AutoCast bool
}

// Result holds the best-effort output of Parse. No validation or default
// substitution has happened yet.
type Result struct {
	Args []any
	// Options is keyed by option name without dashes. Every alias of an
	// option holds the same value.
	Options map[string]any
	// RawOptions is keyed by the option token as typed, e.g. "-f" or "--no-color".
	RawOptions map[string]any
	DDash      []any
	RawArgv    []string
}

// Parse walks argv once and sorts tokens into positional arguments, options
// and the double-dash bucket. It never fails: a value-less option becomes
// true and unexpected tokens are kept as positionals.
func Parse(argv []string, opts Options) *Result {
	p := newParser(argv, opts)
	for p.state.Advance() {
		tok := p.state.CurrentArg()
		if p.scanArgument(tok) {
			continue
		}
		p.scanOption(tok)
	}

	return p.result
}

type parser struct {
	state  State
	result *Result
	opts   Options

	boolean      map[string]bool
	forcedString map[string]bool
	variadic     map[string]bool
	booleanArgs  map[int]bool
	stringArgs   map[int]bool
	variadicArgs map[int]bool
	aliases      map[string][]string

	afterDDash   bool
	variadicOpen bool
}

func newParser(argv []string, opts Options) *parser {
	raw := make([]string, len(argv))
	copy(raw, argv)

	p := &parser{
		state: NewState(raw),
		result: &Result{
			Args:       []any{},
			Options:    map[string]any{},
			RawOptions: map[string]any{},
			DDash:      []any{},
			RawArgv:    raw,
		},
		opts:         opts,
		boolean:      toSet(opts.Boolean),
		forcedString: toSet(opts.String),
		variadic:     toSet(opts.Variadic),
		booleanArgs:  toSet(opts.BooleanArgs),
		stringArgs:   toSet(opts.StringArgs),
		variadicArgs: toSet(opts.VariadicArgs),
		aliases:      map[string][]string{},
	}

	for from, to := range opts.Alias {
		if from == "" || to == "" || from == to {
			continue
		}
		p.aliases[from] = appendUnique(p.aliases[from], to)
		p.aliases[to] = appendUnique(p.aliases[to], from)
	}

	return p
}

// scanArgument consumes tok when it is "--", follows "--" or is a positional
// value. Option-like tokens are left to scanOption.
func (p *parser) scanArgument(tok string) bool {
	if !p.afterDDash && IsDDash(tok) {
		p.afterDDash = true
		return true
	}

	if p.afterDDash {
		if p.opts.DDash {
			p.result.DDash = append(p.result.DDash, tok)
		} else {
			p.pushPositional(tok)
		}
		return true
	}

	if IsOptionLike(tok) {
		return false
	}

	p.pushPositional(tok)
	if p.variadicOpen {
		p.captureVariadic()
	}

	return true
}

// captureVariadic greedily appends the following positional tokens to the
// open variadic slot, stopping before an option-like token or "--".
func (p *parser) captureVariadic() {
	for {
		next, ok := p.state.Peek()
		if !ok || IsOptionLike(next) || IsDDash(next) {
			return
		}
		p.state.Advance()
		p.pushPositional(next)
	}
}

func (p *parser) pushPositional(tok string) {
	args := p.result.Args
	if p.variadicOpen && len(args) > 0 {
		last := len(args) - 1
		slot, _ := args[last].([]any)
		args[last] = append(slot, p.castArg(last, tok))
		return
	}

	idx := len(args)
	value := p.castArg(idx, tok)
	if p.variadicArgs[idx] {
		p.variadicOpen = true
		p.result.Args = append(args, []any{value})
		return
	}

	p.result.Args = append(args, value)
}

func (p *parser) castArg(idx int, tok string) any {
	forced := ForceNone
	switch {
	case p.stringArgs[idx]:
		forced = ForceString
	case p.booleanArgs[idx]:
		forced = ForceBoolean
	}

	return Cast(tok, forced, p.opts.AutoCast)
}

func (p *parser) scanOption(tok string) {
	name, value, hasValue := SplitAssignment(tok)

	if strings.HasPrefix(name, "--") {
		key := name[2:]
		if IsNegated(name) {
			key = strings.TrimPrefix(key, "no-")
			negated := false
			if hasValue {
				negated = !ToBoolean(Cast(value, ForceBoolean, true))
			}
			p.setOption(name, key, negated)
			return
		}
		p.setOption(name, key, p.optionValue(key, value, hasValue))
		return
	}

	letters := []rune(name[1:])
	for i, r := range letters {
		key := string(r)
		raw := "-" + key
		rest := string(letters[i+1:])
		switch {
		case rest == "":
			p.setOption(raw, key, p.optionValue(key, value, hasValue))
			return
		case !isLetter(rest):
			// "-n5" and "-o/tmp/out": the remainder is the value of the letter
			if hasValue {
				rest += "=" + value
			}
			p.setOption(raw, key, p.castOption(key, rest))
			return
		default:
			p.setOption(raw, key, true)
		}
	}
}

// optionValue computes the value of a single, non-negated option and
// consumes the next token when it is the option's value.
func (p *parser) optionValue(key, value string, hasValue bool) any {
	if hasValue {
		return p.castOption(key, value)
	}
	if p.isBoolean(key) {
		return true
	}

	next, ok := p.state.Peek()
	if !ok || IsOptionLike(next) || IsDDash(next) {
		return true
	}
	p.state.Advance()

	return p.castOption(key, next)
}

func (p *parser) castOption(key, raw string) any {
	forced := ForceNone
	switch {
	case p.hasName(p.forcedString, key):
		forced = ForceString
	case p.hasName(p.boolean, key):
		forced = ForceBoolean
	}

	return Cast(raw, forced, p.opts.AutoCast)
}

func (p *parser) isBoolean(key string) bool {
	return p.hasName(p.boolean, key)
}

func (p *parser) hasName(set map[string]bool, key string) bool {
	if set[key] {
		return true
	}
	for _, alias := range p.aliases[key] {
		if set[alias] {
			return true
		}
	}

	return false
}

// setOption stores value under key and every alias of key. Variadic options
// accumulate across occurrences.
func (p *parser) setOption(raw, key string, value any) {
	if p.hasName(p.variadic, key) {
		prev, _ := p.result.Options[key].([]any)
		acc := make([]any, len(prev), len(prev)+1)
		copy(acc, prev)
		value = append(acc, value)
	}

	p.result.Options[key] = value
	for _, alias := range p.aliases[key] {
		p.result.Options[alias] = value
	}
	p.result.RawOptions[raw] = value
}

func toSet[T comparable](values []T) map[T]bool {
	set := make(map[T]bool, len(values))
	for _, v := range values {
		set[v] = true
	}

	return set
}

func appendUnique(values []string, v string) []string {
	for _, existing := range values {
		if existing == v {
			return values
		}
	}

	return append(values, v)
}
