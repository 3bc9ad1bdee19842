package caporal

import (
	"strings"

	"github.com/caporal-go/caporal/errs"
	"github.com/caporal-go/caporal/parse"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// NewCommand creates a command which is not yet registered. Use
// Program.Command to create and register in one step.
func NewCommand(name, description string, configs ...ConfigureCommandFunc) *Command {
	cmd := &Command{
		name:        strings.Join(strings.Fields(name), " "),
		description: description,
		options:     orderedmap.New[string, *Option](),
		visible:     true,
	}
	cmd.Set(configs...)

	return cmd
}

// Set is a helper config function that allows setting multiple configuration functions on a command.
func (c *Command) Set(configs ...ConfigureCommandFunc) {
	for _, config := range configs {
		config(c)
	}
}

// Name returns the command name; the program command has an empty name.
func (c *Command) Name() string {
	return c.name
}

// Description returns the command description.
func (c *Command) Description() string {
	return c.description
}

// Aliases returns the alternative names of the command.
func (c *Command) Aliases() []string {
	return c.aliases
}

// IsProgramCommand reports whether c is the unnamed program command.
func (c *Command) IsProgramCommand() bool {
	return c.name == ""
}

// Visible reports whether the command is listed in help output.
func (c *Command) Visible() bool {
	return c.visible
}

// Alias adds alternative names. It panics when an alias is already taken.
func (c *Command) Alias(aliases ...string) *Command {
	for _, alias := range aliases {
		if c.program != nil && !c.IsProgramCommand() {
			if err := c.program.registry.AddAlias(c, alias); err != nil {
				panic(err)
			}
		}
		c.aliases = append(c.aliases, alias)
	}

	return c
}

// AddArgument declares a positional argument. Only the last argument may be
// variadic.
func (c *Command) AddArgument(synopsis, description string, configs ...ConfigureFieldFunc) (*Argument, error) {
	arg, err := NewArgument(synopsis, description, configs...)
	if err != nil {
		return nil, err
	}

	if n := len(c.args); n > 0 && c.args[n-1].variadic {
		return nil, errs.ErrVariadicArgument.WithArgs(arg.Synopsis, c.args[n-1].Synopsis)
	}
	c.args = append(c.args, arg)

	return arg, nil
}

// Argument declares a positional argument and returns c for chaining. It
// panics on an invalid declaration, as regexp.MustCompile does.
func (c *Command) Argument(synopsis, description string, configs ...ConfigureFieldFunc) *Command {
	if _, err := c.AddArgument(synopsis, description, configs...); err != nil {
		panic(err)
	}

	return c
}

// AddOption declares an option. Names must be unique within the command.
func (c *Command) AddOption(synopsis, description string, configs ...ConfigureFieldFunc) (*Option, error) {
	opt, err := NewOption(synopsis, description, configs...)
	if err != nil {
		return nil, err
	}

	for pair := c.options.Oldest(); pair != nil; pair = pair.Next() {
		for _, name := range opt.Names() {
			if pair.Value.Matches(name) {
				return nil, errs.ErrDuplicateOption.WithArgs(opt.Synopsis, c.name)
			}
		}
	}
	c.options.Set(opt.Name, opt)

	return opt, nil
}

// Option declares an option and returns c for chaining. It panics on an
// invalid declaration.
func (c *Command) Option(synopsis, description string, configs ...ConfigureFieldFunc) *Command {
	if _, err := c.AddOption(synopsis, description, configs...); err != nil {
		panic(err)
	}

	return c
}

// Action sets the handler of the command.
func (c *Command) Action(action Action) *Command {
	c.action = action
	return c
}

// HasAction reports whether a handler is attached.
func (c *Command) HasAction() bool {
	return c.action != nil
}

// Arguments returns the declared arguments in order.
func (c *Command) Arguments() []*Argument {
	return c.args
}

// Options returns the declared options in order.
func (c *Command) Options() []*Option {
	out := make([]*Option, 0, c.options.Len())
	for pair := c.options.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}

	return out
}

// FindOption returns the option designated by key (canonical, short or long name).
func (c *Command) FindOption(key string) (*Option, bool) {
	if opt, ok := c.options.Get(key); ok {
		return opt, true
	}
	for pair := c.options.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Matches(key) {
			return pair.Value, true
		}
	}

	return nil, false
}

// ArgsRange returns the accepted number of positional arguments. max is -1
// when the last argument is variadic.
func (c *Command) ArgsRange() (min, max int) {
	for _, arg := range c.args {
		if arg.Required {
			min++
		}
	}

	max = len(c.args)
	if max > 0 && c.args[max-1].variadic {
		max = -1
	}

	return min, max
}

// Synopsis returns the one-line usage of the command, e.g.
// "prog deploy <env> [targets...] [options]".
func (c *Command) Synopsis() string {
	parts := make([]string, 0, len(c.args)+3)
	if c.program != nil && c.program.name != "" {
		parts = append(parts, c.program.name)
	}
	if c.name != "" {
		parts = append(parts, c.name)
	}
	for _, arg := range c.args {
		parts = append(parts, arg.Synopsis)
	}
	if c.options.Len() > 0 {
		parts = append(parts, "[options]")
	}

	return strings.Join(parts, " ")
}

// StrictArgsCount reports whether extra positional arguments are an error.
func (c *Command) StrictArgsCount() bool {
	return c.setting(c.strictArgsCount, func(p *Program) bool { return p.strictArgsCount }, true)
}

// StrictOptions reports whether unknown options are an error.
func (c *Command) StrictOptions() bool {
	return c.setting(c.strictOptions, func(p *Program) bool { return p.strictOptions }, true)
}

// AutoCast reports whether raw values are cast to booleans and numbers.
func (c *Command) AutoCast() bool {
	return c.setting(c.autoCast, func(p *Program) bool { return p.autoCast }, true)
}

// DDash reports whether tokens after "--" are kept apart from the arguments.
func (c *Command) DDash() bool {
	return c.setting(c.ddash, func(p *Program) bool { return p.ddash }, false)
}

func (c *Command) setting(own *bool, inherited func(*Program) bool, fallback bool) bool {
	switch {
	case own != nil:
		return *own
	case c.program != nil:
		return inherited(c.program)
	}

	return fallback
}

// ParserOptions derives the tokenizer configuration of the command. Global
// options are included so boolean globals never swallow the next token.
func (c *Command) ParserOptions(globals []*Option) parse.Options {
	opts := parse.Options{
		Alias:    map[string]string{},
		DDash:    c.DDash(),
		AutoCast: c.AutoCast(),
	}

	for i, arg := range c.args {
		switch arg.forced() {
		case parse.ForceBoolean:
			opts.BooleanArgs = append(opts.BooleanArgs, i)
		case parse.ForceString:
			opts.StringArgs = append(opts.StringArgs, i)
		}
		if arg.variadic {
			opts.VariadicArgs = append(opts.VariadicArgs, i)
		}
	}

	for _, opt := range append(c.Options(), globals...) {
		names := opt.Names()
		switch {
		case opt.Boolean:
			opts.Boolean = append(opts.Boolean, names...)
		case opt.forced() == parse.ForceString:
			opts.String = append(opts.String, names...)
		}
		if opt.variadic {
			opts.Variadic = append(opts.Variadic, names...)
		}
		if opt.Short != "" && opt.Long != "" {
			opts.Alias[opt.Short] = opt.Long
		}
	}

	return opts
}
