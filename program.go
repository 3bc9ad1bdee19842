// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package caporal builds command-line programs from declarations.
//
// A Program holds commands; each Command declares positional arguments
// ("<name>", "[name]", "<name...>") and options ("-f, --file <path>"), each
// optionally validated by a regular expression, a list of choices, a
// predicate or a type mask. At run time the raw tokens are resolved to a
// command, tokenized, validated as a whole (every problem is reported at
// once) and handed to the command's Action.
//
//	prog, _ := caporal.New(caporal.WithName("shop"), caporal.WithVersion("1.0.0"))
//	prog.Command("order", "Order a pizza").
//	    Argument("<type>", "Pizza type", caporal.WithChoices("margherita", "hawaiian")).
//	    Option("-n, --number <num>", "Number of pizzas", caporal.WithKind(validation.Number), caporal.WithDefault(1)).
//	    Action(func(ctx context.Context, p caporal.ActionParams) (any, error) {
//	        p.Logger.Info("ordered", "type", p.Args["type"], "number", p.Options["number"])
//	        return nil, nil
//	    })
//	_, err := prog.Run(context.Background(), os.Args[1:])
package caporal

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/caporal-go/caporal/errs"
	"github.com/caporal-go/caporal/i18n"
	"github.com/caporal-go/caporal/parse"
	"github.com/charmbracelet/log"
	"golang.org/x/text/language"
)

// New creates a program. The caller should always test for error on return
// because Program will be nil when a configuration fails.
func New(configs ...ConfigureProgramFunc) (*Program, error) {
	p := &Program{
		name:            filepath.Base(os.Args[0]),
		strictArgsCount: true,
		strictOptions:   true,
		autoCast:        true,
		stdout:          os.Stdout,
		stderr:          os.Stderr,
		bundle:          i18n.Default(),
		lang:            language.English,
		helper:          NewRenderer(),
	}

	var err error
	for _, config := range configs {
		config(p, &err)
		if err != nil {
			return nil, err
		}
	}

	if p.registry == nil {
		p.registry = NewRegistry()
	}
	if p.logger == nil {
		p.logger = newLogger(p.stderr, p.name)
	}
	p.provider = i18n.NewLanguageMessageProvider(p.bundle, p.lang)

	if err := p.init(); err != nil {
		return nil, err
	}

	return p, nil
}

// Name returns the program name used in usage output.
func (p *Program) Name() string {
	return p.name
}

// Version returns the program version.
func (p *Program) Version() string {
	return p.version
}

// Description returns the program description.
func (p *Program) Description() string {
	return p.description
}

// Logger returns the program logger, also handed to actions.
func (p *Program) Logger() *log.Logger {
	return p.logger
}

// Registry returns the registry of commands and global options.
func (p *Program) Registry() *Registry {
	return p.registry
}

// Language returns the language of messages.
func (p *Program) Language() language.Tag {
	return p.lang
}

// MessageProvider returns the provider translating messages and errors.
func (p *Program) MessageProvider() i18n.MessageProvider {
	return p.provider
}

// FormatError renders err in the program language.
func (p *Program) FormatError(err error) string {
	return errs.FormatError(err, p.provider)
}

// AddCommand creates and registers a command. name may contain spaces to
// declare a sub-command, e.g. "config set".
func (p *Program) AddCommand(name, description string, configs ...ConfigureCommandFunc) (*Command, error) {
	cmd := NewCommand(name, description, configs...)
	cmd.program = p
	if err := p.registry.Add(cmd); err != nil {
		return nil, err
	}

	return cmd, nil
}

// Command creates and registers a command and returns it for chaining. It
// panics when the name or an alias is already taken.
func (p *Program) Command(name, description string, configs ...ConfigureCommandFunc) *Command {
	cmd, err := p.AddCommand(name, description, configs...)
	if err != nil {
		panic(err)
	}

	return cmd
}

// ProgramCommand returns the unnamed command used when no command name is given.
func (p *Program) ProgramCommand() *Command {
	return p.registry.ProgramCommand()
}

// Argument declares an argument on the program command.
func (p *Program) Argument(synopsis, description string, configs ...ConfigureFieldFunc) *Program {
	p.ProgramCommand().Argument(synopsis, description, configs...)
	return p
}

// Option declares an option on the program command.
func (p *Program) Option(synopsis, description string, configs ...ConfigureFieldFunc) *Program {
	p.ProgramCommand().Option(synopsis, description, configs...)
	return p
}

// Action sets the action of the program command.
func (p *Program) Action(action Action) *Program {
	p.ProgramCommand().Action(action)
	return p
}

// SetDefaultCommand selects the registered command run when no command resolves.
func (p *Program) SetDefaultCommand(name string) error {
	return p.registry.SetDefaultCommand(name)
}

// GlobalOption declares an option recognized by every command. action runs
// before validation when the option is present and may be nil.
func (p *Program) GlobalOption(synopsis, description string, action GlobalAction, configs ...ConfigureFieldFunc) error {
	opt, err := NewOption(synopsis, description, configs...)
	if err != nil {
		return err
	}

	return p.registry.AddGlobalOption(opt, action)
}

// DisableGlobalOption removes a global option, built-in ones included, by
// any of its names.
func (p *Program) DisableGlobalOption(name string) bool {
	return p.registry.RemoveGlobalOption(parse.StripDashes(name))
}

// Reset removes every command and user global option and restores the
// built-in global options.
func (p *Program) Reset() error {
	p.registry.Reset()
	return p.init()
}

// Help returns the help text of command, or of the program when command is nil.
func (p *Program) Help(command *Command) string {
	return p.helper.Help(p, command)
}

// Run resolves, tokenizes, validates and dispatches argv, the process
// arguments without the executable name. It returns the action's result.
// Validation problems are reported together as an *errs.SummaryError.
func (p *Program) Run(ctx context.Context, argv []string) (any, error) {
	cmd, consumed, err := Resolve(ctx, p.registry, argv, p.discoverer())
	if err != nil {
		return nil, p.localize(err)
	}

	explicit := cmd != nil
	if !explicit {
		cmd = p.registry.Fallback()
	}

	opts := cmd.ParserOptions(p.registry.GlobalOptions())
	p.logger.Debug("resolved command", "command", cmd.name, "consumed", consumed, "ddash", opts.DDash, "autoCast", opts.AutoCast)

	return p.dispatch(ctx, cmd, explicit, parse.Parse(argv[consumed:], opts))
}

// RunString splits line with shell quoting rules and runs it.
func (p *Program) RunString(ctx context.Context, line string) (any, error) {
	argv, err := parse.Split(line)
	if err != nil {
		return nil, err
	}

	return p.Run(ctx, argv)
}

// Exec dispatches already split values without tokenizing them. args
// starts with the command name, if any; options are keyed by any option
// name, with or without dashes.
func (p *Program) Exec(ctx context.Context, args []string, options map[string]any) (any, error) {
	cmd, consumed, err := Resolve(ctx, p.registry, args, p.discoverer())
	if err != nil {
		return nil, p.localize(err)
	}

	explicit := cmd != nil
	if !explicit {
		cmd = p.registry.Fallback()
	}

	return p.dispatch(ctx, cmd, explicit, p.execResult(cmd, args[consumed:], options))
}

// ExitCode maps the outcome of Run to a process exit status: 1 on error, the
// action's result when it is an integer, 0 otherwise.
func ExitCode(result any, err error) int {
	if err != nil {
		return 1
	}

	switch code := result.(type) {
	case int:
		return code
	case int64:
		return int(code)
	case float64:
		if code == float64(int(code)) {
			return int(code)
		}
	}

	return 0
}

// IsHalt reports whether err stems from a global action ending the invocation.
func IsHalt(err error) bool {
	return errors.Is(err, ErrHalt)
}
