package caporal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/caporal-go/caporal/errs"
	"github.com/caporal-go/caporal/internal/util"
	"github.com/caporal-go/caporal/parse"
	"github.com/charmbracelet/log"
	"github.com/ef-ds/deque/v2"
	"github.com/muesli/termenv"
)

func (p *Program) init() error {
	if p.registry.ProgramCommand() == nil {
		prog := NewCommand("", p.description)
		prog.program = p
		p.registry.SetProgramCommand(prog)
	}

	return p.addBuiltinGlobals()
}

func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: prefix})
	if !util.IsTerminal(w) {
		logger.SetColorProfile(termenv.Ascii)
	}

	return logger
}

// discoverer wraps the configured DiscoverFunc so discovered commands
// belong to p.
func (p *Program) discoverer() DiscoverFunc {
	if p.discover == nil {
		return nil
	}

	return func(ctx context.Context, name string) (*Command, error) {
		cmd, err := p.discover(ctx, name)
		if err != nil || cmd == nil {
			return cmd, err
		}
		cmd.program = p
		p.logger.Debug("discovered command", "command", name)

		return cmd, nil
	}
}

func (p *Program) dispatch(ctx context.Context, cmd *Command, explicit bool, res *parse.Result) (any, error) {
	halted, err := p.runGlobalActions(ctx, cmd, res)
	if err != nil {
		return nil, p.localize(err)
	}
	if halted {
		return nil, nil
	}

	if !explicit && cmd.IsProgramCommand() && !cmd.HasAction() {
		return nil, p.localize(p.unresolved(res))
	}

	call := ValidateCall(ctx, p.registry, cmd, res)
	if len(call.Errors) > 0 {
		p.logger.Debug("validation failed", "command", cmd.name, "errors", len(call.Errors))
		return nil, p.localize(errs.NewSummaryError(cmd.name, cmd.Synopsis(), call.Errors))
	}
	if !cmd.HasAction() {
		return nil, p.localize(errs.ErrNoAction.WithArgs(cmd.name))
	}

	return p.invoke(ctx, cmd, call)
}

type globalInvocation struct {
	option *Option
	action GlobalAction
	value  any
}

// runGlobalActions queues the actions of the global options present in res
// and runs them in declaration order. A command option with the same name
// shadows the global one.
func (p *Program) runGlobalActions(ctx context.Context, cmd *Command, res *parse.Result) (bool, error) {
	queue := deque.New[globalInvocation]()
	for _, opt := range p.registry.GlobalOptions() {
		value, present := lookupOption(res.Options, opt)
		if !present || shadowed(cmd, opt) {
			continue
		}
		_, action, _ := p.registry.FindGlobalOption(opt.Name)
		if action == nil {
			continue
		}
		queue.PushBack(globalInvocation{option: opt, action: action, value: value})
	}

	for queue.Len() > 0 {
		inv, _ := queue.PopFront()
		p.logger.Debug("running global option", "option", inv.option.Name)
		if err := inv.action(ctx, p, cmd, inv.value); err != nil {
			if errors.Is(err, ErrHalt) {
				return true, nil
			}
			return false, err
		}
	}

	return false, nil
}

func shadowed(cmd *Command, opt *Option) bool {
	for _, name := range opt.Names() {
		if _, ok := cmd.FindOption(name); ok {
			return true
		}
	}

	return false
}

// unresolved builds the error of an invocation naming no known command.
func (p *Program) unresolved(res *parse.Result) error {
	if len(res.Args) == 0 {
		return errs.ErrUnspecifiedCommand
	}

	name := util.FormatValue(res.Args[0])
	return errs.NewSuggestionError(errs.ErrUnknownCommand, name, util.Suggest(name, p.registry.Names()))
}

func (p *Program) invoke(ctx context.Context, cmd *Command, call *Call) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = errs.ErrPanic.WithArgs(r)
			}
			result, err = nil, p.localize(&errs.ActionError{Command: cmd.name, Cause: cause})
		}
	}()

	p.logger.Debug("running action", "command", cmd.name)
	result, err = cmd.action(ctx, ActionParams{
		Program: p,
		Command: cmd,
		Args:    call.Args,
		Options: call.Options,
		DDash:   call.DDash,
		Logger:  p.logger,
	})
	if err != nil {
		return nil, p.localize(&errs.ActionError{Command: cmd.name, Cause: err})
	}

	return result, nil
}

// execResult builds the tokenizer output Exec would have produced.
func (p *Program) execResult(cmd *Command, args []string, options map[string]any) *parse.Result {
	res := &parse.Result{
		Args:       []any{},
		Options:    map[string]any{},
		RawOptions: map[string]any{},
		DDash:      []any{},
		RawArgv:    args,
	}

	autoCast := cmd.AutoCast()
	for i, raw := range args {
		var value any = raw
		if autoCast {
			value = parse.CastValue(raw)
		}
		if i < len(cmd.args) && cmd.args[i].variadic {
			rest := make([]any, 0, len(args)-i)
			for _, r := range args[i:] {
				if autoCast {
					rest = append(rest, parse.CastValue(r))
				} else {
					rest = append(rest, r)
				}
			}
			res.Args = append(res.Args, rest)
			break
		}
		res.Args = append(res.Args, value)
	}

	for key, value := range options {
		name := strings.TrimLeft(key, "-")
		res.RawOptions["--"+name] = value
		res.Options[name] = value

		opt, ok := cmd.FindOption(name)
		if !ok {
			opt, _, ok = p.registry.FindGlobalOption(name)
		}
		if ok {
			for _, n := range append(opt.Names(), opt.Name) {
				res.Options[n] = value
			}
		}
	}

	return res
}

// localize binds err to the program language.
func (p *Program) localize(err error) error {
	return errs.WithProvider(err, p.provider)
}

// msg translates key in the program language.
func (p *Program) msg(key string, args ...any) string {
	format := p.provider.GetMessage(key)
	if len(args) == 0 {
		return format
	}

	return fmt.Sprintf(format, args...)
}
