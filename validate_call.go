package caporal

import (
	"context"
	"sort"

	"github.com/caporal-go/caporal/errs"
	"github.com/caporal-go/caporal/internal/util"
	"github.com/caporal-go/caporal/parse"
	"github.com/caporal-go/caporal/validation"
	"golang.org/x/sync/errgroup"
)

// reservedGlobals bypass validation; their actions interpret the raw value.
var reservedGlobals = map[string]bool{
	"help":    true,
	"version": true,
	"color":   true,
	"quiet":   true,
	"verbose": true,
	"silent":  true,
}

// ValidateCall maps a parsed invocation onto cmd's declarations. It never
// stops at the first problem: every field is validated, defaults fill the
// gaps and all failures end up in Call.Errors in declaration order. Field
// validators run concurrently and are all awaited.
//
// res.Args must not contain the tokens naming the command.
func ValidateCall(ctx context.Context, reg *Registry, cmd *Command, res *parse.Result) *Call {
	call := &Call{
		Command: cmd,
		Args:    map[string]any{},
		Options: map[string]any{},
		DDash:   res.DDash,
	}
	if call.DDash == nil {
		call.DDash = []any{}
	}

	var tasks []*fieldTask
	tasks = append(tasks, argumentTasks(cmd, res, call.Args)...)
	tasks = append(tasks, optionTasks(cmd, res, call.Options)...)
	tasks = append(tasks, parsedOptionTasks(reg, cmd, res, call.Options)...)

	var g errgroup.Group
	for _, t := range tasks {
		if !t.validate {
			continue
		}
		g.Go(func() error {
			t.run(ctx)
			return nil
		})
	}
	_ = g.Wait()

	for _, t := range tasks {
		if t.err != nil {
			call.Errors = append(call.Errors, t.err)
			continue
		}
		for _, key := range t.keys {
			t.target[key] = t.result
		}
	}

	return call
}

// fieldTask is one slot of the validated call. Tasks with validate set run
// concurrently; the others carry a ready value or error.
type fieldTask struct {
	kind      errs.FieldKind
	name      string
	keys      []string
	target    map[string]any
	value     any
	validator validation.Validator
	variadic  bool
	validate  bool

	result any
	err    error
}

func (t *fieldTask) run(ctx context.Context) {
	var (
		out any
		err error
	)
	if t.variadic {
		out, err = validation.ValidateEach(ctx, t.value, t.validator)
	} else {
		out, err = validation.Validate(ctx, t.value, t.validator)
	}
	if err != nil {
		t.err = validation.Failure(t.kind, t.name, t.value, t.validator, err)
		return
	}
	t.result = out
}

func failedTask(kind errs.FieldKind, name string, err error) *fieldTask {
	return &fieldTask{err: &errs.FieldError{Kind: kind, Field: name, Err: err}}
}

func argumentTasks(cmd *Command, res *parse.Result, target map[string]any) []*fieldTask {
	var tasks []*fieldTask
	for i, arg := range cmd.args {
		if i < len(res.Args) {
			value := res.Args[i]
			if _, isArray := util.AsSlice(value); arg.variadic && !isArray {
				value = []any{value}
			}
			tasks = append(tasks, &fieldTask{
				kind:      errs.ArgumentField,
				name:      arg.Name,
				keys:      []string{arg.Name},
				target:    target,
				value:     value,
				result:    value,
				validator: arg.Validator,
				variadic:  arg.variadic,
				validate:  arg.Validator != nil,
			})
			continue
		}

		switch {
		case arg.hasDefault:
			target[arg.Name] = arg.Default
		case arg.Required:
			tasks = append(tasks, failedTask(errs.ArgumentField, arg.Name,
				errs.ErrMissingArgument.WithArgs(arg.Name)))
		}
	}

	if cmd.StrictArgsCount() {
		if _, max := cmd.ArgsRange(); max >= 0 && len(res.Args) > max {
			tasks = append(tasks, &fieldTask{
				err: errs.ErrTooManyArguments.WithArgs(len(res.Args), max),
			})
		}
	}

	return tasks
}

func optionTasks(cmd *Command, res *parse.Result, target map[string]any) []*fieldTask {
	var tasks []*fieldTask
	for _, opt := range cmd.Options() {
		value, present := lookupOption(res.Options, opt)
		switch {
		case present:
			if opt.Arity == parse.ArityRequired && !opt.Boolean && value == true {
				tasks = append(tasks, failedTask(errs.OptionField, opt.Name,
					errs.ErrOptionExpectsValue.WithArgs(displayName(opt))))
				continue
			}
			tasks = append(tasks, optionTask(opt, value, target))
		case opt.hasDefault:
			for _, key := range opt.ResultKeys() {
				target[key] = opt.Default
			}
		case opt.Required:
			tasks = append(tasks, failedTask(errs.OptionField, opt.Name,
				errs.ErrMissingOption.WithArgs(displayName(opt))))
		}
	}

	return tasks
}

// parsedOptionTasks handles parsed options which the command does not
// declare: global options, and unknown ones.
func parsedOptionTasks(reg *Registry, cmd *Command, res *parse.Result, target map[string]any) []*fieldTask {
	raws := make([]string, 0, len(res.RawOptions))
	for raw := range res.RawOptions {
		raws = append(raws, raw)
	}
	sort.Strings(raws)

	var tasks []*fieldTask
	seen := map[*Option]bool{}
	for _, raw := range raws {
		key := optionKey(raw)
		if _, ok := cmd.FindOption(key); ok {
			continue
		}

		if reg != nil {
			if opt, _, ok := reg.FindGlobalOption(key); ok {
				if seen[opt] {
					continue
				}
				seen[opt] = true
				value, _ := lookupOption(res.Options, opt)
				if reservedGlobals[opt.Name] {
					for _, k := range opt.ResultKeys() {
						target[k] = value
					}
					continue
				}
				tasks = append(tasks, optionTask(opt, value, target))
				continue
			}
		}

		if !cmd.StrictOptions() {
			target[parse.CanonicalName(key)] = res.RawOptions[raw]
			continue
		}

		err := errs.NewSuggestionError(errs.ErrUnknownOption, raw, util.Suggest(raw, optionCandidates(reg, cmd)))
		tasks = append(tasks, &fieldTask{err: &errs.FieldError{Kind: errs.OptionField, Field: key, Err: err}})
	}

	return tasks
}

func optionTask(opt *Option, value any, target map[string]any) *fieldTask {
	return &fieldTask{
		kind:      errs.OptionField,
		name:      opt.Name,
		keys:      opt.ResultKeys(),
		target:    target,
		value:     value,
		result:    value,
		validator: opt.Validator,
		variadic:  opt.variadic,
		validate:  opt.Validator != nil,
	}
}

// lookupOption finds the parsed value of opt under any of its names.
func lookupOption(parsed map[string]any, opt *Option) (any, bool) {
	for _, key := range []string{opt.Long, opt.Short, opt.Name} {
		if key == "" {
			continue
		}
		if v, ok := parsed[key]; ok {
			return v, true
		}
	}

	return nil, false
}

// optionKey turns a raw option token into the name it designates:
// "--no-color" designates "color", "-f" designates "f".
func optionKey(raw string) string {
	if parse.IsNegated(raw) {
		return parse.StripDashes(raw)[len("no-"):]
	}

	return parse.StripDashes(raw)
}

func displayName(opt *Option) string {
	if opt.Long != "" {
		return "--" + opt.Long
	}

	return "-" + opt.Short
}

func optionCandidates(reg *Registry, cmd *Command) []string {
	opts := cmd.Options()
	if reg != nil {
		opts = append(opts, reg.GlobalOptions()...)
	}

	var names []string
	for _, opt := range opts {
		if opt.Long != "" {
			names = append(names, "--"+opt.Long)
			if opt.Negated {
				names = append(names, "--no-"+opt.Long)
			}
		}
		if opt.Short != "" {
			names = append(names, "-"+opt.Short)
		}
	}

	return names
}
