package caporal

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/caporal-go/caporal/errs"
	"github.com/caporal-go/caporal/internal/util"
	"github.com/caporal-go/caporal/parse"
	"github.com/charmbracelet/lipgloss"
)

// DefaultRenderer renders plain-text help: usage, arguments, options,
// global options and, for the program, the list of commands.
type DefaultRenderer struct {
	Title lipgloss.Style
}

// NewRenderer returns a DefaultRenderer with bold section titles.
func NewRenderer() *DefaultRenderer {
	return &DefaultRenderer{Title: lipgloss.NewStyle().Bold(true)}
}

// Usage returns the synopsis line of command, or of the program when
// command is nil.
func (r *DefaultRenderer) Usage(p *Program, command *Command) string {
	if command != nil {
		return command.Synopsis()
	}

	parts := []string{p.name}
	if p.registry.Len() > 0 {
		parts = append(parts, "<command>")
	}
	for _, arg := range p.ProgramCommand().args {
		parts = append(parts, arg.Synopsis)
	}
	parts = append(parts, "[options]")

	return strings.Join(parts, " ")
}

// Help returns the full help text of command, or of the program when
// command is nil.
func (r *DefaultRenderer) Help(p *Program, command *Command) string {
	var sb strings.Builder

	description := p.description
	if command != nil && command.description != "" {
		description = command.description
	}
	if description != "" {
		sb.WriteString(description + "\n\n")
	}

	r.section(&sb, p.msg(errs.MsgUsageKey), func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "  %s\n", r.Usage(p, command))
	})

	if command == nil {
		command = p.ProgramCommand()
		r.commands(&sb, p)
	}

	if args := visibleArguments(command); len(args) > 0 {
		r.section(&sb, p.msg(errs.MsgArgumentsKey), func(tw *tabwriter.Writer) {
			for _, arg := range args {
				fmt.Fprintf(tw, "  %s\t%s\t%s\n", arg.Synopsis, arg.Description, r.fieldDetails(p, &arg.Field))
			}
		})
	}

	if opts := visibleOptions(command.Options()); len(opts) > 0 {
		r.section(&sb, p.msg(errs.MsgOptionsKey), func(tw *tabwriter.Writer) {
			for _, opt := range opts {
				fmt.Fprintf(tw, "  %s\t%s\t%s\n", OptionUsage(opt), opt.Description, r.fieldDetails(p, &opt.Field))
			}
		})
	}

	if opts := visibleOptions(p.registry.GlobalOptions()); len(opts) > 0 {
		r.section(&sb, p.msg(errs.MsgGlobalOptionsKey), func(tw *tabwriter.Writer) {
			for _, opt := range opts {
				fmt.Fprintf(tw, "  %s\t%s\n", OptionUsage(opt), opt.Description)
			}
		})
	}

	return strings.TrimRight(sb.String(), "\n")
}

func (r *DefaultRenderer) commands(sb *strings.Builder, p *Program) {
	var visible []*Command
	for _, cmd := range p.registry.Commands() {
		if cmd.visible {
			visible = append(visible, cmd)
		}
	}
	if len(visible) == 0 {
		return
	}

	r.section(sb, p.msg(errs.MsgCommandsKey), func(tw *tabwriter.Writer) {
		for _, cmd := range visible {
			fmt.Fprintf(tw, "  %s\t%s\n", CommandUsage(cmd), cmd.description)
		}
	})
}

func (r *DefaultRenderer) section(sb *strings.Builder, title string, body func(tw *tabwriter.Writer)) {
	sb.WriteString(r.Title.Render(strings.ToUpper(title)) + "\n")
	tw := tabwriter.NewWriter(sb, 0, 4, 3, ' ', 0)
	body(tw)
	_ = tw.Flush()
	sb.WriteString("\n")
}

func (r *DefaultRenderer) fieldDetails(p *Program, f *Field) string {
	details := p.msg(errs.MsgOptionalKey)
	if f.Required {
		details = p.msg(errs.MsgRequiredKey)
	}
	if f.hasDefault {
		details += ", " + p.msg(errs.MsgDefaultKey, util.FormatValue(f.Default))
	}
	if f.Validator != nil {
		details += ", " + f.Validator.Expectation(p.provider)
	}

	return details
}

// OptionUsage renders the names and value marker of opt, e.g.
// "-f, --file <path>" or "--no-color".
func OptionUsage(opt *Option) string {
	var names []string
	if opt.Short != "" {
		names = append(names, "-"+opt.Short)
	}
	if opt.Long != "" {
		long := "--" + opt.Long
		if opt.Negated {
			long = "--no-" + opt.Long
		}
		names = append(names, long)
	}

	usage := strings.Join(names, ", ")
	value := opt.ValueName
	if opt.variadic {
		value += "..."
	}
	switch opt.Arity {
	case parse.ArityRequired:
		usage += " <" + value + ">"
	case parse.ArityOptional:
		usage += " [" + value + "]"
	}

	return usage
}

// CommandUsage renders the name of cmd followed by its aliases.
func CommandUsage(cmd *Command) string {
	if len(cmd.aliases) == 0 {
		return cmd.name
	}

	return cmd.name + " (" + strings.Join(cmd.aliases, ", ") + ")"
}

func visibleArguments(cmd *Command) []*Argument {
	var out []*Argument
	for _, arg := range cmd.args {
		if arg.Visible {
			out = append(out, arg)
		}
	}

	return out
}

func visibleOptions(opts []*Option) []*Option {
	var out []*Option
	for _, opt := range opts {
		if opt.Visible {
			out = append(out, opt)
		}
	}

	return out
}
