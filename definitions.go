package caporal

import (
	"context"
	"errors"
	"io"

	"github.com/caporal-go/caporal/i18n"
	"github.com/caporal-go/caporal/parse"
	"github.com/caporal-go/caporal/validation"
	"github.com/charmbracelet/log"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/text/language"
)

// ConfigureProgramFunc is used when defining Program options
type ConfigureProgramFunc func(program *Program, err *error)

// ConfigureCommandFunc is used when defining Command options
type ConfigureCommandFunc func(command *Command)

// ConfigureFieldFunc is used when defining Argument and Option fields
type ConfigureFieldFunc func(field *Field, err *error)

// Action is the handler of a command. Its result is returned by Program.Run;
// an int result is used as the process exit code by ExitCode.
type Action func(ctx context.Context, params ActionParams) (any, error)

// ActionParams is what an Action receives.
type ActionParams struct {
	Program *Program
	Command *Command
	// Args is keyed by argument name.
	Args map[string]any
	// Options is keyed by the camel-cased option name and by the short name.
	Options map[string]any
	DDash   []any
	Logger  *log.Logger
}

// GlobalAction runs when its global option is present on the command line,
// before validation. Returning ErrHalt stops the invocation without error.
type GlobalAction func(ctx context.Context, program *Program, command *Command, value any) error

// DiscoverFunc materializes a command which is not statically registered.
// It returns a nil command when name is unknown.
type DiscoverFunc func(ctx context.Context, name string) (*Command, error)

// Helper renders help for a program or command. DefaultRenderer is used
// unless WithHelper is supplied.
type Helper interface {
	Help(program *Program, command *Command) string
	Usage(program *Program, command *Command) string
}

// ErrHalt is returned by a GlobalAction to end an invocation successfully,
// as --help and --version do.
var ErrHalt = errors.New("halt")

// Field holds what arguments and options share.
type Field struct {
	Name        string
	Synopsis    string
	Description string
	Default     any
	Validator   validation.Validator
	Required    bool
	Visible     bool

	hasDefault bool
	variadic   bool
	isOption   bool
}

// HasDefault reports whether a default value was configured.
func (f *Field) HasDefault() bool {
	return f.hasDefault
}

// Variadic reports whether the field captures several values.
func (f *Field) Variadic() bool {
	return f.variadic
}

// Argument is a positional field, declared as <name>, [name] or <name...>.
type Argument struct {
	Field
}

// Option is a named field, declared as "-f, --file <path>".
type Option struct {
	Field
	Short     string
	Long      string
	ValueName string
	Arity     parse.Arity
	Boolean   bool
	Negated   bool
}

// Call is the validated form of one invocation.
type Call struct {
	Command *Command
	Args    map[string]any
	Options map[string]any
	DDash   []any
	Errors  []error
}

// Program is the root of a command-line application: its name, its
// registry of commands and global options, and the defaults its commands
// inherit.
type Program struct {
	name        string
	version     string
	description string
	registry    *Registry

	strictArgsCount bool
	strictOptions   bool
	autoCast        bool
	ddash           bool

	logger   *log.Logger
	stdout   io.Writer
	stderr   io.Writer
	discover DiscoverFunc
	helper   Helper

	bundle   *i18n.Bundle
	lang     language.Tag
	provider i18n.MessageProvider
}

// Command is a named entry point with its own arguments, options and action.
// Sub-commands are plain names containing spaces, such as "config set".
type Command struct {
	name        string
	description string
	aliases     []string
	args        []*Argument
	options     *orderedmap.OrderedMap[string, *Option]
	action      Action
	program     *Program

	strictArgsCount *bool
	strictOptions   *bool
	autoCast        *bool
	ddash           *bool
	visible         bool
}
