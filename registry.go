package caporal

import (
	"github.com/caporal-go/caporal/errs"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Registry holds the declared commands and global options of a program.
// It is populated while the program is defined and only read afterwards.
type Registry struct {
	commands *orderedmap.OrderedMap[string, *Command]
	// index maps every command name and alias to its command
	index          *orderedmap.OrderedMap[string, *Command]
	globals        *orderedmap.OrderedMap[*Option, GlobalAction]
	programCommand *Command
	defaultCommand string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Reset()

	return r
}

// Reset removes every command and global option.
func (r *Registry) Reset() {
	r.commands = orderedmap.New[string, *Command]()
	r.index = orderedmap.New[string, *Command]()
	r.globals = orderedmap.New[*Option, GlobalAction]()
	r.programCommand = nil
	r.defaultCommand = ""
}

// Add registers cmd under its name and aliases.
func (r *Registry) Add(cmd *Command) error {
	if cmd.name == "" {
		return errs.ErrEmptyCommandName
	}

	names := append([]string{cmd.name}, cmd.aliases...)
	for _, name := range names {
		if _, exists := r.index.Get(name); exists {
			return errs.ErrDuplicateCommand.WithArgs(name)
		}
	}

	r.commands.Set(cmd.name, cmd)
	for _, name := range names {
		r.index.Set(name, cmd)
	}

	return nil
}

// Remove unregisters the command named name along with its aliases.
func (r *Registry) Remove(name string) bool {
	cmd, ok := r.index.Get(name)
	if !ok {
		return false
	}

	r.commands.Delete(cmd.name)
	r.index.Delete(cmd.name)
	for _, alias := range cmd.aliases {
		r.index.Delete(alias)
	}

	return true
}

// Lookup finds a command by exact name or alias.
func (r *Registry) Lookup(name string) (*Command, bool) {
	return r.index.Get(name)
}

// Commands returns the registered commands in declaration order.
func (r *Registry) Commands() []*Command {
	out := make([]*Command, 0, r.commands.Len())
	for pair := r.commands.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}

	return out
}

// Names returns every command name and alias, used for suggestions.
func (r *Registry) Names() []string {
	out := make([]string, 0, r.index.Len())
	for pair := r.index.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}

	return out
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return r.commands.Len()
}

// SetProgramCommand sets the unnamed command used when no command name is given.
func (r *Registry) SetProgramCommand(cmd *Command) {
	r.programCommand = cmd
}

// ProgramCommand returns the unnamed command, or nil.
func (r *Registry) ProgramCommand() *Command {
	return r.programCommand
}

// SetDefaultCommand selects the command used when none resolves. It must
// already be registered.
func (r *Registry) SetDefaultCommand(name string) error {
	if _, ok := r.index.Get(name); !ok {
		return errs.ErrCommandNotFound.WithArgs(name)
	}
	r.defaultCommand = name

	return nil
}

// Fallback returns the default command if one is set, else the program command.
func (r *Registry) Fallback() *Command {
	if r.defaultCommand != "" {
		if cmd, ok := r.index.Get(r.defaultCommand); ok {
			return cmd
		}
	}

	return r.programCommand
}

// AddGlobalOption registers an option recognized by every command. action
// may be nil.
func (r *Registry) AddGlobalOption(opt *Option, action GlobalAction) error {
	for pair := r.globals.Oldest(); pair != nil; pair = pair.Next() {
		for _, name := range opt.Names() {
			if pair.Key.Matches(name) {
				return errs.ErrDuplicateOption.WithArgs(opt.Synopsis, "(global)")
			}
		}
	}
	r.globals.Set(opt, action)

	return nil
}

// RemoveGlobalOption removes the global option designated by name.
func (r *Registry) RemoveGlobalOption(name string) bool {
	opt, _, ok := r.FindGlobalOption(name)
	if !ok {
		return false
	}
	r.globals.Delete(opt)

	return true
}

// FindGlobalOption returns the global option designated by name and its action.
func (r *Registry) FindGlobalOption(name string) (*Option, GlobalAction, bool) {
	for pair := r.globals.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key.Matches(name) {
			return pair.Key, pair.Value, true
		}
	}

	return nil, nil, false
}

// GlobalOptions returns the global options in declaration order.
func (r *Registry) GlobalOptions() []*Option {
	out := make([]*Option, 0, r.globals.Len())
	for pair := r.globals.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}

	return out
}

// AddAlias registers an extra name for an already registered command.
func (r *Registry) AddAlias(cmd *Command, alias string) error {
	if alias == "" {
		return errs.ErrEmptyCommandName
	}
	if existing, exists := r.index.Get(alias); exists {
		if existing == cmd {
			return nil
		}
		return errs.ErrDuplicateCommand.WithArgs(alias)
	}
	r.index.Set(alias, cmd)

	return nil
}
