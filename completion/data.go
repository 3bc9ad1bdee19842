package completion

// Value is one suggested value of an option, e.g. a declared choice.
type Value struct {
	Value       string
	Description string
}

// Flag describes an option offered for completion. Names are given without
// dashes; a negated flag is completed as --no-<Long>.
type Flag struct {
	Short       string
	Long        string
	Negated     bool
	TakesValue  bool
	Description string
	Values      []Value
}

// Spellings returns the flag as typed on the command line: "-f", "--file".
func (f Flag) Spellings() []string {
	var out []string
	if f.Short != "" {
		out = append(out, "-"+f.Short)
	}
	if f.Long != "" {
		if f.Negated {
			out = append(out, "--no-"+f.Long)
		} else {
			out = append(out, "--"+f.Long)
		}
	}

	return out
}

// Command describes a command offered for completion. Name may contain
// spaces for sub-commands, e.g. "config set".
type Command struct {
	Name        string
	Aliases     []string
	Description string
	Flags       []Flag
}

// Data is everything a generator needs to complete one program.
type Data struct {
	Commands []Command
	// Flags are accepted by every command.
	Flags []Flag
	// ProgramFlags are the options of the program command itself.
	ProgramFlags []Flag
}

// Names returns every command name and alias in declaration order.
func (d Data) Names() []string {
	var out []string
	for _, cmd := range d.Commands {
		out = append(out, cmd.Name)
		out = append(out, cmd.Aliases...)
	}

	return out
}

// nextWords maps each command prefix to the words which may follow it. The
// empty prefix lists the first words of all commands.
func (d Data) nextWords() (prefixes []string, next map[string][]string, descriptions map[string]string) {
	next = map[string][]string{}
	descriptions = map[string]string{}
	for _, cmd := range d.Commands {
		for _, name := range append([]string{cmd.Name}, cmd.Aliases...) {
			words := splitWords(name)
			for i := range words {
				prefix := joinWords(words[:i])
				if _, ok := next[prefix]; !ok {
					prefixes = append(prefixes, prefix)
				}
				next[prefix] = appendUnique(next[prefix], words[i])
				if i == len(words)-1 {
					descriptions[joinWords(words[:i+1])] = cmd.Description
				}
			}
		}
	}

	return prefixes, next, descriptions
}
