package completion

import (
	"fmt"
	"strings"
)

// FishGenerator writes `complete` directives for fish.
type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	for _, flag := range data.Flags {
		script.WriteString(fishFlag(programName, "", flag))
	}
	for _, flag := range data.ProgramFlags {
		script.WriteString(fishFlag(programName, "__fish_use_subcommand", flag))
	}

	prefixes, next, descriptions := data.nextWords()
	for _, prefix := range prefixes {
		condition := "__fish_use_subcommand"
		if prefix != "" {
			words := splitWords(prefix)
			condition = "__fish_seen_subcommand_from " + words[len(words)-1]
		}
		for _, word := range next[prefix] {
			full := strings.TrimSpace(prefix + " " + word)
			fmt.Fprintf(&script, "complete -c %s -f -n '%s' -a '%s' -d '%s'\n",
				programName, condition, word, escapeFish(descriptions[full]))
		}
	}

	for _, cmd := range data.Commands {
		words := splitWords(cmd.Name)
		condition := "__fish_seen_subcommand_from " + strings.Join(append([]string{words[len(words)-1]}, cmd.Aliases...), " ")
		for _, flag := range cmd.Flags {
			script.WriteString(fishFlag(programName, condition, flag))
		}
	}

	return script.String()
}

func fishFlag(programName, condition string, flag Flag) string {
	line := "complete -c " + programName
	if condition != "" {
		line += " -n '" + condition + "'"
	}
	if flag.Short != "" {
		line += " -s " + flag.Short
	}
	if flag.Long != "" {
		long := flag.Long
		if flag.Negated {
			long = "no-" + long
		}
		line += " -l " + long
	}

	switch {
	case len(flag.Values) > 0:
		line += fmt.Sprintf(" -x -a '%s'", escapeFish(valueList(flag.Values)))
	case flag.TakesValue:
		line += " -r"
	default:
		line += " -f"
	}

	return line + fmt.Sprintf(" -d '%s'\n", escapeFish(flag.Description))
}
