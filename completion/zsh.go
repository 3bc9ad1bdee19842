package completion

import (
	"fmt"
	"strings"
)

// ZshGenerator writes a #compdef completion function for zsh.
type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data Data) string {
	var script strings.Builder
	fn := functionName(programName)

	fmt.Fprintf(&script, `#compdef %[1]s

%[2]s() {
    local curcontext="$curcontext" state line
    local -a subcommands
    typeset -A opt_args

    _arguments -C \`, programName, fn)

	for _, flag := range data.Flags {
		fmt.Fprintf(&script, `
        %s \`, zshFlag(flag))
	}
	for _, flag := range data.ProgramFlags {
		fmt.Fprintf(&script, `
        %s \`, zshFlag(flag))
	}

	script.WriteString(`
        '1: :->command' \
        '*:: :->args'

    case $state in
        command)
            subcommands=(`)

	prefixes, next, descriptions := data.nextWords()
	for _, word := range next[""] {
		fmt.Fprintf(&script, `
                '%s:%s'`, escapeZsh(word), escapeZsh(descriptions[word]))
	}

	script.WriteString(`
            )
            _describe 'command' subcommands
            ;;
        args)`)

	for _, prefix := range prefixes {
		if prefix == "" {
			continue
		}
		depth := len(splitWords(prefix))
		fmt.Fprintf(&script, `
            if [[ "${(j: :)line[1,%d]}" == "%s" ]] && (( CURRENT == %d )); then
                subcommands=(`, depth, prefix, depth+1)
		for _, word := range next[prefix] {
			full := prefix + " " + word
			fmt.Fprintf(&script, `
                    '%s:%s'`, escapeZsh(word), escapeZsh(descriptions[full]))
		}
		script.WriteString(`
                )
                _describe 'command' subcommands
                return
            fi`)
	}

	for _, cmd := range byDepth(data.Commands) {
		if len(cmd.Flags) == 0 {
			continue
		}
		for _, name := range append([]string{cmd.Name}, cmd.Aliases...) {
			fmt.Fprintf(&script, `
            if [[ "${(j: :)line[1,%d]}" == "%s" ]]; then
                _arguments \`, len(splitWords(name)), name)
			for _, flag := range cmd.Flags {
				fmt.Fprintf(&script, `
                    %s \`, zshFlag(flag))
			}
			script.WriteString(`
                    '*: :_files'
                return
            fi`)
		}
	}

	fmt.Fprintf(&script, `
            _files
            ;;
    esac
}

%[1]s "$@"
`, fn)

	return script.String()
}

// zshFlag renders one _arguments spec, e.g. '(-f --file)'{-f,--file}'[File]:value:(a b)'.
func zshFlag(flag Flag) string {
	names := flag.Spellings()
	spec := "'" + names[0] + "["
	if len(names) > 1 {
		spec = fmt.Sprintf("'(%s)'{%s}'[", strings.Join(names, " "), strings.Join(names, ","))
	}
	spec += escapeZsh(flag.Description) + "]"

	switch {
	case len(flag.Values) > 0:
		spec += ":value:(" + escapeZsh(valueList(flag.Values)) + ")"
	case flag.TakesValue:
		spec += ":value:"
	}

	return spec + "'"
}
