package completion

import (
	"fmt"
	"strings"
)

// BashGenerator writes a completion function for bash.
type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data Data) string {
	var script strings.Builder
	fn := functionName(programName)

	fmt.Fprintf(&script, `#!/bin/bash

%[1]s() {
    local cur prev cmd words i
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    cmd=""

    # command words come before the first option
    for ((i=1; i < COMP_CWORD; i++)); do
        [[ "${COMP_WORDS[i]}" == -* ]] && break
        cmd="${cmd:+$cmd }${COMP_WORDS[i]}"
    done

    case "${prev}" in`, fn)

	seen := map[string]bool{}
	writeValues := func(flags []Flag) {
		for _, flag := range flags {
			if len(flag.Values) == 0 {
				continue
			}
			pattern := strings.Join(flag.Spellings(), "|")
			if seen[pattern] {
				continue
			}
			seen[pattern] = true
			fmt.Fprintf(&script, `
        %s)
            COMPREPLY=( $(compgen -W "%s" -- "$cur") )
            return
            ;;`, pattern, escapeBash(valueList(flag.Values)))
		}
	}
	writeValues(data.Flags)
	writeValues(data.ProgramFlags)
	for _, cmd := range data.Commands {
		writeValues(cmd.Flags)
	}

	script.WriteString(`
    esac

    if [[ "$cur" == -* ]]; then
        local flags=(`)
	script.WriteString(strings.Join(spellings(data.Flags), " "))
	script.WriteString(`)
        case "${cmd}" in`)

	for _, cmd := range byDepth(data.Commands) {
		if len(cmd.Flags) == 0 {
			continue
		}
		fmt.Fprintf(&script, `
            %s)
                flags+=(%s)
                ;;`, casePattern(cmd), strings.Join(spellings(cmd.Flags), " "))
	}
	if len(data.ProgramFlags) > 0 {
		fmt.Fprintf(&script, `
            "")
                flags+=(%s)
                ;;`, strings.Join(spellings(data.ProgramFlags), " "))
	}

	script.WriteString(`
        esac
        COMPREPLY=( $(compgen -W "${flags[*]}" -- "$cur") )
        return
    fi

    case "${cmd}" in`)

	prefixes, next, _ := data.nextWords()
	for _, prefix := range prefixes {
		fmt.Fprintf(&script, `
        %q)
            words="%s"
            ;;`, prefix, strings.Join(next[prefix], " "))
	}

	fmt.Fprintf(&script, `
        *)
            words=""
            ;;
    esac
    COMPREPLY=( $(compgen -W "${words}" -- "$cur") )
}

complete -o default -F %[1]s %[2]s
`, fn, programName)

	return script.String()
}

// casePattern matches the command and its aliases, with or without
// trailing arguments.
func casePattern(cmd Command) string {
	var patterns []string
	for _, name := range append([]string{cmd.Name}, cmd.Aliases...) {
		patterns = append(patterns, fmt.Sprintf("%q|%q*", name, name+" "))
	}

	return strings.Join(patterns, "|")
}

func spellings(flags []Flag) []string {
	var out []string
	for _, flag := range flags {
		out = append(out, flag.Spellings()...)
	}

	return out
}

func functionName(programName string) string {
	replacer := strings.NewReplacer("-", "_", ".", "_", " ", "_")
	return "__" + replacer.Replace(programName) + "_completion"
}
