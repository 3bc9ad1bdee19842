package completion

import (
	"fmt"
	"strings"
)

// PowerShellGenerator writes a native argument completer for PowerShell.
type PowerShellGenerator struct{}

func (g *PowerShellGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	fmt.Fprintf(&script, `Register-ArgumentCompleter -Native -CommandName '%s' -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $words = @($commandAst.CommandElements | Select-Object -Skip 1 | ForEach-Object { $_.ToString() })
    if ($wordToComplete -ne '' -and $words.Count -gt 0) {
        $words = @($words | Select-Object -SkipLast 1)
    }
    $cmd = (@($words | Where-Object { -not $_.StartsWith('-') }) -join ' ')
    $prev = if ($words.Count -gt 0) { $words[-1] } else { '' }

    $values = switch ($prev) {`, escapePowerShell(programName))

	seen := map[string]bool{}
	writeValues := func(flags []Flag) {
		for _, flag := range flags {
			if len(flag.Values) == 0 {
				continue
			}
			for _, spelling := range flag.Spellings() {
				if seen[spelling] {
					continue
				}
				seen[spelling] = true
				quoted := make([]string, len(flag.Values))
				for i, v := range flag.Values {
					quoted[i] = "'" + escapePowerShell(v.Value) + "'"
				}
				fmt.Fprintf(&script, `
        '%s' { @(%s) }`, spelling, strings.Join(quoted, ", "))
			}
		}
	}
	writeValues(data.Flags)
	writeValues(data.ProgramFlags)
	for _, cmd := range data.Commands {
		writeValues(cmd.Flags)
	}

	script.WriteString(`
        default { $null }
    }
    if ($values) {
        $values | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
        }
        return
    }

    $candidates = @()
    if ($wordToComplete.StartsWith('-')) {`)

	writeFlags := func(indent string, flags []Flag) {
		for _, flag := range flags {
			for _, spelling := range flag.Spellings() {
				fmt.Fprintf(&script, "\n%s$candidates += ,@('%s', '%s', 'ParameterName')",
					indent, spelling, escapePowerShell(flag.Description))
			}
		}
	}
	writeFlags("        ", data.Flags)

	script.WriteString(`
        switch ($cmd) {`)
	for _, cmd := range data.Commands {
		if len(cmd.Flags) == 0 {
			continue
		}
		for _, name := range append([]string{cmd.Name}, cmd.Aliases...) {
			fmt.Fprintf(&script, `
            '%s' {`, escapePowerShell(name))
			writeFlags("                ", cmd.Flags)
			script.WriteString(`
            }`)
		}
	}
	if len(data.ProgramFlags) > 0 {
		script.WriteString(`
            '' {`)
		writeFlags("                ", data.ProgramFlags)
		script.WriteString(`
            }`)
	}
	script.WriteString(`
        }
    } else {
        switch ($cmd) {`)

	prefixes, next, descriptions := data.nextWords()
	for _, prefix := range prefixes {
		fmt.Fprintf(&script, `
            '%s' {`, escapePowerShell(prefix))
		for _, word := range next[prefix] {
			full := strings.TrimSpace(prefix + " " + word)
			fmt.Fprintf(&script, "\n                $candidates += ,@('%s', '%s', 'Command')",
				escapePowerShell(word), escapePowerShell(descriptions[full]))
		}
		script.WriteString(`
            }`)
	}

	script.WriteString(`
        }
    }

    $candidates | Where-Object { $_[0] -like "$wordToComplete*" } | ForEach-Object {
        $tip = if ($_[1]) { $_[1] } else { $_[0] }
        [System.Management.Automation.CompletionResult]::new($_[0], $_[0], $_[2], $tip)
    }
}
`)

	return script.String()
}
