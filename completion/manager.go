package completion

import "sort"

// Generator renders the completion script of one shell.
type Generator interface {
	Generate(programName string, data Data) string
}

var generators = map[string]func() Generator{
	"bash":       func() Generator { return &BashGenerator{} },
	"zsh":        func() Generator { return &ZshGenerator{} },
	"fish":       func() Generator { return &FishGenerator{} },
	"powershell": func() Generator { return &PowerShellGenerator{} },
}

// GetGenerator returns the generator for shell, defaulting to bash.
func GetGenerator(shell string) Generator {
	if newGen, ok := generators[shell]; ok {
		return newGen()
	}

	return &BashGenerator{}
}

// IsSupported reports whether shell has a dedicated generator.
func IsSupported(shell string) bool {
	_, ok := generators[shell]
	return ok
}

// Shells returns the supported shell names, sorted.
func Shells() []string {
	out := make([]string, 0, len(generators))
	for shell := range generators {
		out = append(out, shell)
	}
	sort.Strings(out)

	return out
}
