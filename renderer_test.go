package caporal

import (
	"testing"

	"github.com/caporal-go/caporal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestOptionUsage(t *testing.T) {
	tests := []struct {
		synopsis string
		want     string
	}{
		{"-f, --file <path>", "-f, --file <path>"},
		{"--file [path]", "--file [path]"},
		{"--tag <tag...>", "--tag <tag...>"},
		{"-v", "-v"},
		{"--no-color", "--no-color"},
		{"--dry-run", "--dry-run"},
	}

	for _, tt := range tests {
		t.Run(tt.synopsis, func(t *testing.T) {
			opt, err := NewOption(tt.synopsis, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, OptionUsage(opt))
		})
	}
}

func TestCommandUsage(t *testing.T) {
	assert.Equal(t, "deploy", CommandUsage(NewCommand("deploy", "")))
	assert.Equal(t, "install (i, add)", CommandUsage(NewCommand("install", "", WithAliases("i", "add"))))
}

func TestRenderer_CommandHelp(t *testing.T) {
	prog := newTestProgram(t)
	cmd := prog.Command("order", "Order a pizza").
		Argument("<type>", "Pizza type", WithChoices("margherita", "hawaiian")).
		Argument("[extras...]", "Toppings").
		Option("-n, --number <num>", "Number of pizzas", WithKind(validation.Number), WithDefault(1)).
		Option("--secret", "Hidden flag", SetVisible(false))

	help := prog.Help(cmd)
	assert.Contains(t, help, "Order a pizza")
	assert.Contains(t, help, "USAGE")
	assert.Contains(t, help, "prog order <type> [extras...] [options]")
	assert.Contains(t, help, "ARGUMENTS")
	assert.Contains(t, help, "<type>")
	assert.Contains(t, help, `one of ["margherita", "hawaiian"]`)
	assert.Contains(t, help, "OPTIONS")
	assert.Contains(t, help, "-n, --number <num>")
	assert.Contains(t, help, "default: 1")
	assert.Contains(t, help, "a number")
	assert.Contains(t, help, "GLOBAL OPTIONS")
	assert.Contains(t, help, "-h, --help")
	assert.NotContains(t, help, "--secret")
	assert.NotContains(t, help, "COMMANDS")
}

func TestRenderer_ProgramHelp(t *testing.T) {
	prog := newTestProgram(t, WithProgramDescription("Pizza shop"))
	prog.Command("order", "Order a pizza", WithAliases("o"))
	prog.Command("internal", "Not listed", SetCommandVisible(false))

	help := prog.Help(nil)
	assert.Contains(t, help, "Pizza shop")
	assert.Contains(t, help, "prog <command> [options]")
	assert.Contains(t, help, "COMMANDS")
	assert.Contains(t, help, "order (o)")
	assert.Contains(t, help, "Order a pizza")
	assert.NotContains(t, help, "internal")
}

func TestRenderer_Usage(t *testing.T) {
	prog := newTestProgram(t)
	r := NewRenderer()
	assert.Equal(t, "prog [options]", r.Usage(prog, nil))

	prog.Argument("<file>", "")
	assert.Equal(t, "prog <file> [options]", r.Usage(prog, nil))

	cmd := prog.Command("get", "").Argument("<key>", "")
	assert.Equal(t, "prog <command> <file> [options]", r.Usage(prog, nil))
	assert.Equal(t, "prog get <key>", r.Usage(prog, cmd))
}

func TestRenderer_Localized(t *testing.T) {
	prog := newTestProgram(t, WithLanguage(language.German))
	prog.Command("order", "")

	help := prog.Help(nil)
	assert.Contains(t, help, "VERWENDUNG")
	assert.NotContains(t, help, "USAGE")
}
