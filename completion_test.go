package caporal

import (
	"testing"

	"github.com/caporal-go/caporal/completion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgram_CompletionData(t *testing.T) {
	prog := newTestProgram(t)
	prog.Option("--config <file>", "Config file")
	prog.Command("deploy", "Deploy the app", WithAliases("d")).
		Option("-e, --env <name>", "Target environment", WithChoices("dev", "prod")).
		Option("--hidden", "", SetVisible(false))
	prog.Command("internal", "", SetCommandVisible(false))

	data := prog.CompletionData()
	require.Len(t, data.Commands, 1)
	deploy := data.Commands[0]
	assert.Equal(t, "deploy", deploy.Name)
	assert.Equal(t, []string{"d"}, deploy.Aliases)
	assert.Equal(t, []completion.Flag{{
		Short:       "e",
		Long:        "env",
		TakesValue:  true,
		Description: "Target environment",
		Values:      []completion.Value{{Value: "dev"}, {Value: "prod"}},
	}}, deploy.Flags)

	require.Len(t, data.ProgramFlags, 1)
	assert.Equal(t, "config", data.ProgramFlags[0].Long)
	assert.True(t, data.ProgramFlags[0].TakesValue)

	var spellings []string
	for _, flag := range data.Flags {
		spellings = append(spellings, flag.Spellings()...)
	}
	assert.Equal(t, []string{"-h", "--help", "-V", "--version", "--no-color", "-v", "--verbose", "--quiet", "--silent"}, spellings)
}

func TestProgram_Completion(t *testing.T) {
	prog := newTestProgram(t)
	prog.Command("deploy", "Deploy the app")

	assert.Contains(t, prog.Completion("bash"), "complete -o default -F __prog_completion prog")
	assert.Contains(t, prog.Completion("zsh"), "#compdef prog")
	assert.Contains(t, prog.Completion("fish"), "-a 'deploy' -d 'Deploy the app'")
}
