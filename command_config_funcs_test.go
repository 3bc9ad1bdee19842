package caporal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand_ConfigFuncs(t *testing.T) {
	action := func(context.Context, ActionParams) (any, error) { return nil, nil }
	cmd := NewCommand("  config   set ", "set a value",
		WithAliases("cs"),
		WithAction(action),
		SetStrictArgsCount(false),
		SetStrictOptions(false),
		SetAutoCast(false),
		SetDDash(true),
		SetCommandVisible(false),
	)

	assert.Equal(t, "config set", cmd.Name())
	assert.Equal(t, "set a value", cmd.Description())
	assert.Equal(t, []string{"cs"}, cmd.Aliases())
	assert.True(t, cmd.HasAction())
	assert.False(t, cmd.StrictArgsCount())
	assert.False(t, cmd.StrictOptions())
	assert.False(t, cmd.AutoCast())
	assert.True(t, cmd.DDash())
	assert.False(t, cmd.Visible())

	cmd.Set(WithCommandDescription("changed"))
	assert.Equal(t, "changed", cmd.Description())
}

func TestCommand_InheritsProgramSettings(t *testing.T) {
	prog := newTestProgram(t, WithStrictOptions(false), WithDDash(true), WithAutoCast(false))
	cmd := prog.Command("run", "")
	assert.False(t, cmd.StrictOptions())
	assert.True(t, cmd.StrictArgsCount())
	assert.True(t, cmd.DDash())
	assert.False(t, cmd.AutoCast())

	own := prog.Command("own", "", SetStrictOptions(true))
	assert.True(t, own.StrictOptions())
}

func TestCommand_DefaultsWithoutProgram(t *testing.T) {
	cmd := NewCommand("x", "")
	assert.True(t, cmd.StrictArgsCount())
	assert.True(t, cmd.StrictOptions())
	assert.True(t, cmd.AutoCast())
	assert.False(t, cmd.DDash())
}
