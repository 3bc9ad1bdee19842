package caporal

import (
	"testing"

	"github.com/caporal-go/caporal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AddLookup(t *testing.T) {
	reg := NewRegistry()
	deploy := NewCommand("deploy", "", WithAliases("d"))
	require.NoError(t, reg.Add(deploy))
	require.NoError(t, reg.Add(NewCommand("config   set", "")))

	cmd, ok := reg.Lookup("d")
	require.True(t, ok)
	assert.Same(t, deploy, cmd)

	_, ok = reg.Lookup("config set")
	assert.True(t, ok)
	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []string{"deploy", "d", "config set"}, reg.Names())

	assert.ErrorIs(t, reg.Add(NewCommand("d", "")), errs.ErrDuplicateCommand)
	assert.ErrorIs(t, reg.Add(NewCommand("other", "", WithAliases("deploy"))), errs.ErrDuplicateCommand)
	assert.ErrorIs(t, reg.Add(NewCommand("  ", "")), errs.ErrEmptyCommandName)
	assert.Equal(t, 2, reg.Len())
}

func TestRegistry_Remove(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Add(NewCommand("deploy", "", WithAliases("d"))))

	assert.True(t, reg.Remove("d"))
	assert.False(t, reg.Remove("deploy"))
	_, ok := reg.Lookup("deploy")
	assert.False(t, ok)
	assert.Empty(t, reg.Names())
}

func TestRegistry_Fallback(t *testing.T) {
	reg := NewRegistry()
	assert.Nil(t, reg.Fallback())

	prog := NewCommand("", "")
	reg.SetProgramCommand(prog)
	assert.Same(t, prog, reg.Fallback())

	serve := NewCommand("serve", "")
	require.NoError(t, reg.Add(serve))
	assert.ErrorIs(t, reg.SetDefaultCommand("missing"), errs.ErrCommandNotFound)
	require.NoError(t, reg.SetDefaultCommand("serve"))
	assert.Same(t, serve, reg.Fallback())
	assert.Same(t, prog, reg.ProgramCommand())
}

func TestRegistry_GlobalOptions(t *testing.T) {
	reg := NewRegistry()
	verbose, err := NewOption("-v, --verbose", "")
	require.NoError(t, err)
	require.NoError(t, reg.AddGlobalOption(verbose, nil))

	clash, err := NewOption("-v, --version", "")
	require.NoError(t, err)
	assert.ErrorIs(t, reg.AddGlobalOption(clash, nil), errs.ErrDuplicateOption)

	for _, name := range []string{"v", "verbose"} {
		opt, _, ok := reg.FindGlobalOption(name)
		require.True(t, ok, name)
		assert.Same(t, verbose, opt)
	}
	assert.Len(t, reg.GlobalOptions(), 1)

	assert.True(t, reg.RemoveGlobalOption("v"))
	assert.False(t, reg.RemoveGlobalOption("verbose"))
	assert.Empty(t, reg.GlobalOptions())
}

func TestRegistry_AddAlias(t *testing.T) {
	reg := NewRegistry()
	a := NewCommand("a", "")
	b := NewCommand("b", "")
	require.NoError(t, reg.Add(a))
	require.NoError(t, reg.Add(b))

	require.NoError(t, reg.AddAlias(a, "alpha"))
	require.NoError(t, reg.AddAlias(a, "alpha"))
	assert.ErrorIs(t, reg.AddAlias(b, "alpha"), errs.ErrDuplicateCommand)
	assert.ErrorIs(t, reg.AddAlias(b, ""), errs.ErrEmptyCommandName)

	cmd, ok := reg.Lookup("alpha")
	require.True(t, ok)
	assert.Same(t, a, cmd)
}

func TestRegistry_Reset(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Add(NewCommand("a", "")))
	reg.SetProgramCommand(NewCommand("", ""))
	require.NoError(t, reg.SetDefaultCommand("a"))

	reg.Reset()
	assert.Zero(t, reg.Len())
	assert.Nil(t, reg.ProgramCommand())
	assert.Nil(t, reg.Fallback())
}
