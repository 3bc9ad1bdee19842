package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func getTestCompletionData() Data {
	return Data{
		Flags: []Flag{
			{Short: "h", Long: "help", Description: "Display help"},
			{Long: "color", Negated: true, Description: "Disable colors"},
		},
		ProgramFlags: []Flag{
			{Long: "config", TakesValue: true, Description: "Config file"},
		},
		Commands: []Command{
			{
				Name:        "deploy",
				Aliases:     []string{"d"},
				Description: "Deploy the app",
				Flags: []Flag{
					{Short: "e", Long: "env", TakesValue: true, Description: "Target environment",
						Values: []Value{{Value: "dev"}, {Value: "prod"}}},
				},
			},
			{Name: "config", Description: "Show config"},
			{
				Name:        "config set",
				Description: "Set a config key",
				Flags:       []Flag{{Long: "force", Description: "Don't ask"}},
			},
		},
	}
}

func TestFlag_Spellings(t *testing.T) {
	assert.Equal(t, []string{"-f", "--file"}, Flag{Short: "f", Long: "file"}.Spellings())
	assert.Equal(t, []string{"--no-color"}, Flag{Long: "color", Negated: true}.Spellings())
	assert.Equal(t, []string{"-v"}, Flag{Short: "v"}.Spellings())
}

func TestData_NextWords(t *testing.T) {
	data := getTestCompletionData()
	prefixes, next, descriptions := data.nextWords()

	assert.Equal(t, []string{"", "config"}, prefixes)
	assert.Equal(t, []string{"deploy", "d", "config"}, next[""])
	assert.Equal(t, []string{"set"}, next["config"])
	assert.Equal(t, "Deploy the app", descriptions["d"])
	assert.Equal(t, "Set a config key", descriptions["config set"])
	assert.Equal(t, []string{"deploy", "d", "config", "config set"}, data.Names())
}

func TestBashCompletion(t *testing.T) {
	result := (&BashGenerator{}).Generate("test-app", getTestCompletionData())

	expectations := []string{
		"__test_app_completion() {",
		`-e|--env)`,
		`COMPREPLY=( $(compgen -W "dev prod" -- "$cur") )`,
		`local flags=(-h --help --no-color)`,
		`"config set"|"config set "*)`,
		`flags+=(--force)`,
		`"deploy"|"deploy "*|"d"|"d "*)`,
		`flags+=(--config)`,
		`words="deploy d config"`,
		`"config")`,
		`words="set"`,
		"complete -o default -F __test_app_completion test-app",
	}
	for _, expected := range expectations {
		assert.Contains(t, result, expected)
	}
	assert.Less(t, indexOf(result, `"config set"|`), indexOf(result, `"deploy"|`))
}

func TestZshCompletion(t *testing.T) {
	result := (&ZshGenerator{}).Generate("testapp", getTestCompletionData())

	expectations := []string{
		"#compdef testapp",
		`'(-h --help)'{-h,--help}'[Display help]'`,
		`'--no-color[Disable colors]'`,
		`'--config[Config file]:value:'`,
		`'deploy:Deploy the app'`,
		`'set:Set a config key'`,
		`"${(j: :)line[1,1]}" == "config" ]] && (( CURRENT == 2 ))`,
		`'(-e --env)'{-e,--env}'[Target environment]:value:(dev prod)'`,
		`'--force[Don'\''t ask]'`,
		`__testapp_completion "$@"`,
	}
	for _, expected := range expectations {
		assert.Contains(t, result, expected)
	}
}

func TestFishCompletion(t *testing.T) {
	result := (&FishGenerator{}).Generate("testapp", getTestCompletionData())

	expectations := []string{
		"complete -c testapp -s h -l help -f -d 'Display help'\n",
		"complete -c testapp -l no-color -f -d 'Disable colors'\n",
		"complete -c testapp -n '__fish_use_subcommand' -l config -r -d 'Config file'\n",
		"complete -c testapp -f -n '__fish_use_subcommand' -a 'deploy' -d 'Deploy the app'\n",
		"complete -c testapp -f -n '__fish_seen_subcommand_from config' -a 'set' -d 'Set a config key'\n",
		"complete -c testapp -n '__fish_seen_subcommand_from deploy d' -s e -l env -x -a 'dev prod' -d 'Target environment'\n",
		"complete -c testapp -n '__fish_seen_subcommand_from set' -l force -f -d 'Don\\'t ask'\n",
	}
	for _, expected := range expectations {
		assert.Contains(t, result, expected)
	}
}

func TestPowerShellCompletion(t *testing.T) {
	result := (&PowerShellGenerator{}).Generate("testapp", getTestCompletionData())

	expectations := []string{
		"Register-ArgumentCompleter -Native -CommandName 'testapp'",
		"'-e' { @('dev', 'prod') }",
		"'--env' { @('dev', 'prod') }",
		"$candidates += ,@('--no-color', 'Disable colors', 'ParameterName')",
		"'config set' {",
		"$candidates += ,@('--force', 'Don''t ask', 'ParameterName')",
		"$candidates += ,@('set', 'Set a config key', 'Command')",
	}
	for _, expected := range expectations {
		assert.Contains(t, result, expected)
	}
}

func TestGetGenerator(t *testing.T) {
	assert.IsType(t, &BashGenerator{}, GetGenerator("bash"))
	assert.IsType(t, &ZshGenerator{}, GetGenerator("zsh"))
	assert.IsType(t, &FishGenerator{}, GetGenerator("fish"))
	assert.IsType(t, &PowerShellGenerator{}, GetGenerator("powershell"))
	assert.IsType(t, &BashGenerator{}, GetGenerator("unknown"))

	assert.True(t, IsSupported("zsh"))
	assert.False(t, IsSupported("tcsh"))
	assert.Equal(t, []string{"bash", "fish", "powershell", "zsh"}, Shells())
}

func TestEscapeDescription(t *testing.T) {
	tests := []struct {
		name     string
		escape   func(string) string
		input    string
		expected string
	}{
		{"bash quotes", escapeBash, `say "hi" it's $HOME`, `say \"hi\" it\'s \$HOME`},
		{"fish quote", escapeFish, "it's", `it\'s`},
		{"powershell", escapePowerShell, "it's `$x`", "it''s ```$x``"},
		{"zsh brackets", escapeZsh, "a [b]: c", `a \[b\]\: c`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.escape(tt.input))
		})
	}
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}

	return -1
}
