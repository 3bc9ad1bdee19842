package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_Positionals(t *testing.T) {
	res := Parse([]string{"a", "2", "true"}, Options{AutoCast: true})
	assert.Equal(t, []any{"a", float64(2), true}, res.Args)
	assert.Empty(t, res.Options)
	assert.Equal(t, []string{"a", "2", "true"}, res.RawArgv)

	res = Parse([]string{"a", "2"}, Options{})
	assert.Equal(t, []any{"a", "2"}, res.Args)
}

func TestParse_VariadicCapture(t *testing.T) {
	res := Parse([]string{"a", "b", "c"}, Options{Variadic: nil, VariadicArgs: []int{0}, AutoCast: true})
	assert.Equal(t, []any{[]any{"a", "b", "c"}}, res.Args)

	res = Parse([]string{"a", "b", "c"}, Options{VariadicArgs: []int{1}, AutoCast: true})
	assert.Equal(t, []any{"a", []any{"b", "c"}}, res.Args)

	res = Parse([]string{"1", "2", "3"}, Options{VariadicArgs: []int{1}, AutoCast: true})
	assert.Equal(t, []any{float64(1), []any{float64(2), float64(3)}}, res.Args)
}

func TestParse_VariadicStopsAtOption(t *testing.T) {
	res := Parse([]string{"a", "b", "-f", "x", "c"}, Options{VariadicArgs: []int{0}, AutoCast: true})
	assert.Equal(t, "x", res.Options["f"])
	// the variadic slot is the last one, later positionals still belong to it
	assert.Equal(t, []any{[]any{"a", "b", "c"}}, res.Args)
}

func TestParse_DDash(t *testing.T) {
	res := Parse([]string{"x", "--", "-f", "y"}, Options{DDash: true, AutoCast: true})
	assert.Equal(t, []any{"x"}, res.Args)
	assert.Equal(t, []any{"-f", "y"}, res.DDash)
	assert.Empty(t, res.Options)

	res = Parse([]string{"x", "--", "-f", "1"}, Options{AutoCast: true})
	assert.Equal(t, []any{"x", "-f", float64(1)}, res.Args)
	assert.Empty(t, res.DDash)
	assert.Empty(t, res.Options)

	res = Parse([]string{"--", "--"}, Options{DDash: true})
	assert.Equal(t, []any{"--"}, res.DDash)
}

func TestParse_DDashFoldsIntoVariadic(t *testing.T) {
	res := Parse([]string{"a", "--", "-b", "c"}, Options{VariadicArgs: []int{0}, AutoCast: true})
	assert.Equal(t, []any{[]any{"a", "-b", "c"}}, res.Args)
}

func TestParse_LongOptions(t *testing.T) {
	res := Parse([]string{"--file", "a.txt", "--count=3", "--verbose"}, Options{AutoCast: true})
	assert.Equal(t, "a.txt", res.Options["file"])
	assert.Equal(t, float64(3), res.Options["count"])
	assert.Equal(t, true, res.Options["verbose"])
	assert.Equal(t, "a.txt", res.RawOptions["--file"])
	assert.Empty(t, res.Args)
}

func TestParse_BooleanDoesNotConsume(t *testing.T) {
	res := Parse([]string{"--force", "target"}, Options{Boolean: []string{"force"}, AutoCast: true})
	assert.Equal(t, true, res.Options["force"])
	assert.Equal(t, []any{"target"}, res.Args)

	res = Parse([]string{"--force=false"}, Options{Boolean: []string{"force"}, AutoCast: true})
	assert.Equal(t, false, res.Options["force"])
}

func TestParse_OptionWithoutValue(t *testing.T) {
	res := Parse([]string{"--file", "--other"}, Options{AutoCast: true})
	assert.Equal(t, true, res.Options["file"])
	assert.Equal(t, true, res.Options["other"])

	res = Parse([]string{"--file", "--", "x"}, Options{AutoCast: true})
	assert.Equal(t, true, res.Options["file"])
	assert.Equal(t, []any{"x"}, res.Args)
}

func TestParse_NegativeNumberValue(t *testing.T) {
	res := Parse([]string{"-n", "-5", "--ratio", "-0.5"}, Options{AutoCast: true})
	assert.Equal(t, float64(-5), res.Options["n"])
	assert.Equal(t, -0.5, res.Options["ratio"])
}

func TestParse_ShortCluster(t *testing.T) {
	opts := Options{Boolean: []string{"a", "b", "c"}, AutoCast: true}
	res := Parse([]string{"-abcg", "value"}, opts)
	assert.Equal(t, true, res.Options["a"])
	assert.Equal(t, true, res.Options["b"])
	assert.Equal(t, true, res.Options["c"])
	assert.Equal(t, "value", res.Options["g"])
	assert.Empty(t, res.Args)

	res = Parse([]string{"-gab", "value"}, opts)
	assert.Equal(t, true, res.Options["g"])
	assert.Equal(t, true, res.Options["b"])
	assert.Equal(t, []any{"value"}, res.Args)

	res = Parse([]string{"-ab=false"}, opts)
	assert.Equal(t, true, res.Options["a"])
	assert.Equal(t, false, res.Options["b"])
}

func TestParse_ShortAttachedValue(t *testing.T) {
	res := Parse([]string{"-n5", "-o/tmp/out"}, Options{AutoCast: true})
	assert.Equal(t, float64(5), res.Options["n"])
	assert.Equal(t, "/tmp/out", res.Options["o"])
}

func TestParse_Negation(t *testing.T) {
	res := Parse([]string{"--no-color", "x"}, Options{AutoCast: true})
	assert.Equal(t, false, res.Options["color"])
	assert.Equal(t, false, res.RawOptions["--no-color"])
	assert.Equal(t, []any{"x"}, res.Args)

	res = Parse([]string{"--no-color=false"}, Options{AutoCast: true})
	assert.Equal(t, true, res.Options["color"])
}

func TestParse_AliasSymmetry(t *testing.T) {
	opts := Options{Alias: map[string]string{"f": "file"}, AutoCast: true}

	for _, argv := range [][]string{{"-f", "a"}, {"--file", "a"}, {"--file=a"}} {
		res := Parse(argv, opts)
		assert.Equal(t, "a", res.Options["f"], "argv %v", argv)
		assert.Equal(t, res.Options["f"], res.Options["file"], "argv %v", argv)
	}
}

func TestParse_AliasBooleanLookup(t *testing.T) {
	opts := Options{Alias: map[string]string{"q": "quiet"}, Boolean: []string{"quiet"}, AutoCast: true}
	res := Parse([]string{"-q", "x"}, opts)
	assert.Equal(t, true, res.Options["q"])
	assert.Equal(t, true, res.Options["quiet"])
	assert.Equal(t, []any{"x"}, res.Args)
}

func TestParse_VariadicOptionAccumulates(t *testing.T) {
	opts := Options{Variadic: []string{"tag"}, Alias: map[string]string{"t": "tag"}, AutoCast: true}
	res := Parse([]string{"--tag", "a", "-t", "2", "--tag=c"}, opts)
	assert.Equal(t, []any{"a", float64(2), "c"}, res.Options["tag"])
	assert.Equal(t, res.Options["tag"], res.Options["t"])
}

func TestParse_ForcedKinds(t *testing.T) {
	opts := Options{
		String:     []string{"id"},
		StringArgs: []int{0},
		AutoCast:   true,
	}
	res := Parse([]string{"007", "--id", "42", "7"}, opts)
	assert.Equal(t, []any{"007", float64(7)}, res.Args)
	assert.Equal(t, "42", res.Options["id"])

	res = Parse([]string{"yes"}, Options{BooleanArgs: []int{0}})
	assert.Equal(t, []any{true}, res.Args)
}

func TestParse_DoesNotAliasInput(t *testing.T) {
	argv := []string{"a", "--b", "c"}
	res := Parse(argv, Options{})
	argv[0] = "changed"
	assert.Equal(t, "a", res.RawArgv[0])
}
