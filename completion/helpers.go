package completion

import (
	"sort"
	"strings"
)

func escapeBash(desc string) string {
	desc = strings.ReplaceAll(desc, `"`, `\"`)
	desc = strings.ReplaceAll(desc, `'`, `\'`)
	desc = strings.ReplaceAll(desc, `$`, `\$`)
	desc = strings.ReplaceAll(desc, "`", "\\`")
	return desc
}

func escapeFish(desc string) string {
	return strings.ReplaceAll(desc, "'", "\\'")
}

func escapePowerShell(desc string) string {
	desc = strings.ReplaceAll(desc, "`", "``")
	desc = strings.ReplaceAll(desc, `'`, `''`)
	desc = strings.ReplaceAll(desc, `$`, "`$")
	return desc
}

func escapeZsh(s string) string {
	s = strings.ReplaceAll(s, "[", "\\[")
	s = strings.ReplaceAll(s, "]", "\\]")
	s = strings.ReplaceAll(s, ":", "\\:")
	s = strings.ReplaceAll(s, "'", `'\''`)
	return s
}

func splitWords(name string) []string {
	return strings.Fields(name)
}

func joinWords(words []string) string {
	return strings.Join(words, " ")
}

func appendUnique(values []string, v string) []string {
	for _, existing := range values {
		if existing == v {
			return values
		}
	}

	return append(values, v)
}

// byDepth returns the commands with the most words first so the longest
// name is matched before its prefixes.
func byDepth(commands []Command) []Command {
	out := make([]Command, len(commands))
	copy(out, commands)
	sort.SliceStable(out, func(i, j int) bool {
		return len(splitWords(out[i].Name)) > len(splitWords(out[j].Name))
	})

	return out
}

func valueList(values []Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.Value
	}

	return strings.Join(parts, " ")
}
