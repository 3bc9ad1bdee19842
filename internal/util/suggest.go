package util

import (
	"sort"

	"github.com/agext/levenshtein"
)

// MaxSuggestionDistance is the largest edit distance still offered as a suggestion.
const MaxSuggestionDistance = 2

// Suggest returns the candidates within MaxSuggestionDistance of name, closest
// first. Duplicates and exact matches are dropped.
func Suggest(name string, candidates []string) []string {
	type scored struct {
		value    string
		distance int
	}

	var found []scored
	for _, c := range UniqueStrings(candidates) {
		if c == "" || c == name {
			continue
		}
		if d := levenshtein.Distance(name, c, nil); d <= MaxSuggestionDistance {
			found = append(found, scored{value: c, distance: d})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].distance < found[j].distance
	})

	out := make([]string, len(found))
	for i, s := range found {
		out[i] = s.value
	}

	return out
}
