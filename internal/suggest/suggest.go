// Package suggest proposes close matches for mistyped names.
package suggest

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// maxSuggestions caps how many names a hint lists.
const maxSuggestions = 3

// Names returns the candidates that fuzzy-match name, best first. Names
// sharing a prefix with name are added when the fuzzy search finds nothing,
// so "flaot" still suggests "float".
func Names(name string, candidates []string) []string {
	if name == "" {
		return nil
	}

	var out []string
	for _, m := range fuzzy.Find(name, candidates) {
		out = append(out, m.Str)
	}

	if len(out) == 0 {
		for _, c := range candidates {
			if sharedPrefix(name, c) >= 2 {
				out = append(out, c)
			}
		}
	}

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// Hint formats a "did you mean" suffix, empty when nothing matches.
func Hint(name string, candidates []string) string {
	names := Names(name, candidates)
	if len(names) == 0 {
		return ""
	}
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return "did you mean " + strings.Join(quoted, " or ") + "?"
}

func sharedPrefix(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
