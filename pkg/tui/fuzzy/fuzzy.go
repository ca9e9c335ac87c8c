// ABOUTME: Thin wrapper over sahilm/fuzzy used for option completion
// ABOUTME: Ranks candidate strings against a typed pattern, best match first

package fuzzy

import "github.com/sahilm/fuzzy"

// Match represents a single fuzzy match result.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
	Score          int
}

// Find performs fuzzy matching of pattern against the given items.
// Returns matches sorted by score (best first).
func Find(pattern string, items []string) []Match {
	results := fuzzy.Find(pattern, items)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Str:            r.Str,
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return matches
}

// Completions returns the items matching pattern, best first. An empty
// pattern completes to nothing.
func Completions(pattern string, items []string) []string {
	if pattern == "" {
		return nil
	}
	matches := Find(pattern, items)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}
	return out
}
