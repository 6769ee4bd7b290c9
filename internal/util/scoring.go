package util

import "github.com/sahilm/fuzzy"

// Rank returns up to n candidates fuzzy-matched against input, best
// match first. Empty input returns the candidates as-is so completion
// lists stay stable before the user types anything.
func Rank(input string, candidates []string, n int) []string {
	if input == "" {
		return candidates
	}
	matches := fuzzy.Find(input, candidates)
	if len(matches) == 0 {
		return nil
	}

	limit := n
	if n <= 0 || len(matches) < limit {
		limit = len(matches)
	}

	out := make([]string, limit)
	for i := 0; i < limit; i++ {
		out[i] = matches[i].Str
	}
	return out
}
