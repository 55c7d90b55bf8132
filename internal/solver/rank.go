// internal/solver/rank.go
//
// Candidate ranker: orders a pool by distinct-letter frequency.
//
// Scoring:
//   - Count, over the pool, how many words contain each letter
//     (a repeated letter counts once per word).
//   - A word's score is the sum of those counts over its distinct letters.
//   - Sort descending; ties keep pool order (stable).

package solver

import "sort"

// Scored pairs a word with its frequency score.
type Scored struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// Scores returns every word of pool with its score, in rank order.
func Scores(pool []string) []Scored {
	var freq [256]int
	for _, w := range pool {
		var seen [256]bool
		for i := 0; i < len(w); i++ {
			if !seen[w[i]] {
				seen[w[i]] = true
				freq[w[i]]++
			}
		}
	}

	out := make([]Scored, len(pool))
	for j, w := range pool {
		var seen [256]bool
		s := 0
		for i := 0; i < len(w); i++ {
			if !seen[w[i]] {
				seen[w[i]] = true
				s += freq[w[i]]
			}
		}
		out[j] = Scored{Word: w, Score: s}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Score > out[b].Score })
	return out
}

// Rank returns a reordered copy of pool, best candidate first.
func Rank(pool []string) []string {
	scored := Scores(pool)
	out := make([]string, len(scored))
	for i, s := range scored {
		out[i] = s.Word
	}
	return out
}

// TopK returns the first min(k, len(pool)) ranked words.
func TopK(pool []string, k int) []string {
	if k <= 0 {
		return []string{}
	}
	ranked := Rank(pool)
	if k > len(ranked) {
		k = len(ranked)
	}
	return ranked[:k]
}

// Best returns the top-ranked word, or "" for an empty pool.
func Best(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return Rank(pool)[0]
}
