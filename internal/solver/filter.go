// internal/solver/filter.go
//
// Constraint filter: applies one round of feedback to a candidate pool.
//
// Rules, applied per candidate word w:
//   1. Green:  for every i with Correct[i] set, w[i] must equal it.
//   2. Yellow: for every i with Present[i] set, w must contain the letter
//      and w[i] must not equal it. Skipped where Correct[i] is also set.
//   3. Grey:   w must not contain any letter from Round.Absent().
//
// The filter never mutates its input and never fails; an empty result means
// no candidate survived.

package solver

import "strings"

// Filter returns the words of pool consistent with the given feedback,
// preserving their relative order.
func Filter(pool []string, guess, correct, present []string) []string {
	return FilterRound(pool, Round{Guess: guess, Correct: correct, Present: present})
}

// FilterRound is Filter with the feedback packed into a Round.
func FilterRound(pool []string, r Round) []string {
	c := compile(r)
	out := make([]string, 0, len(pool))
	for _, w := range pool {
		if c.satisfies(w) {
			out = append(out, w)
		}
	}
	return out
}

// FilterAll applies rounds in order, returning the surviving pool.
func FilterAll(pool []string, rounds []Round) []string {
	out := append([]string(nil), pool...)
	for _, r := range rounds {
		out = FilterRound(out, r)
	}
	return out
}

// constraints is a Round reduced to per-position letters.
type constraints struct {
	green  []byte
	yellow []byte
	absent []byte
}

func compile(r Round) constraints {
	n := len(r.Correct)
	if len(r.Present) > n {
		n = len(r.Present)
	}
	c := constraints{green: make([]byte, n), yellow: make([]byte, n)}
	for i := 0; i < n; i++ {
		c.green[i] = cell(r.Correct, i)
		if c.green[i] == 0 {
			c.yellow[i] = cell(r.Present, i)
		}
	}
	for l := range r.Absent() {
		c.absent = append(c.absent, l)
	}
	return c
}

func (c constraints) satisfies(w string) bool {
	for i, want := range c.green {
		if want == 0 {
			continue
		}
		if i >= len(w) || w[i] != want {
			return false
		}
	}
	for i, y := range c.yellow {
		if y == 0 {
			continue
		}
		if strings.IndexByte(w, y) < 0 {
			return false
		}
		if i < len(w) && w[i] == y {
			return false
		}
	}
	for _, a := range c.absent {
		if strings.IndexByte(w, a) >= 0 {
			return false
		}
	}
	return true
}
