// internal/solver/round.go
//
// Feedback round types for the solver engine.
// Defines:
//   - Round: one guess plus its green (Correct) and yellow (Present) cells.
//   - Absent: the derived grey-letter set for a round.
//   - ParsePattern: builds a Round from a guess and a compact feedback string.
//
// Cells are single letters; "" means "no constraint at this position".

package solver

import (
	"errors"
	"strings"
)

// WordLen is the canonical puzzle word length.
const WordLen = 5

// Round holds one guess and the feedback entered for it.
// All three slices are aligned to guess position.
type Round struct {
	Guess   []string `json:"guess"`
	Correct []string `json:"correct"`
	Present []string `json:"present"`
}

// NewRound returns an empty round of n cells.
func NewRound(n int) Round {
	return Round{
		Guess:   make([]string, n),
		Correct: make([]string, n),
		Present: make([]string, n),
	}
}

// Clone returns a deep copy so published rounds are never aliased.
func (r Round) Clone() Round {
	return Round{
		Guess:   append([]string(nil), r.Guess...),
		Correct: append([]string(nil), r.Correct...),
		Present: append([]string(nil), r.Present...),
	}
}

// Word joins the guess cells into a single uppercase string.
func (r Round) Word() string {
	var b strings.Builder
	for _, c := range r.Guess {
		if l := letter(c); l != 0 {
			b.WriteByte(l)
		}
	}
	return b.String()
}

// Solved reports whether every Correct cell is set.
func (r Round) Solved() bool {
	if len(r.Correct) == 0 {
		return false
	}
	for _, c := range r.Correct {
		if letter(c) == 0 {
			return false
		}
	}
	return true
}

// Absent returns the grey letters for the round: letters guessed at positions
// that are neither green nor yellow, minus any letter marked green or yellow
// elsewhere in the same round.
func (r Round) Absent() map[byte]struct{} {
	marked := make(map[byte]struct{})
	for _, c := range r.Correct {
		if l := letter(c); l != 0 {
			marked[l] = struct{}{}
		}
	}
	for _, c := range r.Present {
		if l := letter(c); l != 0 {
			marked[l] = struct{}{}
		}
	}

	out := make(map[byte]struct{})
	for i, c := range r.Guess {
		g := letter(c)
		if g == 0 || cell(r.Correct, i) != 0 || cell(r.Present, i) != 0 {
			continue
		}
		if _, ok := marked[g]; ok {
			continue
		}
		out[g] = struct{}{}
	}
	return out
}

// ErrBadPattern is returned by ParsePattern for mismatched input.
var ErrBadPattern = errors.New("solver: pattern length must match guess length")

// ParsePattern builds a Round from a guess word and a feedback pattern of the
// same length: 'g' marks green, 'y' marks yellow, anything else grey.
func ParsePattern(guess, pattern string) (Round, error) {
	guess = strings.ToUpper(strings.TrimSpace(guess))
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	if len(guess) != len(pattern) {
		return Round{}, ErrBadPattern
	}
	r := NewRound(len(guess))
	for i := 0; i < len(guess); i++ {
		l := string(guess[i])
		r.Guess[i] = l
		switch pattern[i] {
		case 'g':
			r.Correct[i] = l
		case 'y':
			r.Present[i] = l
		}
	}
	return r, nil
}

// letter normalises a cell to a single uppercase ASCII byte, or 0 if blank.
func letter(c string) byte {
	c = strings.TrimSpace(c)
	if c == "" {
		return 0
	}
	b := c[0]
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	return b
}

// cell reads cells[i] as a letter; out-of-range indices are blank.
func cell(cells []string, i int) byte {
	if i < 0 || i >= len(cells) {
		return 0
	}
	return letter(cells[i])
}
