// internal/game/engine.go
//
// Puzzle engine used to generate solver feedback from a known answer.
// Responsibilities:
//   - Create games with fixed dimensions (6x5).
//   - Validate and apply guesses (length, alphabetic, optional vocabulary).
//   - Score guesses using the classic two-pass Wordle algorithm.
//   - Translate marks into a solver.Round (hit → correct, present → present).
//   - Track state transitions: playing → won/lost.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/robalobadob/wordle-solver/internal/solver"
)

const (
	defaultRows = 6
	defaultCols = solver.WordLen
)

var (
	ErrFinished   = errors.New("game finished")
	ErrInvalid    = errors.New("invalid guess")
	ErrNotAllowed = errors.New("not in word list")
)

// New constructs a game for answer. allowed, when non-nil, restricts guesses
// to a vocabulary.
func New(answer string, allowed func(string) bool) *Game {
	g := &Game{
		ID:      randomID(),
		Answer:  strings.ToUpper(strings.TrimSpace(answer)),
		Rows:    defaultRows,
		Cols:    defaultCols,
		Guesses: []string{},
		allowed: allowed,
	}
	return g
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns: the per-letter marks, the new state string ("playing"/"won"/"lost"), or an error.
//
// State transitions:
//   - If all tiles are Hit → Finished = true, Won = true.
//   - Else if the number of guesses reaches g.Rows → Finished = true (loss).
func (g *Game) ApplyGuess(guess string) ([]Mark, string, error) {
	if g.Finished {
		return nil, g.State(), ErrFinished
	}
	guess = strings.ToUpper(strings.TrimSpace(guess))
	if len(guess) != g.Cols || !isAlpha(guess) {
		return nil, g.State(), ErrInvalid
	}
	if g.allowed != nil && !g.allowed(guess) {
		return nil, g.State(), ErrNotAllowed
	}

	marks := Score(g.Answer, guess)
	g.Guesses = append(g.Guesses, guess)

	if allHit(marks) {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return marks, g.State(), nil
}

// State reports a coarse string representation of the current game state.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// Score implements the standard Wordle two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count remaining (non-hit) answer letters.
//
// Pass 2:
//   - For each non-hit guess letter: if there is remaining count for that letter,
//     mark Present and decrement the count; otherwise mark Miss.
func Score(answer, guess string) []Mark {
	n := len(guess)
	res := make([]Mark, n)
	if len(answer) != n {
		for i := range res {
			res[i] = MarkMiss
		}
		return res
	}

	var counts [26]int
	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			res[i] = MarkHit
		} else if j := idx(answer[i]); j >= 0 {
			counts[j]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkHit {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkMiss
		}
	}
	return res
}

// Feedback converts a guess and its marks into a solver round.
func Feedback(guess string, marks []Mark) solver.Round {
	guess = strings.ToUpper(guess)
	r := solver.NewRound(len(guess))
	for i := 0; i < len(guess); i++ {
		l := string(guess[i])
		r.Guess[i] = l
		if i >= len(marks) {
			continue
		}
		switch marks[i] {
		case MarkHit:
			r.Correct[i] = l
		case MarkPresent:
			r.Present[i] = l
		}
	}
	return r
}

// idx maps an uppercase ASCII letter to 0..25, or -1.
func idx(b byte) int {
	if b < 'A' || b > 'Z' {
		return -1
	}
	return int(b - 'A')
}

// isAlpha checks that a string consists only of uppercase A–Z.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if idx(s[i]) < 0 {
			return false
		}
	}
	return true
}

// allHit returns true if all marks are MarkHit.
func allHit(m []Mark) bool {
	for _, x := range m {
		if x != MarkHit {
			return false
		}
	}
	return true
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
