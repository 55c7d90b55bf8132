package game

import (
	"errors"

	"github.com/robalobadob/wordle-solver/internal/session"
	"github.com/robalobadob/wordle-solver/internal/solver"
)

// Step is one autoplayed guess with its marks and the pool left afterwards.
type Step struct {
	Guess     string       `json:"guess"`
	Marks     []Mark       `json:"marks"`
	Round     solver.Round `json:"round"`
	Remaining int          `json:"remaining"`
}

// Trace is the full record of an autoplay run.
type Trace struct {
	Answer       string `json:"answer"`
	Steps        []Step `json:"steps"`
	Won          bool   `json:"won"`
	UsedFallback bool   `json:"usedFallback"`
}

// Autoplay plays s's suggestions against g until the game ends or the
// solver runs out of candidates.
func Autoplay(g *Game, s *session.Session) (Trace, error) {
	tr := Trace{Answer: g.Answer}
	for !g.Finished {
		guess := s.Suggestion()
		if guess == "" {
			break
		}
		marks, _, err := g.ApplyGuess(guess)
		if err != nil {
			return tr, err
		}
		r := Feedback(guess, marks)
		if err := s.SetActive(r); err != nil {
			return tr, err
		}

		step := Step{Guess: guess, Marks: marks, Round: r}
		if g.Won {
			step.Remaining = 1
			tr.Steps = append(tr.Steps, step)
			break
		}
		err = s.Advance()
		step.Remaining = len(s.Pool())
		tr.Steps = append(tr.Steps, step)
		if errors.Is(err, session.ErrNoCandidates) {
			break
		}
		if err != nil {
			return tr, err
		}
	}
	tr.Won = g.Won
	tr.UsedFallback = s.UsedFallback()
	return tr, nil
}
