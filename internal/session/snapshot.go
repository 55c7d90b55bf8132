package session

import (
	"time"

	"github.com/robalobadob/wordle-solver/internal/solver"
)

// Snapshot is a plain-data view of a Session for transports and renderers.
type Snapshot struct {
	ID           string         `json:"id"`
	Rounds       []solver.Round `json:"rounds"`
	Active       solver.Round   `json:"active"`
	Suggestion   string         `json:"suggestion"`
	Shortlist    []string       `json:"shortlist"`
	Remaining    int            `json:"remaining"`
	UsedFallback bool           `json:"usedFallback"`
	Solved       bool           `json:"solved"`
	Exhausted    bool           `json:"exhausted"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// Snapshot copies the session's visible state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:           s.ID,
		Rounds:       s.Completed(),
		Active:       s.Active(),
		Suggestion:   s.suggestion,
		Shortlist:    s.Shortlist(),
		Remaining:    len(s.pool),
		UsedFallback: s.fallback,
		Solved:       s.Solved(),
		Exhausted:    len(s.pool) == 0,
		UpdatedAt:    s.UpdatedAt,
	}
}
