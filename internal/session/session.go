// internal/session/session.go
//
// Round driver for one solving session.
// Responsibilities:
//   - Own the append-only round history and the current candidate pool.
//   - Apply the active round's feedback on Advance, falling back once to the
//     secondary pool when the primary pool is exhausted.
//   - Rank the surviving pool into a suggestion and a top-K shortlist.
//   - Open the next round pre-seeded with the suggestion and carried greens.
//
// A Session is not safe for concurrent use; callers (see internal/store)
// serialise access.

package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// DefaultTopK is the shortlist size used when none is configured.
const DefaultTopK = 5

var (
	// ErrNoCandidates means no word satisfies the feedback so far, even after
	// falling back to the secondary pool.
	ErrNoCandidates = errors.New("no candidates remain")
	// ErrSolved means the active round is already fully green.
	ErrSolved = errors.New("session already solved")
	// ErrInvalidRound means a round failed boundary validation.
	ErrInvalidRound = errors.New("invalid round")
)

// Session is one game's solver state.
type Session struct {
	ID        string
	TopK      int
	CreatedAt time.Time
	UpdatedAt time.Time

	lists      *words.Lists
	pool       []string
	history    []solver.Round // last element is the active round
	fallback   bool
	suggestion string
	shortlist  []string
}

// New starts a session on the primary pool with its first suggestion.
func New(id string, lists *words.Lists, topK int) *Session {
	if topK <= 0 {
		topK = DefaultTopK
	}
	s := &Session{ID: id, TopK: topK, lists: lists, CreatedAt: time.Now().UTC()}
	s.Reset()
	return s
}

// Reset returns the session to the primary pool with a single fresh round.
func (s *Session) Reset() {
	s.pool = s.lists.Solutions
	s.fallback = false
	s.rank()
	s.history = []solver.Round{s.seedRound(nil)}
	s.UpdatedAt = time.Now().UTC()
}

// Active returns a copy of the round currently being edited.
func (s *Session) Active() solver.Round {
	return s.history[len(s.history)-1].Clone()
}

// Completed returns copies of the rounds already applied.
func (s *Session) Completed() []solver.Round {
	out := make([]solver.Round, 0, len(s.history)-1)
	for _, r := range s.history[:len(s.history)-1] {
		out = append(out, r.Clone())
	}
	return out
}

// Pool returns the current candidate pool. Callers must not modify it.
func (s *Session) Pool() []string { return s.pool }

// Suggestion returns the current best guess, "" when the pool is empty.
func (s *Session) Suggestion() string { return s.suggestion }

// Shortlist returns the current top-K words.
func (s *Session) Shortlist() []string { return append([]string(nil), s.shortlist...) }

// UsedFallback reports whether the session switched to the secondary pool.
func (s *Session) UsedFallback() bool { return s.fallback }

// Solved reports whether every cell of the active round is green.
func (s *Session) Solved() bool {
	return s.history[len(s.history)-1].Solved()
}

// SetActive replaces the active round after validating it.
func (s *Session) SetActive(r solver.Round) error {
	if err := Validate(r); err != nil {
		return err
	}
	s.history[len(s.history)-1] = normalizeRound(r)
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// Advance applies the active round and opens the next one.
// On ErrNoCandidates the empty pool and the new round are still adopted.
func (s *Session) Advance() error {
	if s.Solved() {
		return ErrSolved
	}
	active := s.history[len(s.history)-1]

	next := solver.FilterRound(s.pool, active)
	if len(next) == 0 && !s.fallback {
		s.fallback = true
		next = solver.FilterAll(s.lists.Valid, s.history)
	}
	s.pool = next
	s.rank()
	s.history = append(s.history, s.seedRound(&active))
	s.UpdatedAt = time.Now().UTC()

	if len(s.pool) == 0 {
		return ErrNoCandidates
	}
	return nil
}

func (s *Session) rank() {
	ranked := solver.Rank(s.pool)
	s.suggestion = ""
	if len(ranked) > 0 {
		s.suggestion = ranked[0]
	}
	k := s.TopK
	if k > len(ranked) {
		k = len(ranked)
	}
	s.shortlist = ranked[:k]
}

// seedRound opens a round whose guess is the current suggestion and whose
// greens are carried forward from prev.
func (s *Session) seedRound(prev *solver.Round) solver.Round {
	r := solver.NewRound(solver.WordLen)
	for i := 0; i < solver.WordLen && i < len(s.suggestion); i++ {
		r.Guess[i] = string(s.suggestion[i])
	}
	if prev == nil {
		return r
	}
	for i := 0; i < solver.WordLen && i < len(prev.Correct); i++ {
		if c := prev.Correct[i]; c != "" {
			r.Correct[i] = c
			r.Guess[i] = c
		}
	}
	return r
}

// Validate guards the driver boundary: every array must have WordLen cells
// and every non-blank cell must be a single A–Z letter.
func Validate(r solver.Round) error {
	for _, f := range []struct {
		name  string
		cells []string
	}{{"guess", r.Guess}, {"correct", r.Correct}, {"present", r.Present}} {
		name, cells := f.name, f.cells
		if len(cells) != solver.WordLen {
			return fmt.Errorf("%w: %s has %d cells, want %d", ErrInvalidRound, name, len(cells), solver.WordLen)
		}
		for i, c := range cells {
			c = words.Normalize(c)
			if c == "" {
				continue
			}
			if len(c) != 1 || c[0] < 'A' || c[0] > 'Z' {
				return fmt.Errorf("%w: %s[%d]=%q is not a letter", ErrInvalidRound, name, i, cells[i])
			}
		}
	}
	return nil
}

// normalizeRound uppercases and trims every cell.
func normalizeRound(r solver.Round) solver.Round {
	out := solver.NewRound(solver.WordLen)
	for i := 0; i < solver.WordLen; i++ {
		out.Guess[i] = words.Normalize(r.Guess[i])
		out.Correct[i] = words.Normalize(r.Correct[i])
		out.Present[i] = words.Normalize(r.Present[i])
	}
	return out
}
