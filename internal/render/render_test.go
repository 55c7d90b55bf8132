package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-solver/internal/session"
	"github.com/robalobadob/wordle-solver/internal/solver"
)

func TestRound_ShowsLetters(t *testing.T) {
	r, err := solver.ParsePattern("CRANE", "g.y..")
	require.NoError(t, err)
	out := Theme{}.Round(r)
	for _, l := range []string{"C", "R", "A", "N", "E"} {
		assert.Contains(t, out, l)
	}
}

func TestSnapshot_States(t *testing.T) {
	th := Theme{Dark: true}

	out := th.Snapshot(session.Snapshot{Suggestion: "TRACE", Shortlist: []string{"TRACE", "CRANE"}, Remaining: 2, UsedFallback: true})
	assert.Contains(t, out, "best guess")
	assert.Contains(t, out, "2 candidates, extended word list")

	assert.Contains(t, th.Snapshot(session.Snapshot{Solved: true}), "solved")
	assert.Contains(t, th.Snapshot(session.Snapshot{Exhausted: true}), "no candidates remain")
}
