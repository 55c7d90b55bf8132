package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/session"
	"github.com/robalobadob/wordle-solver/internal/solver"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseRoundFlag(t *testing.T) {
	r, err := parseRoundFlag("crane:..Y.g")
	require.NoError(t, err)
	assert.Equal(t, "CRANE", r.Word())
	assert.Equal(t, []string{"", "", "A", "", ""}, r.Present)
	assert.Equal(t, []string{"", "", "", "", "E"}, r.Correct)

	for _, bad := range []string{"CRANE", "CRANE:..", "CR4NE:.....", "CRANES:......"} {
		_, err := parseRoundFlag(bad)
		assert.Error(t, err, bad)
	}
}

func TestSuggest_JSON(t *testing.T) {
	out, err := execute(t, "suggest", "--round", "CRANE:..y.g", "--top", "3", "--json")
	require.NoError(t, err)

	var snap session.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap), out)
	require.Len(t, snap.Rounds, 1)
	assert.Equal(t, "CRANE", snap.Rounds[0].Word())
	assert.Positive(t, snap.Remaining)
	assert.LessOrEqual(t, len(snap.Shortlist), 3)
	require.NotEmpty(t, snap.Shortlist)
	assert.Equal(t, snap.Suggestion, snap.Shortlist[0])

	// Every shortlisted word satisfies the round it came from.
	assert.Equal(t, snap.Shortlist, solver.FilterRound(snap.Shortlist, snap.Rounds[0]))
}

func TestSuggest_Rendered(t *testing.T) {
	out, err := execute(t, "suggest", "--round", "CRANE:.....")
	require.NoError(t, err)
	assert.Contains(t, out, "best guess")
}

func TestSuggest_BadRound(t *testing.T) {
	_, err := execute(t, "suggest", "--round", "CRANE")
	assert.ErrorContains(t, err, "WORD:PATTERN")
}

func TestAutoplay_JSON(t *testing.T) {
	out, err := execute(t, "autoplay", "--answer", "crane", "--json")
	require.NoError(t, err)

	var tr game.Trace
	require.NoError(t, json.Unmarshal([]byte(out), &tr), out)
	assert.Equal(t, "CRANE", tr.Answer)
	require.NotEmpty(t, tr.Steps)
	assert.LessOrEqual(t, len(tr.Steps), 6)
	if tr.Won {
		assert.Equal(t, "CRANE", tr.Steps[len(tr.Steps)-1].Guess)
	}
}

func TestAutoplay_UnknownAnswer(t *testing.T) {
	_, err := execute(t, "autoplay", "--answer", "qzxjv")
	assert.ErrorContains(t, err, "not in the word list")
}
