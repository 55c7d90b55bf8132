package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePattern(t *testing.T) {
	r, err := ParsePattern("crane", ".G y-")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "R", "A", "N", "E"}, r.Guess)
	assert.Equal(t, []string{"", "R", "", "", ""}, r.Correct)
	assert.Equal(t, []string{"", "", "", "N", ""}, r.Present)
	assert.Equal(t, "CRANE", r.Word())

	_, err = ParsePattern("CRANE", "gg")
	assert.ErrorIs(t, err, ErrBadPattern)
}

func TestRound_Absent(t *testing.T) {
	r, err := ParsePattern("LEVEL", ".g.y.")
	require.NoError(t, err)
	got := r.Absent()
	assert.Equal(t, map[byte]struct{}{'L': {}, 'V': {}}, got)
}

func TestRound_AbsentSkipsBlankGuessCells(t *testing.T) {
	r := NewRound(WordLen)
	assert.Empty(t, r.Absent())
}

func TestRound_Solved(t *testing.T) {
	r, err := ParsePattern("CRANE", "ggggg")
	require.NoError(t, err)
	assert.True(t, r.Solved())

	r.Correct[2] = ""
	assert.False(t, r.Solved())
	assert.False(t, Round{}.Solved())
}

func TestRound_CloneDoesNotAlias(t *testing.T) {
	r, err := ParsePattern("CRANE", "g....")
	require.NoError(t, err)
	c := r.Clone()
	c.Correct[0] = ""
	c.Guess[1] = "X"
	assert.Equal(t, "C", r.Correct[0])
	assert.Equal(t, "R", r.Guess[1])
}
