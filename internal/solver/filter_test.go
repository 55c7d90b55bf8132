package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cells(s string) []string {
	out := make([]string, len(s))
	for i := range s {
		if s[i] != '.' {
			out[i] = string(s[i])
		}
	}
	return out
}

var samplePool = []string{"ABIDE", "AWOKE", "CRANE", "SLATE", "OPERA", "TRACE", "BERRY", "HELLO", "DEBUT"}

func TestFilter_NoConstraintsKeepsPool(t *testing.T) {
	got := Filter(samplePool, cells("....."), cells("....."), cells("....."))
	assert.Equal(t, samplePool, got)

	got = Filter(samplePool, nil, nil, nil)
	assert.Equal(t, samplePool, got)
}

func TestFilter_DoesNotMutatePool(t *testing.T) {
	pool := append([]string(nil), samplePool...)
	_ = Filter(pool, cells("SLATE"), cells("....E"), cells("..A.."))
	assert.Equal(t, samplePool, pool)
}

func TestFilter_DiscriminatingRound(t *testing.T) {
	got := Filter(samplePool, cells("SLATE"), cells("....E"), cells("..A.."))
	assert.Equal(t, []string{"ABIDE", "AWOKE"}, got)
}

func TestFilter_GreyExcludesEveryUnmarkedGuessLetter(t *testing.T) {
	// C and N are unmarked; A at index 2 is yellow, so TRACE fails twice over.
	got := Filter([]string{"CRANE", "SLATE", "TRACE"}, cells("CRANE"), cells(".R..E"), cells("..A.."))
	assert.Empty(t, got)
}

func TestFilter_RepeatedLetterMarkedElsewhereIsNotGrey(t *testing.T) {
	// The second E in LEVEL is unmarked, but E is green at index 1.
	got := Filter(samplePool, cells("LEVEL"), cells(".E..."), cells("....."))
	assert.Equal(t, []string{"BERRY", "DEBUT"}, got)
}

func TestFilter_GreenOverridesYellowAtSameIndex(t *testing.T) {
	got := Filter([]string{"CRANE", "BRINE", "STORE"}, cells(".R..."), cells(".R..."), cells(".R..."))
	assert.Equal(t, []string{"CRANE", "BRINE"}, got)
}

func TestFilter_CaseInsensitiveCells(t *testing.T) {
	got := Filter(samplePool, cells("slate"), cells("....e"), cells("..a.."))
	assert.Equal(t, []string{"ABIDE", "AWOKE"}, got)
}

func TestFilter_RaggedCellsDoNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = Filter(samplePool, cells("SL"), cells("....E.."), cells("."))
	})
}

func TestFilter_Properties(t *testing.T) {
	rounds := []struct{ guess, correct, present string }{
		{"SLATE", "....E", "..A.."},
		{"CRANE", ".R...", "....."},
		{"HELLO", ".....", "O...."},
		{"BERRY", "BE...", "..R.."},
		{"DEBUT", ".....", "....."},
	}
	for _, rc := range rounds {
		g, c, p := cells(rc.guess), cells(rc.correct), cells(rc.present)
		got := Filter(samplePool, g, c, p)
		require.LessOrEqual(t, len(got), len(samplePool), rc.guess)

		absent := Round{Guess: g, Correct: c, Present: p}.Absent()
		for _, w := range got {
			for i, l := range c {
				if l != "" {
					assert.Equal(t, l, string(w[i]), "green %s in %s", l, w)
				}
			}
			for i, l := range p {
				if l != "" && c[i] == "" {
					assert.Contains(t, w, l, "yellow %s in %s", l, w)
					assert.NotEqual(t, l, string(w[i]), "yellow %s at %d in %s", l, i, w)
				}
			}
			for a := range absent {
				assert.False(t, strings.IndexByte(w, a) >= 0, "grey %c in %s", a, w)
			}
		}
	}
}

func TestFilterAll_AppliesRoundsInOrder(t *testing.T) {
	r1, err := ParsePattern("SLATE", "..y.g")
	require.NoError(t, err)
	r2, err := ParsePattern("AWOKE", "g...g")
	require.NoError(t, err)

	pool := []string{"AWOKE", "ABIDE", "AMIDE", "OPERA"}
	assert.Equal(t, []string{"AWOKE", "ABIDE", "AMIDE"}, FilterAll(pool, []Round{r1}))
	assert.Equal(t, []string{"ABIDE", "AMIDE"}, FilterAll(pool, []Round{r1, r2}))
	assert.Equal(t, pool, FilterAll(pool, nil))
}
