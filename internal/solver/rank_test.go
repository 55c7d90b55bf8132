package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScores_DistinctLettersCountOncePerWord(t *testing.T) {
	got := Scores([]string{"AAAAA", "ABCDE", "FGHIJ"})
	assert.Equal(t, []Scored{
		{Word: "ABCDE", Score: 6},
		{Word: "FGHIJ", Score: 5},
		{Word: "AAAAA", Score: 2},
	}, got)
}

func TestRank_TiesKeepPoolOrder(t *testing.T) {
	assert.Equal(t, []string{"BBBBB", "CCCCC", "DDDDD"}, Rank([]string{"BBBBB", "CCCCC", "DDDDD"}))
	assert.Equal(t, []string{"DDDDD", "CCCCC", "BBBBB"}, Rank([]string{"DDDDD", "CCCCC", "BBBBB"}))
}

func TestRank_Deterministic(t *testing.T) {
	first := Rank(samplePool)
	second := Rank(samplePool)
	assert.Equal(t, first, second)
	assert.ElementsMatch(t, samplePool, first)
}

func TestRank_DoesNotMutatePool(t *testing.T) {
	pool := append([]string(nil), samplePool...)
	_ = Rank(pool)
	assert.Equal(t, samplePool, pool)
}

func TestTopK_Bound(t *testing.T) {
	for _, k := range []int{0, 1, 3, len(samplePool), len(samplePool) + 10} {
		want := k
		if want > len(samplePool) {
			want = len(samplePool)
		}
		assert.Len(t, TopK(samplePool, k), want, "k=%d", k)
	}
	assert.Empty(t, TopK(samplePool, -1))
	assert.Empty(t, TopK(nil, 5))
}

func TestTopK_IsRankPrefix(t *testing.T) {
	assert.Equal(t, Rank(samplePool)[:3], TopK(samplePool, 3))
}

func TestBest(t *testing.T) {
	assert.Equal(t, "", Best(nil))
	assert.Equal(t, "", Best([]string{}))
	assert.Equal(t, "ABCDE", Best([]string{"AAAAA", "ABCDE", "FGHIJ"}))
	assert.Equal(t, Rank(samplePool)[0], Best(samplePool))
}
