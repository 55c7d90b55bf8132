package daily

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-solver/internal/db"
)

func TestWordIndex_DeterministicPerDay(t *testing.T) {
	morning := time.Date(2026, 3, 1, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)

	a := WordIndex(morning, "salt", 2000)
	assert.Equal(t, a, WordIndex(evening, "salt", 2000))
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 2000)
	assert.Equal(t, 0, WordIndex(morning, "salt", 0))
}

func TestPuzzleFor(t *testing.T) {
	day := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	answers := []string{"CRANE", "SLATE", "TRACE"}

	p := PuzzleFor(day, "salt", answers)
	assert.Equal(t, "2026-03-01", p.Date)
	assert.Equal(t, answers[p.WordIndex], p.Answer)

	empty := PuzzleFor(day, "salt", nil)
	assert.Equal(t, "", empty.Answer)
}

func TestStore_InsertGetHistory(t *testing.T) {
	ctx := context.Background()
	sqlDB, err := db.OpenAndMigrate(filepath.Join(t.TempDir(), "solver.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	st := NewStore(sqlDB)

	_, err = st.Get(ctx, "2026-03-01")
	assert.ErrorIs(t, err, ErrNoRun)

	r1 := Run{Date: "2026-03-01", WordIndex: 4, Answer: "CRANE", Rounds: 3, Won: true}
	r2 := Run{Date: "2026-03-02", WordIndex: 9, Answer: "AAHED", Rounds: 5, Won: true, UsedFallback: true}
	require.NoError(t, st.Insert(ctx, r1))
	require.NoError(t, st.Insert(ctx, r2))
	require.NoError(t, st.Insert(ctx, Run{Date: "2026-03-01", Answer: "SLATE", Rounds: 6}))

	got, err := st.Get(ctx, "2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, r1, got)

	hist, err := st.History(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []Run{r2, r1}, hist)
}
