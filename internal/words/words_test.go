package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestNew_NormalisesAndMergesSolutionsIntoValid(t *testing.T) {
	l, err := New(
		[]string{" crane", "SLATE", "crane", "toolong", "ab1de", ""},
		[]string{"aahed", "slate", "zz"},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"CRANE", "SLATE"}, l.Solutions)
	assert.Equal(t, []string{"CRANE", "SLATE", "AAHED"}, l.Valid)
	assert.True(t, l.IsSolution("crane"))
	assert.False(t, l.IsSolution("aahed"))
	assert.True(t, l.IsValid("Aahed"))

	s, v := l.Stats()
	assert.Equal(t, 2, s)
	assert.Equal(t, 3, v)
}

func TestNew_EmptySolutions(t *testing.T) {
	_, err := New([]string{"nope"}, []string{"crane"})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestLoad_JSONFile(t *testing.T) {
	p := writeFile(t, "words.json", `{"solutions":["crane","slate"],"validWords":["aahed"]}`)
	l, err := Load(Sources{JSONFile: p})
	require.NoError(t, err)
	assert.Equal(t, []string{"CRANE", "SLATE"}, l.Solutions)
	assert.Equal(t, []string{"CRANE", "SLATE", "AAHED"}, l.Valid)
}

func TestLoad_TextFiles(t *testing.T) {
	sol := writeFile(t, "solutions.txt", "# answers\ncrane\n\nslate\n")
	valid := writeFile(t, "valid.txt", "aahed\naalii\n")

	l, err := Load(Sources{SolutionsFile: sol, ValidFile: valid})
	require.NoError(t, err)
	assert.Equal(t, []string{"CRANE", "SLATE"}, l.Solutions)
	assert.Equal(t, []string{"CRANE", "SLATE", "AAHED", "AALII"}, l.Valid)

	l, err = Load(Sources{ValidFile: valid})
	require.NoError(t, err)
	assert.Equal(t, []string{"AAHED", "AALII"}, l.Solutions)
	assert.Equal(t, l.Solutions, l.Valid)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(Sources{JSONFile: filepath.Join(t.TempDir(), "missing.json")})
	assert.Error(t, err)
}

func TestEmbedded(t *testing.T) {
	l, err := Load(Sources{})
	require.NoError(t, err)
	s, v := l.Stats()
	assert.Greater(t, s, 1000)
	assert.Greater(t, v, s)
	assert.True(t, l.IsSolution("CRANE"))
	for _, w := range l.Valid {
		require.True(t, IsWord(w), w)
	}
	assert.True(t, l.IsSolution(l.RandomSolution()))
}

func TestClosest(t *testing.T) {
	l, err := New([]string{"CRANE", "SLATE", "TRACE"}, nil)
	require.NoError(t, err)

	w, d := l.Closest("crane")
	assert.Equal(t, "CRANE", w)
	assert.Equal(t, 0, d)

	w, d = l.Closest("CRAME")
	assert.Equal(t, "CRANE", w)
	assert.Equal(t, 1, d)

	w, d = l.Closest("SLATS")
	assert.Equal(t, "SLATE", w)
	assert.Equal(t, 1, d)
}
