// internal/words/words.go
//
// Word list management for the solver.
//
// Responsibilities:
//   - Load the primary ("solutions") and secondary ("valid") lists from
//     caller-provided files or fall back to the embedded defaults.
//   - Normalise every word to uppercase, keeping only WordLen A–Z words.
//   - Answer lookups (IsValid, IsSolution), random picks, and nearest-word
//     suggestions for typo'd guesses.
//
// Load order (first match wins):
//   1. Sources.JSONFile: {"solutions": [...], "validWords": [...]}
//   2. Sources.SolutionsFile + Sources.ValidFile
//   3. Sources.ValidFile alone, used for both lists
//   4. embedded assets/solutions.txt + assets/valid.txt
//
// The secondary list always contains the solutions, ahead of the extras.

package words

import (
	"bufio"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/robalobadob/wordle-solver/assets"
	"github.com/robalobadob/wordle-solver/internal/solver"
)

// ErrEmpty is returned when the primary list ends up empty.
var ErrEmpty = errors.New("words: solutions list is empty")

// Sources names optional word list files.
type Sources struct {
	JSONFile      string
	SolutionsFile string
	ValidFile     string
}

// Lists is an immutable pair of primary and secondary word pools.
type Lists struct {
	Solutions []string // primary pool, puzzle answers
	Valid     []string // secondary pool, solutions ∪ accepted guesses

	solutionSet map[string]struct{}
	validSet    map[string]struct{}
}

// New builds Lists from raw word slices, normalising and de-duplicating.
func New(solutions, valid []string) (*Lists, error) {
	sol := normalize(solutions)
	if len(sol) == 0 {
		return nil, ErrEmpty
	}
	l := &Lists{
		Solutions:   sol,
		solutionSet: toSet(sol),
	}
	l.Valid = append([]string{}, sol...)
	l.validSet = toSet(sol)
	for _, w := range normalize(valid) {
		if _, ok := l.validSet[w]; ok {
			continue
		}
		l.validSet[w] = struct{}{}
		l.Valid = append(l.Valid, w)
	}
	return l, nil
}

// Load resolves src in the documented order.
func Load(src Sources) (*Lists, error) {
	switch {
	case src.JSONFile != "":
		return readJSONFile(src.JSONFile)

	case src.SolutionsFile != "" && src.ValidFile != "":
		sol, err := readWordFile(src.SolutionsFile)
		if err != nil {
			return nil, err
		}
		valid, err := readWordFile(src.ValidFile)
		if err != nil {
			return nil, err
		}
		return New(sol, valid)

	case src.ValidFile != "":
		valid, err := readWordFile(src.ValidFile)
		if err != nil {
			return nil, err
		}
		return New(valid, nil)

	default:
		return Embedded()
	}
}

var (
	embeddedOnce  sync.Once
	embeddedLists *Lists
	embeddedErr   error
)

// Embedded returns the lists compiled into the binary. Loaded once.
func Embedded() (*Lists, error) {
	embeddedOnce.Do(func() {
		sol, err := assets.SolutionsList()
		if err != nil {
			embeddedErr = err
			return
		}
		valid, err := assets.ValidList()
		if err != nil {
			embeddedErr = err
			return
		}
		embeddedLists, embeddedErr = New(sol, valid)
	})
	return embeddedLists, embeddedErr
}

// jsonLists mirrors the words.json layout used by the web solver.
type jsonLists struct {
	Solutions  []string `json:"solutions"`
	ValidWords []string `json:"validWords"`
}

func readJSONFile(path string) (*Lists, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var jl jsonLists
	if err := json.Unmarshal(b, &jl); err != nil {
		return nil, fmt.Errorf("words: parse %s: %w", path, err)
	}
	return New(jl.Solutions, jl.ValidWords)
}

// readWordFile loads one word per line; blank lines and # comments are skipped.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// normalize uppercases, drops invalid words, and removes duplicates
// while keeping first-seen order.
func normalize(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, w := range in {
		w = Normalize(w)
		if !IsWord(w) {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// Normalize trims and uppercases a word.
func Normalize(w string) string {
	return strings.ToUpper(strings.TrimSpace(w))
}

// IsWord reports whether w is exactly WordLen uppercase ASCII letters.
func IsWord(w string) bool {
	if len(w) != solver.WordLen {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// IsValid reports whether w is in the secondary list (case-insensitive).
func (l *Lists) IsValid(w string) bool {
	_, ok := l.validSet[Normalize(w)]
	return ok
}

// IsSolution reports whether w is in the primary list (case-insensitive).
func (l *Lists) IsSolution(w string) bool {
	_, ok := l.solutionSet[Normalize(w)]
	return ok
}

// RandomSolution returns a cryptographically random primary word.
func (l *Lists) RandomSolution() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.Solutions))))
	if err != nil {
		return l.Solutions[0]
	}
	return l.Solutions[n.Int64()]
}

// Closest returns the vocabulary word nearest to w by edit distance and the
// distance itself. Ties resolve to the earlier word in the secondary list.
func (l *Lists) Closest(w string) (string, int) {
	w = Normalize(w)
	if _, ok := l.validSet[w]; ok {
		return w, 0
	}
	best, bestDist := "", -1
	for _, cand := range l.Valid {
		d := levenshtein.ComputeDistance(w, cand)
		if bestDist < 0 || d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best, bestDist
}

// Stats returns counts of loaded words: (solutions, valid).
func (l *Lists) Stats() (solutions int, valid int) {
	return len(l.Solutions), len(l.Valid)
}
