// Package daily picks a deterministic puzzle per calendar day and records how
// the solver fared against it.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	dk := DateKey(date)
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(dk))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Puzzle is the day's hidden answer.
type Puzzle struct {
	Date      string `json:"date"`
	WordIndex int    `json:"wordIndex"`
	Answer    string `json:"answer"`
}

// PuzzleFor picks the puzzle for t from answers.
func PuzzleFor(t time.Time, salt string, answers []string) Puzzle {
	p := Puzzle{Date: DateKey(t)}
	if len(answers) == 0 {
		return p
	}
	p.WordIndex = WordIndex(t, salt, len(answers))
	p.Answer = answers[p.WordIndex]
	return p
}
