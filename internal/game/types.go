// internal/game/types.go
//
// Core type definitions for the puzzle simulator.
// Defines:
//   - Mark: per-letter result of a guess (hit/present/miss).
//   - Game: state for a puzzle with a known answer, used to generate feedback
//     for the solver.

package game

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the answer but in a different position.
//   - "miss":    letter does not exist in the answer at all.
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// Game holds the state of a single puzzle.
type Game struct {
	ID       string   // Unique game identifier (random hex string).
	Answer   string   // The solution word (always uppercase).
	Rows     int      // Maximum number of guesses allowed (typically 6).
	Cols     int      // Number of letters per word (typically 5).
	Guesses  []string // List of guesses made so far (uppercased).
	Finished bool     // True once the game is over (won or lost).
	Won      bool     // True if the game was finished with a win.

	allowed func(string) bool
}
