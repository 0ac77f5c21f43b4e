// internal/game/types.go
//
// Core type definitions for the guess-evaluation engine.
// Defines:
//   - Mark: per-letter result of a guess (hit/present/miss).
//   - Feedback: ordered per-position marks for one guess.

package game

// WordLength is the fixed length, in letters, of secrets and guesses.
const WordLength = 5

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the secret but in a different position.
//   - "miss":    letter does not exist in the secret at all.
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// Feedback is the ordered per-position result of scoring one guess,
// in guess order. Built fresh for every evaluation, never mutated after.
type Feedback []Mark

// FullMatch reports whether every position scored a hit.
func (f Feedback) FullMatch() bool {
	for _, m := range f {
		if m != MarkHit {
			return false
		}
	}
	return true
}
