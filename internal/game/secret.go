// internal/game/secret.go
//
// Secret word representation.
// A Secret stores the chosen word verbatim plus a per-letter position
// index (letter → set of positions) so the evaluator can answer both
// "is this letter at this position" and "is this letter anywhere" in
// O(1) without rescanning the text.

package game

import "fmt"

// InvalidWordLengthError reports a word whose letter count is not
// WordLength. It is recoverable: the caller should reject the input
// and ask for another word, never abort.
type InvalidWordLengthError struct {
	Length int
}

func (e *InvalidWordLengthError) Error() string {
	return fmt.Sprintf("word must be exactly %d letters, got %d", WordLength, e.Length)
}

// Secret is the immutable secret word for one game session.
// Constructed once at game start and read-only afterwards.
type Secret struct {
	text  string
	index map[rune]map[int]struct{} // letter → positions it occupies
}

// NewSecret builds a Secret from raw.
// Returns *InvalidWordLengthError if raw is not exactly WordLength runes.
// Pure function of raw; no side effects beyond allocation.
func NewSecret(raw string) (*Secret, error) {
	runes := []rune(raw)
	if len(runes) != WordLength {
		return nil, &InvalidWordLengthError{Length: len(runes)}
	}
	idx := make(map[rune]map[int]struct{}, WordLength)
	for i, r := range runes {
		set, ok := idx[r]
		if !ok {
			set = make(map[int]struct{}, 1)
			idx[r] = set
		}
		set[i] = struct{}{}
	}
	return &Secret{text: raw, index: idx}, nil
}

// IsAtPosition reports whether r occurs in the secret at pos.
func (s *Secret) IsAtPosition(r rune, pos int) bool {
	set, ok := s.index[r]
	if !ok {
		return false
	}
	_, ok = set[pos]
	return ok
}

// contains reports whether r occurs anywhere in the secret.
func (s *Secret) contains(r rune) bool {
	_, ok := s.index[r]
	return ok
}

// Reveal returns the secret word. Used for the end-of-game disclosure
// message only, never during scoring.
func (s *Secret) Reveal() string { return s.text }
