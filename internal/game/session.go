// internal/game/session.go
//
// Session state machine for a single game.
// Responsibilities:
//   - Validate and apply guesses (length, alphabetic, optional word list).
//   - Track state transitions: playing → won/lost.
//   - Enforce the attempt budget (a configured value; the evaluator
//     itself is attempt-agnostic).
//
// Scoring is delegated to Evaluate; the session only owns the mutable
// bookkeeping around it.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
)

// DefaultAttempts is the classic six-guess budget.
const DefaultAttempts = 6

var (
	// ErrGameFinished rejects guesses after the session reached won/lost.
	ErrGameFinished = errors.New("game finished")
	// ErrNotAlphabetic rejects guesses with characters outside a-z.
	ErrNotAlphabetic = errors.New("guess must be letters a-z")
	// ErrNotAllowed rejects guesses absent from the word list.
	ErrNotAllowed = errors.New("not in word list")
)

// Session holds the state of a single game: the secret, the guesses
// made so far, and whether the game is over.
type Session struct {
	ID       string   // unique session identifier (random hex string)
	Attempts int      // maximum number of guesses allowed
	Guesses  []string // guesses accepted so far (lowercased)
	Finished bool     // true once the game is over (won or lost)
	Won      bool     // true if the game finished with a win

	secret  *Secret
	allowed func(string) bool // nil disables the word-list check
}

// NewSession builds a session around a secret word.
// attempts <= 0 falls back to DefaultAttempts. allowed may be nil to
// skip dictionary membership checks.
func NewSession(secret *Secret, attempts int, allowed func(string) bool) *Session {
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	return &Session{
		ID:       randomID(),
		Attempts: attempts,
		Guesses:  []string{},
		secret:   secret,
		allowed:  allowed,
	}
}

// Secret exposes the underlying secret word, for the reveal-on-loss
// disclosure.
func (s *Session) Secret() *Secret { return s.secret }

// ApplyGuess validates and scores one guess, mutating the session.
// Returns: the per-letter feedback, the new state string
// ("playing"/"won"/"lost"), or an error.
//
// Validation failures are recoverable: the session is unchanged, no
// attempt is consumed, and the caller should ask for another guess.
func (s *Session) ApplyGuess(guess string) (Feedback, string, error) {
	if s.Finished {
		return nil, s.State(), ErrGameFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if n := len([]rune(guess)); n != WordLength {
		return nil, s.State(), &InvalidWordLengthError{Length: n}
	}
	if !isAlpha(guess) {
		return nil, s.State(), ErrNotAlphabetic
	}
	if s.allowed != nil && !s.allowed(guess) {
		return nil, s.State(), ErrNotAllowed
	}

	fb := Evaluate(s.secret, guess)
	s.Guesses = append(s.Guesses, guess)

	if fb.FullMatch() {
		s.Finished, s.Won = true, true
	} else if len(s.Guesses) >= s.Attempts {
		s.Finished = true
	}
	return fb, s.State(), nil
}

// State reports a coarse string representation of the session state.
func (s *Session) State() string {
	if s.Finished {
		if s.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// isAlpha checks that a string consists only of lowercase a-z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
