// internal/game/evaluate.go
//
// Guess scoring. Evaluate is a pure function: no mutation of the
// secret, and the same (secret, guess) pair always yields the same
// Feedback.

package game

// Evaluate scores guess against secret position by position.
//
// An exact string match short-circuits to an all-hit Feedback; the
// general scan would produce the same result. Otherwise each guess
// letter is marked hit when the secret has it at the same position,
// present when the secret has it anywhere else, and miss when the
// secret does not contain it.
//
// Present marks are not capped by letter multiplicity: if the secret
// has one 'a' and the guess has two misplaced 'a's, both positions are
// marked present. This diverges from the occurrence-counted convention
// and is pinned as-is in the tests.
func Evaluate(secret *Secret, guess string) Feedback {
	if guess == secret.text {
		fb := make(Feedback, WordLength)
		for i := range fb {
			fb[i] = MarkHit
		}
		return fb
	}

	runes := []rune(guess)
	fb := make(Feedback, len(runes))
	for i, r := range runes {
		switch {
		case secret.IsAtPosition(r, i):
			fb[i] = MarkHit
		case secret.contains(r):
			fb[i] = MarkPresent
		default:
			fb[i] = MarkMiss
		}
	}
	return fb
}
