// internal/cli/loop.go
//
// Interactive driving loop: reads guesses line by line, feeds them to
// the session, prints the colored feedback, and stops on win, loss, or
// end of input. All user-facing messaging lives here; the engine only
// returns typed errors.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"wordlecli/internal/game"
)

// Loop drives one interactive game over the given reader/writer pair.
type Loop struct {
	In    io.Reader
	Out   io.Writer
	Color bool
}

// Run plays the session to completion. Returns an error only when
// reading input fails; a lost game is a normal outcome, reported on Out
// together with the revealed word.
func (l *Loop) Run(sess *game.Session) error {
	fmt.Fprintln(l.Out, Banner())

	sc := bufio.NewScanner(l.In)
	for !sess.Finished && sc.Scan() {
		fb, state, err := sess.ApplyGuess(sc.Text())
		if err != nil {
			l.printRejection(err)
			continue
		}

		if state == "won" {
			fmt.Fprintf(l.Out, "You won! You needed %d attempts\n", len(sess.Guesses))
			return nil
		}

		fmt.Fprintln(l.Out, RenderFeedback(lastGuess(sess), fb, l.Color))
		if state == "lost" {
			fmt.Fprintf(l.Out, "You lost :( The word was '%s'\n", sess.Secret().Reveal())
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read guess: %w", err)
	}
	if !sess.Finished {
		// input ran out mid-game; disclose the word like a loss
		fmt.Fprintf(l.Out, "The word was '%s'\n", sess.Secret().Reveal())
	}
	return nil
}

// printRejection maps a recoverable validation error to its prompt.
func (l *Loop) printRejection(err error) {
	var lenErr *game.InvalidWordLengthError
	switch {
	case errors.As(err, &lenErr):
		fmt.Fprintf(l.Out, "You'll need %d characters to make it work!\n", game.WordLength)
	case errors.Is(err, game.ErrNotAlphabetic):
		fmt.Fprintln(l.Out, "Letters a-z only, please.")
	case errors.Is(err, game.ErrNotAllowed):
		fmt.Fprintln(l.Out, "Not in the word list, try another.")
	default:
		fmt.Fprintf(l.Out, "%v\n", err)
	}
}

func lastGuess(sess *game.Session) string {
	return sess.Guesses[len(sess.Guesses)-1]
}
