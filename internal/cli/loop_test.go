package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordlecli/internal/game"
)

func newLoopSession(t *testing.T, word string, attempts int) (*Loop, *game.Session, *bytes.Buffer) {
	t.Helper()
	secret, err := game.NewSecret(word)
	require.NoError(t, err)
	sess := game.NewSession(secret, attempts, nil)
	out := &bytes.Buffer{}
	return &Loop{Out: out}, sess, out
}

func TestLoop_WinReportsAttemptCount(t *testing.T) {
	l, sess, out := newLoopSession(t, "bathe", 6)
	l.In = strings.NewReader("braid\nbathe\n")

	require.NoError(t, l.Run(sess))

	assert.Equal(t, "won", sess.State())
	assert.Contains(t, out.String(), "You won! You needed 2 attempts")
	assert.Contains(t, out.String(), Banner())
}

func TestLoop_LossRevealsWord(t *testing.T) {
	l, sess, out := newLoopSession(t, "bathe", 2)
	l.In = strings.NewReader("crane\ncrane\n")

	require.NoError(t, l.Run(sess))

	assert.Equal(t, "lost", sess.State())
	assert.Contains(t, out.String(), "You lost :( The word was 'bathe'")
}

func TestLoop_ShortGuessPromptsAgainWithoutSpendingAttempt(t *testing.T) {
	l, sess, out := newLoopSession(t, "bathe", 2)
	l.In = strings.NewReader("bat\nbat1e\nzz zz\nbathe\n")

	require.NoError(t, l.Run(sess))

	assert.Equal(t, "won", sess.State())
	assert.Len(t, sess.Guesses, 1)
	assert.Contains(t, out.String(), "You'll need 5 characters to make it work!")
	assert.Contains(t, out.String(), "Letters a-z only, please.")
}

func TestLoop_InputExhaustedDisclosesWord(t *testing.T) {
	l, sess, out := newLoopSession(t, "bathe", 6)
	l.In = strings.NewReader("crane\n")

	require.NoError(t, l.Run(sess))

	assert.Equal(t, "playing", sess.State())
	assert.Contains(t, out.String(), "The word was 'bathe'")
}

func TestLoop_FeedbackLinePrinted(t *testing.T) {
	l, sess, out := newLoopSession(t, "bathe", 6)
	l.In = strings.NewReader("braid\n")

	require.NoError(t, l.Run(sess))
	assert.Contains(t, out.String(), "B! r A i d")
}
