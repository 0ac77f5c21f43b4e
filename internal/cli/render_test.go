package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"wordlecli/internal/game"
)

func TestRenderFeedback_NoColor(t *testing.T) {
	fb := game.Feedback{game.MarkHit, game.MarkMiss, game.MarkPresent, game.MarkMiss, game.MarkMiss}
	got := RenderFeedback("braid", fb, false)
	assert.Equal(t, "B! r A i d", got)
}

func TestRenderFeedback_Color(t *testing.T) {
	fb := game.Feedback{game.MarkHit, game.MarkMiss, game.MarkPresent, game.MarkMiss, game.MarkMiss}
	got := RenderFeedback("braid", fb, true)

	assert.Contains(t, got, "\x1b[32;1mb\x1b[0m") // hit tile
	assert.Contains(t, got, "\x1b[33;1ma\x1b[0m") // present tile
	assert.NotContains(t, got, "\x1b[32;1mr")     // miss stays unstyled

	// all five letters survive, in order
	stripped := got
	for _, esc := range []string{"\x1b[32;1m", "\x1b[33;1m", "\x1b[0m"} {
		stripped = strings.ReplaceAll(stripped, esc, "")
	}
	assert.Equal(t, "b r a i d", stripped)
}

func TestBanner(t *testing.T) {
	assert.Equal(t, "_ _ _ _ _", Banner())
}
