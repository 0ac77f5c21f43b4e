// internal/cli/render.go
//
// Terminal rendering of guess feedback. Hits are bold green, presents
// bold yellow, misses unstyled, one space between tiles.

package cli

import (
	"fmt"
	"strings"

	"wordlecli/internal/game"
)

const (
	hitFormat     = "\x1b[32;1m%c\x1b[0m"
	presentFormat = "\x1b[33;1m%c\x1b[0m"
	plainFormat   = "%c"
)

// RenderFeedback formats one guess as colored tiles.
// With color disabled, presents are uppercased and misses lowercased so
// the feedback survives pipes and dumb terminals; hits get a trailing
// '!' marker.
func RenderFeedback(guess string, fb game.Feedback, color bool) string {
	var b strings.Builder
	for i, r := range []rune(guess) {
		if i > 0 {
			b.WriteByte(' ')
		}
		var m game.Mark
		if i < len(fb) {
			m = fb[i]
		}
		if color {
			switch m {
			case game.MarkHit:
				fmt.Fprintf(&b, hitFormat, r)
			case game.MarkPresent:
				fmt.Fprintf(&b, presentFormat, r)
			default:
				fmt.Fprintf(&b, plainFormat, r)
			}
			continue
		}
		switch m {
		case game.MarkHit:
			fmt.Fprintf(&b, "%c!", asciiUpper(r))
		case game.MarkPresent:
			fmt.Fprintf(&b, "%c", asciiUpper(r))
		default:
			fmt.Fprintf(&b, "%c", r)
		}
	}
	return b.String()
}

// Banner returns the opening row of blanks, e.g. "_ _ _ _ _".
func Banner() string {
	tiles := make([]string, game.WordLength)
	for i := range tiles {
		tiles[i] = "_"
	}
	return strings.Join(tiles, " ")
}

func asciiUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
