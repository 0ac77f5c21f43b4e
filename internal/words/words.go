// internal/words/words.go
//
// Word list management and the word-selection capability.
//
// Responsibilities:
//   - Load answer and allowed guess lists from environment-provided files
//     or fall back to the embedded defaults in assets.
//   - Maintain sets for quick lookups (answers only, answers∪guesses).
//   - Supply the Source interface the game consumes, plus RandomAnswer,
//     IsAllowed, IsAnswer, and Stats.
//
// Word lists:
//   - "answers": canonical solutions (exactly five lowercase letters).
//   - "allowed": valid guesses (always includes answers).
//
// Initialization behavior (Init):
//   1. If WORDLE_ANSWERS_FILE and WORDLE_ALLOWED_FILE are both set,
//      load answers from the first and allowed guesses from the second.
//   2. If only WORDLE_ALLOWED_FILE is set, use that file for both.
//   3. Otherwise fall back to the embedded assets lists.
//
// Constraints:
//   - Words must be game.WordLength alphabetic letters (a-z).
//   - Lists are normalized to lowercase.
//   - Initialization runs once (sync.Once).

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"math/big"
	"os"
	"strings"
	"sync"

	"wordlecli/assets"
	"wordlecli/internal/game"
)

// Source yields secret words for new games, polymorphic over the
// selection strategy. Contract: the returned string is exactly
// game.WordLength letters, or secret construction fails downstream.
type Source interface {
	Word() (string, error)
}

var (
	initOnce   sync.Once
	answers    []string            // canonical answers
	allowedSet map[string]struct{} // answers ∪ guesses
	answersSet map[string]struct{} // answers only
	initialErr error
)

// Init loads word lists exactly once.
// Returns an error if the answers list ends up empty.
func Init() error {
	initOnce.Do(func() {
		var ansList, allowList []string

		answersPath := os.Getenv("WORDLE_ANSWERS_FILE")
		allowedPath := os.Getenv("WORDLE_ALLOWED_FILE")

		switch {
		// Case 1: both lists provided
		case answersPath != "" && allowedPath != "":
			var err error
			ansList, err = ReadWordFile(answersPath)
			if err != nil {
				initialErr = err
				return
			}
			allowList, err = ReadWordFile(allowedPath)
			if err != nil {
				initialErr = err
				return
			}

		// Case 2: only allowed file provided → use for both
		case answersPath == "" && allowedPath != "":
			var err error
			allowList, err = ReadWordFile(allowedPath)
			if err != nil {
				initialErr = err
				return
			}
			ansList = allowList

		// Case 3: fallback to embedded defaults
		default:
			var err error
			ansList, err = assets.AnswersList()
			if err != nil {
				initialErr = err
				return
			}
			allowList, err = assets.AllowedList()
			if err != nil {
				initialErr = err
				return
			}
		}

		ansList = filterValid(ansList)
		allowList = filterValid(allowList)

		answers = ansList
		answersSet = toSet(ansList)

		// All answers are also allowed guesses.
		allowedSet = toSet(ansList)
		for _, w := range allowList {
			allowedSet[w] = struct{}{}
		}

		if len(answers) == 0 {
			initialErr = errors.New("words: answers list is empty")
		}
	})
	return initialErr
}

// ReadWordFile loads one word per line from a file, lowercases, trims,
// and keeps only valid words.
func ReadWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if Valid(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// Valid reports whether w is exactly game.WordLength lowercase ASCII letters.
func Valid(w string) bool {
	if len(w) != game.WordLength {
		return false
	}
	for _, r := range w {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func filterValid(list []string) []string {
	out := list[:0]
	for _, w := range list {
		if Valid(w) {
			out = append(out, w)
		}
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// RandomAnswer returns a cryptographically random answer from the
// answers list. Falls back to "crane" if lists are not loaded.
func RandomAnswer() string {
	if len(answers) == 0 {
		return "crane"
	}
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(answers))))
	return answers[nBig.Int64()]
}

// Answers returns the canonical answer list (all lowercase).
// The daily mode indexes into this list deterministically.
func Answers() []string {
	return answers
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func IsAllowed(w string) bool {
	_, ok := allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func IsAnswer(w string) bool {
	_, ok := answersSet[strings.ToLower(w)]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func Stats() (answersCount int, allowedCount int) {
	return len(answers), len(allowedSet)
}

// Static picks a uniformly random answer from the loaded answer list.
// It is the default Source for interactive play.
type Static struct{}

func (Static) Word() (string, error) {
	if err := Init(); err != nil {
		return "", err
	}
	return RandomAnswer(), nil
}

// Fixed always yields the same word. Used by the serve mode when a
// request pins an answer, and convenient in tests.
type Fixed string

func (f Fixed) Word() (string, error) { return string(f), nil }
