package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	cases := []struct {
		w  string
		ok bool
	}{
		{"crane", true},
		{"bathe", true},
		{"", false},
		{"bank", false},
		{"bathes", false},
		{"bat1e", false},
		{"BATHE", false},
		{"bath ", false},
	}
	for _, tc := range cases {
		if got := Valid(tc.w); got != tc.ok {
			t.Fatalf("Valid(%q)=%v, want %v", tc.w, got, tc.ok)
		}
	}
}

func TestReadWordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "CRANE\n  bathe \nfour\ntoolong\nbra1d\n\nslate\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := ReadWordFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "bathe", "slate"}, got)
}

func TestReadWordFile_Missing(t *testing.T) {
	_, err := ReadWordFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestInit_EmbeddedDefaults(t *testing.T) {
	require.NoError(t, Init())

	ansCount, allowCount := Stats()
	assert.Greater(t, ansCount, 0)
	// allowed is a superset of answers
	assert.GreaterOrEqual(t, allowCount, ansCount)

	for _, w := range Answers() {
		require.True(t, Valid(w), "answer %q", w)
		assert.True(t, IsAllowed(w), "answer %q must be allowed", w)
		assert.True(t, IsAnswer(w), "answer %q", w)
	}

	assert.True(t, IsAllowed("braid"))
	assert.False(t, IsAnswer("braid"))
	assert.False(t, IsAllowed("zzzzz"))
}

func TestStaticSource(t *testing.T) {
	require.NoError(t, Init())
	for i := 0; i < 20; i++ {
		w, err := Static{}.Word()
		require.NoError(t, err)
		assert.True(t, IsAnswer(w), "Static yielded non-answer %q", w)
	}
}

func TestFixedSource(t *testing.T) {
	w, err := Fixed("bathe").Word()
	require.NoError(t, err)
	assert.Equal(t, "bathe", w)
}
