package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_RecordAndRecent(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Record(ctx, Result{Mode: "play", Word: "bathe", Guesses: 3, Won: true, ElapsedMs: 42000, Date: "2024-06-01"}))
	require.NoError(t, s.Record(ctx, Result{Mode: "daily", Word: "crane", Guesses: 6, Won: false, ElapsedMs: 90000, Date: "2024-06-02"}))

	got, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// newest first
	assert.Equal(t, "crane", got[0].Word)
	assert.False(t, got[0].Won)
	assert.Equal(t, "bathe", got[1].Word)
	assert.True(t, got[1].Won)
	assert.Equal(t, int64(42000), got[1].ElapsedMs)
}

func TestStore_RecentLimit(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(ctx, Result{Mode: "play", Word: "bathe", Guesses: 1, Won: true, Date: "2024-06-01"}))
	}
	got, err := s.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestStore_AlreadyPlayedDaily(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	played, err := s.AlreadyPlayedDaily(ctx, "2024-06-01")
	require.NoError(t, err)
	assert.False(t, played)

	// a normal game on the same date does not count
	require.NoError(t, s.Record(ctx, Result{Mode: "play", Word: "bathe", Guesses: 2, Won: true, Date: "2024-06-01"}))
	played, err = s.AlreadyPlayedDaily(ctx, "2024-06-01")
	require.NoError(t, err)
	assert.False(t, played)

	require.NoError(t, s.Record(ctx, Result{Mode: "daily", Word: "crane", Guesses: 4, Won: true, Date: "2024-06-01"}))
	played, err = s.AlreadyPlayedDaily(ctx, "2024-06-01")
	require.NoError(t, err)
	assert.True(t, played)

	played, err = s.AlreadyPlayedDaily(ctx, "2024-06-02")
	require.NoError(t, err)
	assert.False(t, played)
}

func TestStore_Summarize(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	sum, err := s.Summarize(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{}, sum)

	outcomes := []bool{true, false, true, true} // streak of 2 at the tail
	for _, won := range outcomes {
		require.NoError(t, s.Record(ctx, Result{Mode: "play", Word: "bathe", Guesses: 3, Won: won, Date: "2024-06-01"}))
	}

	sum, err = s.Summarize(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Played)
	assert.Equal(t, 3, sum.Wins)
	assert.Equal(t, 2, sum.Streak)

	require.NoError(t, s.Record(ctx, Result{Mode: "play", Word: "crane", Guesses: 6, Won: false, Date: "2024-06-02"}))
	sum, err = s.Summarize(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Streak)
}
