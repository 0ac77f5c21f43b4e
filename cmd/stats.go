// cmd/stats.go
//
// Prints aggregates and recent games from the local history.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordlecli/internal/history"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "show your game history",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	st, err := history.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer st.Close()

	sum, err := st.Summarize(cmd.Context())
	if err != nil {
		return fmt.Errorf("summarize history: %w", err)
	}
	fmt.Printf("Played: %d  Wins: %d  Streak: %d\n", sum.Played, sum.Wins, sum.Streak)

	recent, err := st.Recent(cmd.Context(), 10)
	if err != nil {
		return fmt.Errorf("load recent games: %w", err)
	}
	if len(recent) == 0 {
		return nil
	}

	fmt.Println("\nRecent games:")
	for _, r := range recent {
		outcome := "lost"
		if r.Won {
			outcome = "won"
		}
		fmt.Printf("  %s  %-5s  %s in %d guesses (%.1fs)\n",
			r.Date, r.Mode, outcome, r.Guesses, float64(r.ElapsedMs)/1000)
	}
	return nil
}
