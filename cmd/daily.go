// cmd/daily.go
//
// Daily mode: everyone with the same salt gets the same word each UTC
// day, and the local history allows one recorded result per date.

package cmd

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"wordlecli/internal/daily"
	"wordlecli/internal/game"
	"wordlecli/internal/history"
	"wordlecli/internal/words"
)

func init() {
	rootCmd.AddCommand(dailyCmd)
}

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "play today's word",
	RunE:  runDaily,
}

func runDaily(cmd *cobra.Command, args []string) error {
	if err := words.Init(); err != nil {
		return fmt.Errorf("load word lists: %w", err)
	}

	now := time.Now()
	date := daily.DateKey(now)
	answers := words.Answers()
	idx := daily.WordIndex(now, cfg.DailySalt, len(answers))

	if st, err := history.Open(cfg.DBPath); err == nil {
		played, err := st.AlreadyPlayedDaily(cmd.Context(), date)
		_ = st.Close()
		if err == nil && played {
			fmt.Printf("You already played the daily word for %s. Come back tomorrow!\n", date)
			return nil
		}
	} else {
		log.Warn().Err(err).Msg("history unavailable, daily replay check skipped")
	}

	secret, err := game.NewSecret(answers[idx])
	if err != nil {
		return fmt.Errorf("answer list: %w", err)
	}

	fmt.Printf("Daily word for %s\n", date)
	return playSession(cmd.Context(), secret, "daily")
}
