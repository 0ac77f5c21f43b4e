// cmd/root.go
//
// Root command: an interactive game against a random word. Shared
// bootstrap (dotenv, config, logging) happens once in Execute before
// any command runs.

package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"wordlecli/internal/cli"
	"wordlecli/internal/config"
	"wordlecli/internal/daily"
	"wordlecli/internal/game"
	"wordlecli/internal/history"
	"wordlecli/internal/words"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "wordle",
	Short: "guess the five-letter word in the terminal",
	RunE:  runPlay,
}

// Execute loads configuration, sets up logging, and dispatches.
func Execute() {
	_ = godotenv.Load()

	var err error
	cfg, err = config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := words.Init(); err != nil {
		return fmt.Errorf("load word lists: %w", err)
	}
	word, err := words.Static{}.Word()
	if err != nil {
		return fmt.Errorf("pick word: %w", err)
	}
	secret, err := game.NewSecret(word)
	if err != nil {
		return fmt.Errorf("word source: %w", err)
	}

	fmt.Println("Welcome to Wordle!")
	return playSession(cmd.Context(), secret, "play")
}

// playSession runs the interactive loop for one secret and records the
// outcome in the local history (best effort, non-fatal).
func playSession(ctx context.Context, secret *game.Secret, mode string) error {
	sess := game.NewSession(secret, cfg.Attempts, allowedFn())
	loop := &cli.Loop{In: os.Stdin, Out: os.Stdout, Color: !cfg.NoColor}

	start := time.Now()
	if err := loop.Run(sess); err != nil {
		return err
	}
	if sess.Finished {
		recordResult(ctx, mode, sess, start)
	}
	return nil
}

func allowedFn() func(string) bool {
	if cfg.Strict {
		return words.IsAllowed
	}
	return nil
}

func recordResult(ctx context.Context, mode string, sess *game.Session, start time.Time) {
	st, err := history.Open(cfg.DBPath)
	if err != nil {
		log.Warn().Err(err).Str("db", cfg.DBPath).Msg("history unavailable")
		return
	}
	defer st.Close()

	res := history.Result{
		Mode:      mode,
		Word:      sess.Secret().Reveal(),
		Guesses:   len(sess.Guesses),
		Won:       sess.Won,
		ElapsedMs: time.Since(start).Milliseconds(),
		Date:      daily.DateKey(time.Now()),
	}
	if err := st.Record(ctx, res); err != nil {
		log.Warn().Err(err).Msg("record result")
	}
}
