// cmd/serve.go
//
// Serve mode: exposes the engine over a small JSON API instead of the
// terminal loop.

package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"wordlecli/internal/httpserver"
	"wordlecli/internal/store"
	"wordlecli/internal/words"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve the game over HTTP",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := words.Init(); err != nil {
		return fmt.Errorf("load word lists: %w", err)
	}

	srv := httpserver.New(store.NewMemoryStore(), words.Static{}, cfg.Attempts, cfg.Strict)
	log.Info().Str("addr", cfg.Addr).Msg("starting wordle server")
	if err := srv.Start(cfg.Addr); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}
