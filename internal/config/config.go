// internal/config/config.go
//
// Runtime configuration, loaded once from the environment in main and
// passed down explicitly (no globals). `.env` loading happens before
// this via godotenv.

package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config describes all runtime settings for the game.
type Config struct {
	Attempts  int    // guess budget per game
	DBPath    string // SQLite history location
	DailySalt string // salt for deterministic daily word selection
	Addr      string // listen address for serve mode
	Strict    bool   // reject guesses outside the allowed word list
	NoColor   bool   // disable ANSI colors in terminal output
	LogLevel  string // zerolog level name
}

// Load reads configuration from the environment, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Attempts:  6,
		DBPath:    getEnv("WORDLE_DB", "./data/wordle.db"),
		DailySalt: getEnv("WORDLE_DAILY_SALT", "local_dev_salt"),
		Addr:      ":" + getEnv("PORT", "5175"),
		Strict:    getEnv("WORDLE_STRICT", "") == "1",
		NoColor:   getEnv("NO_COLOR", "") != "",
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}
	if v := os.Getenv("WORDLE_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("WORDLE_ATTEMPTS must be a positive integer, got %q", v)
		}
		cfg.Attempts = n
	}
	return cfg, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
