// internal/config/config.go
//
// Runtime configuration.
//
// Values come from the process environment, optionally seeded from .env
// files (existing variables win). Defaults match a standard game:
//
//   WORDS_FILE                    dictionary path; empty = embedded list
//   WORDLE_ATTEMPTS               attempt budget (6)
//   WORDLE_SEED                   random seed; 0 = seeded from the clock
//   WORDLE_HINTS_AFTER_GAME_OVER  allow hints once the game ended (false)
//   WORDLE_DAILY                  pick the answer from the date (false)
//   DAILY_SALT                    salt for daily mode
//   LOG_LEVEL                     zerolog level (info)
//   LOG_FILE                      log destination (wordle.log); "-" = stderr
//   JOURNAL_DSN                   SQLite event journal; empty = disabled
//   DEBUG_ADDR                    loopback diagnostics listener; empty = disabled

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the parsed runtime configuration.
type Config struct {
	WordsFile          string `env:"WORDS_FILE"`
	Attempts           int    `env:"WORDLE_ATTEMPTS" envDefault:"6"`
	Seed               uint64 `env:"WORDLE_SEED" envDefault:"0"`
	HintsAfterGameOver bool   `env:"WORDLE_HINTS_AFTER_GAME_OVER" envDefault:"false"`
	Daily              bool   `env:"WORDLE_DAILY" envDefault:"false"`
	DailySalt          string `env:"DAILY_SALT" envDefault:"local_dev_salt"`
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile            string `env:"LOG_FILE" envDefault:"wordle.log"`
	JournalDSN         string `env:"JOURNAL_DSN"`
	DebugAddr          string `env:"DEBUG_ADDR"`
}

// Load reads the given .env files (default ".env"; missing files are
// skipped) and parses the environment into a Config.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values env tags cannot express.
func (c Config) Validate() error {
	if c.Attempts <= 0 {
		return fmt.Errorf("WORDLE_ATTEMPTS must be positive, got %d", c.Attempts)
	}
	if c.DebugAddr != "" {
		host, _, err := net.SplitHostPort(c.DebugAddr)
		if err != nil {
			return fmt.Errorf("DEBUG_ADDR: %w", err)
		}
		if ip := net.ParseIP(host); host != "localhost" && (ip == nil || !ip.IsLoopback()) {
			return fmt.Errorf("DEBUG_ADDR must bind a loopback address, got %q", c.DebugAddr)
		}
	}
	return nil
}
