package main

import (
	"context"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordle-ru/internal/config"
	"github.com/robalobadob/wordle/apps/wordle-ru/internal/console"
	"github.com/robalobadob/wordle/apps/wordle-ru/internal/daily"
	"github.com/robalobadob/wordle/apps/wordle-ru/internal/game"
	"github.com/robalobadob/wordle/apps/wordle-ru/internal/httpserver"
	"github.com/robalobadob/wordle/apps/wordle-ru/internal/journal"
	"github.com/robalobadob/wordle/apps/wordle-ru/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	logOut, closeLog := openLog(cfg.LogFile)
	defer closeLog()
	log.Logger = zerolog.New(logOut).With().Timestamp().Logger()

	// ctx stops the diagnostics server once the game is over.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dict, err := words.Load(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.WordsFile).Msg("failed to load word list")
	}
	log.Info().Int("words", dict.Len()).Str("file", cfg.WordsFile).Msg("dictionary loaded")

	var rec game.Recorder
	var jr httpserver.Journal
	if cfg.JournalDSN != "" {
		j, err := journal.Open(cfg.JournalDSN, log.Logger)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open journal")
		}
		defer j.Close()
		rec, jr = j, j
	}

	if cfg.DebugAddr != "" {
		srv := httpserver.New(dict, jr, log.Logger)
		go func() {
			log.Info().Str("addr", cfg.DebugAddr).Msg("starting diagnostics server")
			if err := srv.Start(ctx, cfg.DebugAddr); err != nil {
				log.Error().Err(err).Msg("diagnostics server exited")
			}
		}()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	opts := []game.Option{
		game.WithAttempts(cfg.Attempts),
		game.WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))),
		game.WithLogger(log.Logger),
		game.WithRecorder(rec),
		game.WithHintsAfterGameOver(cfg.HintsAfterGameOver),
	}
	if cfg.Daily {
		now := time.Now()
		opts = append(opts, game.WithAnswer(daily.Answer(now, cfg.DailySalt, dict.Words()).String()))
		log.Info().Str("date", daily.DateKey(now)).Msg("daily mode")
	}

	sess, err := game.New(dict, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}
	if err := console.New(os.Stdin, os.Stdout, log.Logger).Run(ctx, sess); err != nil {
		log.Error().Err(err).Msg("console exited")
	}
}

// openLog returns the log destination. "-" means stderr; an unopenable file
// falls back to stderr so the game still runs.
func openLog(path string) (io.Writer, func()) {
	if path == "-" || path == "" {
		return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("cannot open log file, using stderr")
		return os.Stderr, func() {}
	}
	return f, func() { _ = f.Close() }
}
