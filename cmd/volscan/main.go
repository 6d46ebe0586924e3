package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"volscan/internal/common"
	"volscan/internal/config"
	"volscan/internal/engine"
	"volscan/internal/ingest"
	"volscan/internal/report"
	"volscan/internal/session"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("unable to load config")
	}
	setupLogging(cfg.Log)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer stop()

	// An unreadable source is not fatal: every query then reports no match.
	batch, err := ingest.Load(cfg.Data.Path, ingest.Options{
		Comma:  cfg.Data.Comma,
		Header: cfg.Data.Header,
	})
	if err != nil {
		log.Error().Err(err).Str("path", cfg.Data.Path).Msg("unable to load instruments")
	}

	eng := engine.New(batch.Instruments)
	eng.SetReporter(report.New(os.Stdout))

	if cfg.Once.Enabled {
		if _, err := eng.Query(common.NewQuery(cfg.Once.Query, cfg.Once.Strategy)); err != nil {
			log.Fatal().Err(err).Msg("query failed")
		}
		return
	}

	// Run the prompt loop under a tomb tied to the signal context. A signal
	// while blocked on input returns straight away.
	t, _ := tomb.WithContext(ctx)
	sess := session.New(os.Stdin, os.Stdout, eng)
	t.Go(func() error {
		return sess.Run(t)
	})

	select {
	case <-t.Dead():
		if err := t.Err(); err != nil {
			log.Fatal().Err(err).Msg("session failed")
		}
	case <-ctx.Done():
		log.Info().Msg("interrupted")
	}
}

func setupLogging(cfg config.LogConfig) {
	zerolog.SetGlobalLevel(cfg.Level)
	if cfg.JSON {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
