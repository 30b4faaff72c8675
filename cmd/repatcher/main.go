// cmd/repatcher/main.go
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/daveseidel/repatcher-osc/internal/config"
	"github.com/daveseidel/repatcher-osc/internal/osc"
	"github.com/daveseidel/repatcher-osc/internal/reader"
)

func main() {
	log := newLogger()

	// --------------------
	// Load + validate config
	// --------------------

	// usage: repatcher [config.yaml]; without a file, stock defaults apply.
	cfg := config.Default()
	if len(os.Args) >= 2 {
		loaded, err := config.Load(os.Args[1])
		if err != nil {
			log.Fatal().Err(err).Msg("config load failed")
		}
		cfg = loaded
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatal().Err(err).Msg("config validation failed")
	}
	config.Normalize(cfg)

	// --------------------
	// Build the pipeline
	// --------------------

	sender, err := osc.New(osc.Config{
		Address: cfg.Repatcher.OSC.Address,
		Port:    cfg.Repatcher.OSC.Port,
		Verbose: cfg.Repatcher.Verbose,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("osc sender build failed")
	}
	log.Info().
		Str("address", cfg.Repatcher.OSC.Address).
		Int("port", cfg.Repatcher.OSC.Port).
		Msg("publishing osc")

	r, closePort, err := reader.Build(cfg.Repatcher.Device, sender, log)
	if err != nil {
		log.Fatal().Err(err).Msg("repatcher connection failed")
	}
	defer closePort()
	log.Info().
		Str("port", cfg.Repatcher.Device.Port).
		Int("baud", cfg.Repatcher.Device.BaudRate).
		Msg("repatcher connection open")

	// --------------------
	// Run until signalled
	// --------------------

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := r.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("frame loop failed")
		closePort()
		os.Exit(1)
	}

	log.Info().Msg("shutdown")
}

func newLogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Str("app", "repatcher").Logger()
}
