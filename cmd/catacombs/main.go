// Package main is the entry point for Catacombs.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/catacombs/internal/game"
	"github.com/samdwyer/catacombs/internal/logging"
	"github.com/samdwyer/catacombs/internal/telemetry"
	"github.com/samdwyer/catacombs/internal/ui"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load .env file for local development. Not fatal: env vars might be set directly.
	envErr := godotenv.Load()

	cfg, err := game.LoadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Open(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	if envErr != nil {
		logger.WithError(envErr).Debug(".env file not loaded")
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, logger)
	if err != nil {
		// Continue without telemetry - game still works
		logger.WithError(err).Warn("telemetry setup failed, running without observability")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.WithError(err).Error("telemetry shutdown failed")
			}
		}()
	}

	g, err := game.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}

	if err := g.Run(ctx, screen); err != nil && ctx.Err() == nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"seed":  g.Seed(),
		"turns": g.Turns(),
	}).Info("game over")
	return nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	// The .env file may hold an unexpanded variable reference, so the header
	// is built here from the key itself.
	apiKey := os.Getenv("HONEYCOMB_CATACOMBS_API_KEY")
	dataset := os.Getenv("HONEYCOMB_CATACOMBS_DATASET")
	if dataset == "" {
		dataset = "catacombs"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
