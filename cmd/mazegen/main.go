// Package main is the entry point for mazegen.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazegen/internal/cli"
	"github.com/samdwyer/mazegen/internal/config"
	"github.com/samdwyer/mazegen/internal/maze"
	"github.com/samdwyer/mazegen/internal/telemetry"
)

// Set with -ldflags at release time.
var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	loadDotEnv(log.Default())

	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx,
			attribute.String("maze.default_method", string(maze.DefaultMethod)),
			attribute.Int("maze.default_size", config.DefaultSize),
		)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	cli.SetVersion(version, commit, date)
	return cli.Execute(ctx)
}

// loadDotEnv loads .env for local development. Not fatal; the variables
// might be set directly.
func loadDotEnv(logger *log.Logger) {
	if err := godotenv.Load(); err != nil {
		logger.Printf("Note: .env file not loaded: %v", err)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// The Honeycomb endpoint is only set when an API key is present, so runs
// without a key export nothing.
func setupOTelEnv() {
	apiKey := os.Getenv("MAZEGEN_HONEYCOMB_API_KEY")
	if apiKey == "" {
		return
	}
	dataset := os.Getenv("MAZEGEN_HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = "mazegen"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
