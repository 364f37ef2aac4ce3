// Package main is the entry point for roomcrawl.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/samdwyer/roomcrawl/internal/cli"
	"github.com/samdwyer/roomcrawl/internal/telemetry"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load .env file for local development
	// This makes ROOMCRAWL_HONEYCOMB_API_KEY and ROOMCRAWL_* settings available
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn(".env file not loaded", "err", err)
	}

	ctx := context.Background()

	// Tracing is only exported when an API key is configured
	if setupOTelEnv() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Warn("telemetry setup failed, running without observability", "err", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Error("telemetry shutdown", "err", err)
				}
			}()
		}
	}

	if err := cli.Execute(ctx); err != nil {
		return 1
	}
	return 0
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// It reports whether an exporter should be started.
func setupOTelEnv() bool {
	apiKey := os.Getenv("ROOMCRAWL_HONEYCOMB_API_KEY")
	if apiKey == "" {
		return false
	}
	dataset := os.Getenv("ROOMCRAWL_HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = "roomcrawl"
	}

	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}
