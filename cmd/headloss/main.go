package main

import (
	"log/slog"
	"os"

	"github.com/couchcryptid/pipe-headloss/internal/cli"
	"github.com/couchcryptid/pipe-headloss/internal/config"
	"github.com/couchcryptid/pipe-headloss/internal/observability"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local runs; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	if err := cli.Execute(cfg, logger, metrics); err != nil {
		// cobra has already reported the usage error on stderr.
		os.Exit(2)
	}
}
