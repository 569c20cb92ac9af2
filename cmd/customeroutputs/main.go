package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"CustomerOutputs/internal/app"
	"CustomerOutputs/internal/config"
	"CustomerOutputs/internal/logging"
)

func main() {
	// .env is a development convenience; absence is fine.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer application.Close()

	if err := application.Run(ctx); err != nil {
		logger.Error("application stopped", "error", err)
		os.Exit(1)
	}
}
