package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/plotline/plotline/internal/client/cli"
	"github.com/plotline/plotline/internal/client/config"
	"github.com/plotline/plotline/internal/logging"
)

func main() {
	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}),
	))

	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
