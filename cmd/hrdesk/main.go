package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/mobiledv/hrdesk/internal/client/cli"
	"github.com/mobiledv/hrdesk/internal/client/config"
	"github.com/mobiledv/hrdesk/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "startup failed", "err", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Error(ctx, "exited with error", "err", err)
		os.Exit(1)
	}
}
