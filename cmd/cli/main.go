package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/photokeeper/internal/buildinfo"
	"github.com/dmitrijs2005/photokeeper/internal/client/cli"
	"github.com/dmitrijs2005/photokeeper/internal/client/config"
	"github.com/dmitrijs2005/photokeeper/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		slog.Error("initialization failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
