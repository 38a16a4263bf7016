package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dkrasnov/notable/internal/client/cli"
	"github.com/dkrasnov/notable/internal/client/config"
	"github.com/dkrasnov/notable/internal/logging"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, flush := newLogger(cfg)
	defer flush()

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}

func newLogger(cfg *config.Config) (logging.Logger, func()) {
	if cfg.LogFormat == "text" {
		l := slog.New(slog.NewTextHandler(os.Stderr, nil))
		return logging.NewSlogLogger(l), func() {}
	}
	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("%v", err)
	}
	return logging.NewZapLogger(zl), func() { _ = zl.Sync() }
}
