package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"scenic-server/config"
	"scenic-server/di"
	"scenic-server/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv, "scenic-server")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	container, err := di.NewContainer(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize container", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting scenic server",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.Addr()),
		zap.Int("finder_concurrency", cfg.FinderConcurrency),
	)
	if err := container.ScenicHttpServer.Start(ctx); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
