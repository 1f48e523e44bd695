package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/solvekit/numerics/internal/infrastructure/config"
	"github.com/solvekit/numerics/internal/infrastructure/logging"
	"github.com/solvekit/numerics/internal/server"
)

func main() {
	port := flag.String("port", "", "Server port (overrides PORT)")
	dev := flag.Bool("dev", false, "Development mode (colored logs, debug level)")
	flag.Parse()

	cfg := config.LoadOrDefault()
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *dev {
		cfg.Logging.Development = true
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	srv, err := server.NewServer(cfg, logger)
	if err != nil {
		logger.Fatal("failed to create server", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Run(); err != nil {
			errChan <- err
		}
	}()

	select {
	case sig := <-sigChan:
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown error", zap.Error(err))
		}
	case err := <-errChan:
		logger.Fatal("server error", zap.Error(err))
	}
}
