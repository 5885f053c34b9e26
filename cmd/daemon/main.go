package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/todos/internal/cli/serve"
	"github.com/thenoetrevino/todos/internal/config"
)

func main() {
	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.Info("todos daemon starting", "addr", cfg.Server.Addr, "storage", cfg.Storage.Driver, "pid", os.Getpid())

	// Blocks until a signal arrives
	if err := serve.Run(ctx, cfg); err != nil {
		slog.Error("daemon error", "error", err)
		os.Exit(1)
	}
}
