// Package serve holds the command that runs the todo HTTP server.
package serve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/app"
	"github.com/thenoetrevino/todos/internal/cli"
	"github.com/thenoetrevino/todos/internal/config"
	"github.com/thenoetrevino/todos/internal/logging"
	"github.com/thenoetrevino/todos/internal/server"
)

// ServeCmd returns the serve subcommand
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the todo HTTP server",
		Long: `Run the todo HTTP server until interrupted.

The collection lives in memory and starts with two seeded todos on every start.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (default from config: :3000)")
	cmd.Flags().String("storage", "", "Storage driver: memory or sqlite")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	formatter := &cli.OutputFormatter{}

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return cli.InitError(formatter, err)
	}

	cfg := *cliInstance.Config
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}
	if driver, _ := cmd.Flags().GetString("storage"); driver != "" {
		cfg.Storage.Driver = driver
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Run(ctx, &cfg); err != nil {
		return cli.HandleError(formatter, err)
	}
	return nil
}

// Run starts logging, the store and the server from cfg and blocks until ctx
// is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	closer, err := logging.Init(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		if err := closer.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
	}()

	application, err := app.Open(ctx, cfg.Storage.Driver, app.WithLogger(logging.Logger))
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Driver, err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("failed to close storage", "error", err)
		}
	}()

	srv, err := server.NewServer(cfg.Server.Addr, application,
		server.WithLogger(logging.Logger),
		server.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
	)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Server running on http://%s\n", srv.Addr())

	if err := srv.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	slog.Info("server stopped")
	return nil
}
