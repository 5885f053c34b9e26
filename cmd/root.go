// Package cmd wires the todos subcommands into the root command.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
	"github.com/thenoetrevino/todos/internal/cli/board"
	"github.com/thenoetrevino/todos/internal/cli/serve"
	"github.com/thenoetrevino/todos/internal/cli/styles"
	"github.com/thenoetrevino/todos/internal/cli/todo"
	"github.com/thenoetrevino/todos/internal/config"
)

// NewRootCmd builds the todos command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "todos",
		Short: "Todos - a small todo server with a CLI and a terminal board",
		Long: `Todos runs an HTTP todo service and talks to it.

Start the server with 'todos serve', then manage todos with the list, add,
show, update, complete-all and delete commands, or open 'todos board'.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupCLI,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to the config file")
	rootCmd.PersistentFlags().String("server", "", "Todo server URL (overrides TODOS_SERVER and client.base_url)")

	rootCmd.AddCommand(todo.Commands()...)
	rootCmd.AddCommand(serve.ServeCmd())
	rootCmd.AddCommand(board.BoardCmd())

	return rootCmd
}

// setupCLI loads the config once and hands the subcommands a CLI through the
// command context. A CLI already in the context is kept.
func setupCLI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := cli.FromContext(ctx); ok {
		return nil
	}

	configPath, _ := cmd.Flags().GetString("config")
	serverURL, _ := cmd.Flags().GetString("server")

	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cli.InitError(&cli.OutputFormatter{}, fmt.Errorf("failed to load config: %w", err))
	}

	styles.Init(cfg.ColorScheme)

	cmd.SetContext(cli.WithCLI(ctx, cli.NewCLI(cfg, cli.ResolveServerURL(serverURL, cfg))))
	return nil
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	return ExecuteContext(context.Background(), os.Args[1:])
}

// ExecuteContext runs the root command with args under ctx
func ExecuteContext(ctx context.Context, args []string) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	var codedErr *cli.CodedError
	if errors.As(err, &codedErr) {
		return codedErr.Code
	}

	// Cobra argument and flag errors have not been printed yet
	fmt.Fprintln(os.Stderr, "Error:", err)
	return cli.ExitUsage
}
