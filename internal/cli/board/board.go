// Package board holds the command that opens the interactive todo board.
package board

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
	"github.com/thenoetrevino/todos/internal/logging"
	"github.com/thenoetrevino/todos/internal/tui"
)

// BoardCmd returns the board subcommand
func BoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive todo board",
		Long: `Open a full-screen board for the todos on the server.

Press ? inside the board to list the key bindings.`,
		Args: cobra.NoArgs,
		RunE: runBoard,
	}
}

func runBoard(cmd *cobra.Command, args []string) error {
	formatter := &cli.OutputFormatter{}

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return cli.InitError(formatter, err)
	}

	// The board owns the terminal, so logs only go to a configured file
	if cliInstance.Config.Log.File != "" {
		closer, err := logging.Init(cliInstance.Config.Log)
		if err != nil {
			return cli.InitError(formatter, err)
		}
		defer func() {
			if err := closer.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
			}
		}()
	}

	model := tui.New(cmd.Context(), cliInstance.Client, cliInstance.Config)
	p := tea.NewProgram(model, tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return &cli.CodedError{Code: cli.ExitError, Err: fmt.Errorf("error running board: %w", err)}
	}
	return nil
}
