package todo

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
)

// DeleteCmd returns the delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a todo",
		Long:  "Delete a todo by ID (requires confirmation unless --force, --quiet or --json).",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Int("id", 0, "Todo ID (can also be provided as positional argument)")
	cmd.Flags().Bool("force", false, "Skip confirmation")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	force, _ := cmd.Flags().GetBool("force")
	formatter := cli.FormatterFromFlags(cmd)

	id, err := cli.ParseIDArg(cmd, args)
	if err != nil {
		return cli.UsageError(formatter, "INVALID_TODO_ID", err.Error(),
			"Usage: todos delete <id> or todos delete --id=<id>")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.InitError(formatter, err)
	}

	// Ask for confirmation unless running non-interactively
	if !force && !formatter.Quiet && !formatter.JSON {
		t, err := cliInstance.Client.Get(ctx, id)
		if err != nil {
			return cli.HandleError(formatter, err)
		}

		confirmed, err := cli.ConfirmDelete(t, cliInstance.Config.ColorScheme)
		if err != nil {
			return cli.HandleError(formatter, fmt.Errorf("confirmation failed: %w", err))
		}
		if !confirmed {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.Client.Delete(ctx, id); err != nil {
		return cli.HandleError(formatter, err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return writeJSON(map[string]any{"todo_id": id})
	}

	formatter.Message(fmt.Sprintf("Todo %d deleted", id))
	return nil
}
