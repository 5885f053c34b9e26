package todo

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
	"github.com/thenoetrevino/todos/internal/models"
)

// UpdateCmd returns the update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a todo",
		Long: `Update the task text or completion of a todo. Only the flags you pass
are changed; an empty --task leaves the text as it is.

Examples:
  todos update 3 --completed
  todos update --id 3 --task "Buy oat milk" --completed=false`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().Int("id", 0, "Todo ID (can also be provided as positional argument)")
	cmd.Flags().String("task", "", "New task text")
	cmd.Flags().Bool("completed", false, "Mark completed (--completed=false to reopen)")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	formatter := cli.FormatterFromFlags(cmd)

	id, err := cli.ParseIDArg(cmd, args)
	if err != nil {
		return cli.UsageError(formatter, "INVALID_TODO_ID", err.Error(),
			"Usage: todos update <id> [--task <text>] [--completed]")
	}

	patch := models.TodoPatch{
		Task:      cli.OptionalString(cmd, "task"),
		Completed: cli.OptionalBool(cmd, "completed"),
	}
	if patch.Task == nil && patch.Completed == nil {
		return cli.UsageError(formatter, "NO_UPDATES",
			"nothing to update",
			"Pass --task and/or --completed")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.InitError(formatter, err)
	}

	updated, err := cliInstance.Client.Update(ctx, id, patch)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	formatter.Message("Todo updated")
	return formatter.Success(updated)
}
