package todo

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
)

// ShowCmd returns the show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a todo",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().Int("id", 0, "Todo ID (can also be provided as positional argument)")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	formatter := cli.FormatterFromFlags(cmd)

	id, err := cli.ParseIDArg(cmd, args)
	if err != nil {
		return cli.UsageError(formatter, "INVALID_TODO_ID", err.Error(),
			"Usage: todos show <id> or todos show --id=<id>")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.InitError(formatter, err)
	}

	t, err := cliInstance.Client.Get(ctx, id)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	return formatter.Success(t)
}
