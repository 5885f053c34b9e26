package todo

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todos",
		Long:  "List all todos in insertion order, optionally filtered by completion.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cmd.Flags().Bool("completed", false, "Only completed todos (--completed=false for open ones)")
	cmd.Flags().Bool("markdown", false, "Render as a markdown table")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	formatter := cli.FormatterFromFlags(cmd)
	formatter.Markdown, _ = cmd.Flags().GetBool("markdown")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.InitError(formatter, err)
	}

	todos, err := cliInstance.Client.List(ctx, cli.OptionalBool(cmd, "completed"))
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	return formatter.Success(todos)
}
