package todo

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
)

// CompleteAllCmd returns the complete-all subcommand
func CompleteAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete-all",
		Short: "Mark every todo completed",
		Args:  cobra.NoArgs,
		RunE:  runCompleteAll,
	}

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCompleteAll(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.InitError(formatter, err)
	}

	if err := cliInstance.Client.CompleteAll(ctx); err != nil {
		return cli.HandleError(formatter, err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return writeJSON(nil)
	}

	formatter.Message("All todos completed")
	return nil
}
