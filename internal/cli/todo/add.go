package todo

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [task...]",
		Short: "Add a todo",
		Long: `Add a todo. The task text comes from --task or the positional arguments.

Examples:
  todos add Buy milk
  todos add --task "Pay rent" --priority high`,
		RunE: runAdd,
	}

	cmd.Flags().String("task", "", "Task text")
	cmd.Flags().String("priority", "", "Priority (server default: medium)")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	task, _ := cmd.Flags().GetString("task")
	priority, _ := cmd.Flags().GetString("priority")
	if task == "" {
		task = strings.Join(args, " ")
	}

	formatter := cli.FormatterFromFlags(cmd)

	if strings.TrimSpace(task) == "" {
		return cli.UsageError(formatter, "TASK_REQUIRED",
			"task text is required",
			`Usage: todos add <task> or todos add --task "<task>"`)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.InitError(formatter, err)
	}

	created, err := cliInstance.Client.Create(ctx, task, priority)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	formatter.Message("Todo created")
	return formatter.Success(created)
}
