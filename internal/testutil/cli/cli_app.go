package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
	"github.com/thenoetrevino/todos/internal/testutil"
)

// ExecuteCLICommand executes a CLI command against the given CLI instance and
// returns its captured stdout.
func ExecuteCLICommand(t *testing.T, cliInstance *cli.CLI, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	return ExecuteCLICommandWithContext(t, context.Background(), cliInstance, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, cliInstance *cli.CLI, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if cliInstance == nil {
		t.Fatal("cliInstance cannot be nil - SetupCLITest must be called first")
	}

	// The command finds the instance through GetCLIFromContext
	ctxWithCLI := cli.WithCLI(ctx, cliInstance)

	testutil.SetupCobraCommand(cmd, args)

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctxWithCLI)
	})

	return output, executeErr
}
