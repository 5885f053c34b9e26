// Package todo holds the CLI subcommands that manage todos on a running server.
package todo

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

// Commands returns every todo subcommand, for registration on the root command
func Commands() []*cobra.Command {
	return []*cobra.Command{
		ListCmd(),
		AddCmd(),
		ShowCmd(),
		UpdateCmd(),
		CompleteAllCmd(),
		DeleteCmd(),
	}
}

// writeJSON prints the success envelope for commands that return no record
func writeJSON(fields map[string]any) error {
	out := map[string]any{"success": true}
	for k, v := range fields {
		out[k] = v
	}
	return json.NewEncoder(os.Stdout).Encode(out)
}
