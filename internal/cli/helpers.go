package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// OptionalBool returns the flag value only when the user set it
func OptionalBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return nil
	}
	return &v
}

// OptionalString returns the flag value only when the user set it
func OptionalString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil
	}
	return &v
}

// AddOutputFlags registers the agent-friendly output flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// FormatterFromFlags builds an OutputFormatter from --json and --quiet
func FormatterFromFlags(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// ParseIDArg reads a todo ID from the first positional argument or the --id flag
func ParseIDArg(cmd *cobra.Command, args []string) (int, error) {
	var id int
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, fmt.Errorf("invalid todo ID %q", args[0])
		}
		id = parsed
	} else {
		id, _ = cmd.Flags().GetInt("id")
	}

	if id <= 0 {
		return 0, fmt.Errorf("todo ID must be a positive integer")
	}
	return id, nil
}
