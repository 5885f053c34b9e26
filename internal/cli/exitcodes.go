package cli

import "fmt"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: unexpected server responses, or any error that doesn't fit
	// the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates the requested todo does not exist.
	ExitNotFound = 3

	// ExitConnection indicates the todo server could not be reached.
	// Use for: connection refused, timeouts, bad --server addresses.
	ExitConnection = 6
)

// CodedError carries the process exit code of a failed command.
// The message has already been printed by the OutputFormatter.
type CodedError struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *CodedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *CodedError) Unwrap() error {
	return e.Err
}
