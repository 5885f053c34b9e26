package cli

import (
	"errors"
	"log/slog"

	"github.com/thenoetrevino/todos/internal/client"
	"github.com/thenoetrevino/todos/internal/models"
)

// HandleError prints err through the formatter and returns a CodedError with
// the matching exit code.
func HandleError(f *OutputFormatter, err error) error {
	var (
		code       string
		message    = err.Error()
		suggestion string
		exitCode   = ExitError
	)

	var serverErr *client.ServerError
	var statusErr *client.StatusError
	switch {
	case errors.Is(err, models.ErrTodoNotFound):
		code = "TODO_NOT_FOUND"
		message = models.NotFoundMessage
		suggestion = "List todos with: todos list"
		exitCode = ExitNotFound
	case errors.As(err, &serverErr):
		code = "CONNECTION_ERROR"
		message = serverErr.Message
		suggestion = serverErr.Hint
		exitCode = ExitConnection
	case errors.As(err, &statusErr):
		code = "SERVER_ERROR"
	default:
		code = "REQUEST_ERROR"
	}

	if fmtErr := f.ErrorWithSuggestion(code, message, suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return &CodedError{Code: exitCode, Err: err}
}

// UsageError prints a usage problem and returns a CodedError with ExitUsage
func UsageError(f *OutputFormatter, code, message, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(code, message, suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return &CodedError{Code: ExitUsage, Err: errors.New(message)}
}

// InitError reports a failure to set up the CLI itself, such as a broken config file
func InitError(f *OutputFormatter, err error) error {
	if fmtErr := f.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return &CodedError{Code: ExitError, Err: err}
}
