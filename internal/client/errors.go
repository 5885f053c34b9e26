package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
)

// ErrorCode represents server connection error types.
type ErrorCode int

const (
	ErrServerUnreachable ErrorCode = iota
	ErrConnectionRefused
	ErrTimeout
)

// ServerError represents a failure to reach the todo server.
type ServerError struct {
	Code    ErrorCode
	Message string
	Hint    string
	Err     error
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	if e.Hint != "" {
		return e.Message + ". " + e.Hint
	}
	return e.Message
}

// Unwrap returns the transport error.
func (e *ServerError) Unwrap() error {
	return e.Err
}

// ClassifyServerError maps transport errors to structured ServerError types.
func ClassifyServerError(baseURL string, err error) *ServerError {
	if err == nil {
		return nil
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && errno == syscall.ECONNREFUSED {
		return &ServerError{
			Code:    ErrConnectionRefused,
			Message: "Connection refused by " + baseURL,
			Hint:    "Start the server: todos serve",
			Err:     err,
		}
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &ServerError{
			Code:    ErrTimeout,
			Message: "Request to " + baseURL + " timed out",
			Hint:    "Check the server is healthy or raise client.timeout",
			Err:     err,
		}
	}

	return &ServerError{
		Code:    ErrServerUnreachable,
		Message: "Server unreachable at " + baseURL,
		Hint:    "Check --server or TODOS_SERVER",
		Err:     err,
	}
}

// StatusError is returned for unexpected HTTP responses.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}
