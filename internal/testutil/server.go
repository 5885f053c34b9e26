// Package testutil provides shared helpers for tests that need a running
// todo server or captured command output.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/thenoetrevino/todos/internal/app"
	"github.com/thenoetrevino/todos/internal/database"
	"github.com/thenoetrevino/todos/internal/server"
)

// DiscardLogger returns a logger that drops everything
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SetupTestApp opens a freshly seeded store for driver and closes it when the
// test ends.
func SetupTestApp(t *testing.T, driver string) *app.App {
	t.Helper()

	application, err := app.Open(context.Background(), driver, app.WithLogger(DiscardLogger()))
	if err != nil {
		t.Fatalf("Failed to open %q store: %v", driver, err)
	}

	t.Cleanup(func() {
		if err := application.Close(); err != nil {
			t.Logf("Warning: failed to close store: %v", err)
		}
	})

	return application
}

// SetupTestServer serves a seeded in-memory collection through the real
// route table on an httptest server. Cleanup is automatic via t.Cleanup().
func SetupTestServer(t *testing.T) (*httptest.Server, *app.App) {
	t.Helper()

	application := SetupTestApp(t, database.DriverMemory)

	srv, err := server.NewServer("127.0.0.1:0", application, server.WithLogger(DiscardLogger()))
	if err != nil {
		t.Fatalf("Failed to create test server: %v", err)
	}

	ts := httptest.NewServer(srv.Handler())

	// Register cleanup in reverse order of creation
	t.Cleanup(func() {
		ts.Close()
		if err := srv.Shutdown(); err != nil {
			t.Logf("Warning: server shutdown error during cleanup: %v", err)
		}
	})

	return ts, application
}

// WaitForCondition polls condition until it is true or timeout expires
func WaitForCondition(t *testing.T, condition func() bool, timeout time.Duration, description string) bool {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Logf("Timeout waiting for: %s", description)
	return false
}
