package cli

import (
	"testing"
	"time"

	"github.com/thenoetrevino/todos/internal/app"
	"github.com/thenoetrevino/todos/internal/cli"
	"github.com/thenoetrevino/todos/internal/config"
	"github.com/thenoetrevino/todos/internal/testutil"
)

// SetupCLITest starts a seeded test server and returns its app, for direct
// inspection, and a CLI pointed at it.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when the cli package imports testutil.
func SetupCLITest(t *testing.T) (*app.App, *cli.CLI) {
	t.Helper()

	ts, appInstance := testutil.SetupTestServer(t)

	cfg := config.Default()
	cfg.Client.BaseURL = ts.URL
	cfg.Client.Timeout = 2 * time.Second

	return appInstance, cli.NewCLI(cfg, ts.URL)
}
