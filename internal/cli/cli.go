package cli

import (
	"context"
	"os"

	"github.com/thenoetrevino/todos/internal/client"
	"github.com/thenoetrevino/todos/internal/config"
)

// EnvServerURL overrides client.base_url from the config file
const EnvServerURL = "TODOS_SERVER"

// CLI represents the CLI application context
type CLI struct {
	Client *client.Client // HTTP client for the todo server
	Config *config.Config
}

type cliContextKey struct{}

// NewCLI builds a CLI that talks to serverURL using the client settings of cfg
func NewCLI(cfg *config.Config, serverURL string) *CLI {
	return &CLI{
		Client: client.New(serverURL, cfg.Client.Timeout),
		Config: cfg,
	}
}

// ResolveServerURL picks the server address: the --server flag, then
// TODOS_SERVER, then client.base_url.
func ResolveServerURL(flagValue string, cfg *config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvServerURL); env != "" {
		return env
	}
	return cfg.Client.BaseURL
}

// WithCLI stores a CLI in ctx for the subcommands
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliContextKey{}, c)
}

// FromContext returns the CLI stored by WithCLI, if any
func FromContext(ctx context.Context) (*CLI, bool) {
	if ctx == nil {
		return nil, false
	}
	c, ok := ctx.Value(cliContextKey{}).(*CLI)
	return c, ok && c != nil
}

// GetCLIFromContext returns the CLI set up by the root command, or builds
// one from the default config when the command runs on its own.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if c, ok := FromContext(ctx); ok {
		return c, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewCLI(cfg, ResolveServerURL("", cfg)), nil
}
