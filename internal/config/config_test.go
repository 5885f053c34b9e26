package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	// Test a few key bindings
	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.AddTodo != "a" {
		t.Errorf("Default AddTodo key = %s, want a", defaults.AddTodo)
	}
	if defaults.ToggleTodo != "space" {
		t.Errorf("Default ToggleTodo key = %s, want space", defaults.ToggleTodo)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Addr != ":3000" {
		t.Errorf("Server.Addr = %s, want :3000", cfg.Server.Addr)
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 5s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Storage.Driver != "memory" {
		t.Errorf("Storage.Driver = %s, want memory", cfg.Storage.Driver)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %s, want info", cfg.Log.Level)
	}
	if cfg.Client.BaseURL != "http://localhost:3000" {
		t.Errorf("Client.BaseURL = %s, want http://localhost:3000", cfg.Client.BaseURL)
	}
	if cfg.ColorScheme.Accent == "" {
		t.Error("Expected default accent color")
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvConfigFile, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	// Should return default config
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.Server.Addr != ":3000" {
		t.Errorf("Loaded config Server.Addr = %s, want :3000 (default)", cfg.Server.Addr)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(EnvConfigFile, "")

	configDir := filepath.Join(tempDir, "todos")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	// Write custom config
	configContent := `server:
  addr: "127.0.0.1:8080"
  shutdown_timeout: 2s
storage:
  driver: sqlite
key_mappings:
  quit: "x"
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	// Should load custom values
	if cfg.Server.Addr != "127.0.0.1:8080" {
		t.Errorf("Loaded Server.Addr = %s, want 127.0.0.1:8080", cfg.Server.Addr)
	}
	if cfg.Server.ShutdownTimeout != 2*time.Second {
		t.Errorf("Loaded ShutdownTimeout = %v, want 2s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Storage.Driver != "sqlite" {
		t.Errorf("Loaded Storage.Driver = %s, want sqlite", cfg.Storage.Driver)
	}
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}

	// Should fill defaults for missing values
	if cfg.KeyMappings.AddTodo != "a" {
		t.Errorf("Loaded AddTodo key = %s, want a (default)", cfg.KeyMappings.AddTodo)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Loaded Log.Level = %s, want info (default)", cfg.Log.Level)
	}
}

func TestLoadFromEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("client:\n  base_url: http://example.test:9000\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv(EnvConfigFile, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Client.BaseURL != "http://example.test:9000" {
		t.Errorf("Client.BaseURL = %s, want http://example.test:9000", cfg.Client.BaseURL)
	}
}

func TestLoadFromInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("server: [unclosed"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Server.Addr = ":4000"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if loaded.Server.Addr != ":4000" {
		t.Errorf("Reloaded Server.Addr = %s, want :4000", loaded.Server.Addr)
	}
}
