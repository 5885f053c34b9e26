package app

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/todos/internal/database"
	todoservice "github.com/thenoetrevino/todos/internal/services/todo"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (owns the collection)
	repo database.DataStore

	logger *slog.Logger

	// Service layer (business logic)
	TodoService todoservice.Service
}

// New creates a new App around an already opened store.
func New(repo database.DataStore, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	return &App{
		repo:        repo,
		logger:      cfg.logger,
		TodoService: todoservice.NewService(repo, cfg.logger),
	}
}

// Open creates the store for the given storage driver and wraps it in an App.
func Open(ctx context.Context, driver string, opts ...Option) (*App, error) {
	repo, err := database.Open(ctx, driver)
	if err != nil {
		return nil, err
	}
	return New(repo, opts...), nil
}

// Repo returns the underlying repository for direct access in tests.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Logger returns the logger shared by the application's components.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the store. The collection is gone afterwards.
func (a *App) Close() error {
	return a.repo.Close()
}
