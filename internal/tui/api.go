package tui

import (
	"context"

	"github.com/thenoetrevino/todos/internal/models"
)

// TodoAPI is the subset of the HTTP client the board needs
type TodoAPI interface {
	List(ctx context.Context, completed *bool) ([]*models.Todo, error)
	Create(ctx context.Context, task, priority string) (*models.Todo, error)
	Update(ctx context.Context, id int, patch models.TodoPatch) (*models.Todo, error)
	CompleteAll(ctx context.Context) error
	Delete(ctx context.Context, id int) error
}
