package database

import (
	"context"

	"github.com/thenoetrevino/todos/internal/models"
)

// TodoReader defines read operations for todos.
type TodoReader interface {
	// ListTodos returns the collection in insertion order. A non-nil
	// completed filter keeps only records whose Completed matches it.
	ListTodos(ctx context.Context, completed *bool) ([]*models.Todo, error)
	GetTodo(ctx context.Context, id int) (*models.Todo, error)
	CountTodos(ctx context.Context) (int, error)
}

// TodoWriter defines write operations for todos.
// Each method is a single atomic step against the collection.
type TodoWriter interface {
	CreateTodo(ctx context.Context, task, priority string) (*models.Todo, error)
	UpdateTodo(ctx context.Context, id int, patch models.TodoPatch) (*models.Todo, error)
	CompleteAllTodos(ctx context.Context) error
	DeleteTodo(ctx context.Context, id int) error
}

// TodoRepository combines all todo operations.
type TodoRepository interface {
	TodoReader
	TodoWriter
}
