// Package todo implements the business rules of the to-do collection:
// default values, filtering and partial updates.
package todo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/todos/internal/database"
	"github.com/thenoetrevino/todos/internal/models"
)

// Service defines all todo-related business operations
type Service interface {
	// Read operations
	ListTodos(ctx context.Context, req ListTodosRequest) ([]*models.Todo, error)
	GetTodo(ctx context.Context, id int) (*models.Todo, error)
	CountTodos(ctx context.Context) (int, error)

	// Write operations
	CreateTodo(ctx context.Context, req CreateTodoRequest) (*models.Todo, error)
	UpdateTodo(ctx context.Context, req UpdateTodoRequest) (*models.Todo, error)
	CompleteAll(ctx context.Context) error
	DeleteTodo(ctx context.Context, id int) error
}

// ListTodosRequest filters a listing. A nil Completed returns every todo.
type ListTodosRequest struct {
	Completed *bool
}

// CreateTodoRequest encapsulates all data needed to create a todo
type CreateTodoRequest struct {
	Task     string
	Priority string // Optional: empty means DefaultPriority
}

// UpdateTodoRequest encapsulates all data needed to update a todo
// Fields with pointers are optional - nil means don't update
type UpdateTodoRequest struct {
	ID        int
	Task      *string
	Completed *bool
}

// service implements Service interface
type service struct {
	repo   database.TodoRepository
	logger *slog.Logger
}

// NewService creates a new todo service. A nil logger uses slog.Default().
func NewService(repo database.TodoRepository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// ListTodos returns todos in insertion order, optionally filtered by completion
func (s *service) ListTodos(ctx context.Context, req ListTodosRequest) ([]*models.Todo, error) {
	todos, err := s.repo.ListTodos(ctx, req.Completed)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

// GetTodo retrieves a single todo
func (s *service) GetTodo(ctx context.Context, id int) (*models.Todo, error) {
	return s.repo.GetTodo(ctx, id)
}

// CountTodos returns the size of the collection
func (s *service) CountTodos(ctx context.Context) (int, error) {
	count, err := s.repo.CountTodos(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count todos: %w", err)
	}
	return count, nil
}

// CreateTodo appends a new incomplete todo. The task text is not validated.
func (s *service) CreateTodo(ctx context.Context, req CreateTodoRequest) (*models.Todo, error) {
	priority := req.Priority
	if priority == "" {
		priority = models.DefaultPriority
	}

	todo, err := s.repo.CreateTodo(ctx, req.Task, priority)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	s.logger.Debug("todo created", "todo_id", todo.ID, "priority", todo.Priority)
	return todo, nil
}

// UpdateTodo overwrites only the fields the caller supplied
func (s *service) UpdateTodo(ctx context.Context, req UpdateTodoRequest) (*models.Todo, error) {
	todo, err := s.repo.UpdateTodo(ctx, req.ID, models.TodoPatch{
		Task:      req.Task,
		Completed: req.Completed,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("todo updated", "todo_id", todo.ID, "completed", todo.Completed)
	return todo, nil
}

// CompleteAll marks every todo completed
func (s *service) CompleteAll(ctx context.Context) error {
	if err := s.repo.CompleteAllTodos(ctx); err != nil {
		return fmt.Errorf("failed to complete todos: %w", err)
	}

	s.logger.Debug("all todos completed")
	return nil
}

// DeleteTodo removes a single todo
func (s *service) DeleteTodo(ctx context.Context, id int) error {
	if err := s.repo.DeleteTodo(ctx, id); err != nil {
		return err
	}

	s.logger.Debug("todo deleted", "todo_id", id)
	return nil
}
