package todo

import "github.com/thenoetrevino/todos/internal/models"

// Todo-related errors
var (
	// ErrTodoNotFound is returned by Get, Update and Delete for unknown ids
	ErrTodoNotFound = models.ErrTodoNotFound
)
