package models

import "errors"

// ErrTodoNotFound indicates that no record in the collection has the requested id
var ErrTodoNotFound = errors.New("todo not found")
