package database

import (
	"context"
	"slices"
	"sync"

	"github.com/thenoetrevino/todos/internal/models"
)

// MemoryRepo keeps the collection in an ordered slice guarded by a mutex.
// Ids come from a counter that only moves forward, so deleting a record
// never frees its id for reuse.
type MemoryRepo struct {
	mu     sync.Mutex
	todos  []*models.Todo
	nextID int
}

// NewMemoryRepo creates a repository holding copies of the given seed records.
// The id counter starts just past the highest seeded id.
func NewMemoryRepo(seed []*models.Todo) *MemoryRepo {
	r := &MemoryRepo{
		todos:  make([]*models.Todo, 0, len(seed)),
		nextID: 1,
	}
	for _, t := range seed {
		r.todos = append(r.todos, t.Clone())
		if t.ID >= r.nextID {
			r.nextID = t.ID + 1
		}
	}
	return r
}

// ListTodos returns copies of the records, optionally filtered by completion
func (r *MemoryRepo) ListTodos(ctx context.Context, completed *bool) ([]*models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	todos := make([]*models.Todo, 0, len(r.todos))
	for _, t := range r.todos {
		if completed != nil && t.Completed != *completed {
			continue
		}
		todos = append(todos, t.Clone())
	}
	return todos, nil
}

// GetTodo returns a copy of the first record with the given id
func (r *MemoryRepo) GetTodo(ctx context.Context, id int) (*models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, models.ErrTodoNotFound
	}
	return r.todos[i].Clone(), nil
}

// CountTodos returns the number of records in the collection
func (r *MemoryRepo) CountTodos(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.todos), nil
}

// CreateTodo appends a new incomplete record and returns a copy of it
func (r *MemoryRepo) CreateTodo(ctx context.Context, task, priority string) (*models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	todo := &models.Todo{
		ID:        r.nextID,
		Task:      task,
		Completed: false,
		Priority:  priority,
	}
	r.nextID++
	r.todos = append(r.todos, todo)

	return todo.Clone(), nil
}

// UpdateTodo applies patch to the first record with the given id
func (r *MemoryRepo) UpdateTodo(ctx context.Context, id int, patch models.TodoPatch) (*models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, models.ErrTodoNotFound
	}
	patch.Apply(r.todos[i])
	return r.todos[i].Clone(), nil
}

// CompleteAllTodos marks every record completed
func (r *MemoryRepo) CompleteAllTodos(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.todos {
		t.Completed = true
	}
	return nil
}

// DeleteTodo removes the first record with the given id, keeping the order of the rest
func (r *MemoryRepo) DeleteTodo(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.ErrTodoNotFound
	}
	r.todos = slices.Delete(r.todos, i, i+1)
	return nil
}

// Close is a no-op; the collection goes away with the process
func (r *MemoryRepo) Close() error {
	return nil
}

// indexOf returns the position of the first record with id, or -1.
// Callers must hold r.mu.
func (r *MemoryRepo) indexOf(id int) int {
	return slices.IndexFunc(r.todos, func(t *models.Todo) bool {
		return t.ID == id
	})
}
