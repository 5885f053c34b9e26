package database

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todos/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// backends returns a fresh, seeded store for each storage driver
func backends(t *testing.T) map[string]DataStore {
	t.Helper()

	stores := map[string]DataStore{}
	for _, driver := range []string{DriverMemory, DriverSQLite} {
		store, err := Open(context.Background(), driver)
		require.NoError(t, err, "open %s", driver)
		t.Cleanup(func() { _ = store.Close() })
		stores[driver] = store
	}
	return stores
}

func ids(todos []*models.Todo) []int {
	out := make([]int, 0, len(todos))
	for _, t := range todos {
		out = append(out, t.ID)
	}
	return out
}

func boolPtr(b bool) *bool {
	return &b
}

func strPtr(s string) *string {
	return &s
}

// ============================================================================
// TEST CASES
// ============================================================================

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "postgres")
	assert.Error(t, err)
}

func TestRepo_Seeded(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			todos, err := repo.ListTodos(ctx, nil)
			require.NoError(t, err)
			require.Len(t, todos, 2)

			assert.Equal(t, &models.Todo{ID: 1, Task: "Learn Node.js", Priority: "medium"}, todos[0])
			assert.Equal(t, &models.Todo{ID: 2, Task: "Build a REST API", Priority: "medium"}, todos[1])
		})
	}
}

func TestRepo_ListFilter(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := repo.UpdateTodo(ctx, 2, models.TodoPatch{Completed: boolPtr(true)})
			require.NoError(t, err)

			done, err := repo.ListTodos(ctx, boolPtr(true))
			require.NoError(t, err)
			assert.Equal(t, []int{2}, ids(done))

			pending, err := repo.ListTodos(ctx, boolPtr(false))
			require.NoError(t, err)
			assert.Equal(t, []int{1}, ids(pending))

			count, err := repo.CountTodos(ctx)
			require.NoError(t, err)
			assert.Equal(t, 2, count, "listing must not change the collection")
		})
	}
}

func TestRepo_CreateAppends(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			todo, err := repo.CreateTodo(ctx, "Buy milk", "high")
			require.NoError(t, err)
			assert.Equal(t, &models.Todo{ID: 3, Task: "Buy milk", Completed: false, Priority: "high"}, todo)

			todos, err := repo.ListTodos(ctx, nil)
			require.NoError(t, err)
			assert.Equal(t, []int{1, 2, 3}, ids(todos))
		})
	}
}

func TestRepo_IDsNotReusedAfterDelete(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, repo.DeleteTodo(ctx, 1))

			todo, err := repo.CreateTodo(ctx, "New", "medium")
			require.NoError(t, err)
			assert.Equal(t, 3, todo.ID)

			todos, err := repo.ListTodos(ctx, nil)
			require.NoError(t, err)
			assert.Equal(t, []int{2, 3}, ids(todos))
		})
	}
}

func TestRepo_UpdatePartial(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			todo, err := repo.UpdateTodo(ctx, 1, models.TodoPatch{Completed: boolPtr(true)})
			require.NoError(t, err)
			assert.Equal(t, "Learn Node.js", todo.Task)
			assert.True(t, todo.Completed)

			todo, err = repo.UpdateTodo(ctx, 1, models.TodoPatch{Task: strPtr(""), Completed: boolPtr(false)})
			require.NoError(t, err)
			assert.Equal(t, "Learn Node.js", todo.Task, "empty task leaves text untouched")
			assert.False(t, todo.Completed, "explicit false is applied")

			todo, err = repo.UpdateTodo(ctx, 1, models.TodoPatch{Task: strPtr("Learn Go")})
			require.NoError(t, err)
			assert.Equal(t, "Learn Go", todo.Task)

			stored, err := repo.GetTodo(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, todo, stored)
		})
	}
}

func TestRepo_UpdateMissing(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := repo.UpdateTodo(ctx, 9999, models.TodoPatch{Completed: boolPtr(true)})
			assert.ErrorIs(t, err, models.ErrTodoNotFound)

			todos, err := repo.ListTodos(ctx, boolPtr(true))
			require.NoError(t, err)
			assert.Empty(t, todos)
		})
	}
}

func TestRepo_CompleteAllIdempotent(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, repo.CompleteAllTodos(ctx))
			once, err := repo.ListTodos(ctx, nil)
			require.NoError(t, err)

			require.NoError(t, repo.CompleteAllTodos(ctx))
			twice, err := repo.ListTodos(ctx, nil)
			require.NoError(t, err)

			assert.Equal(t, once, twice)
			for _, todo := range twice {
				assert.True(t, todo.Completed)
			}
		})
	}
}

func TestRepo_Delete(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := repo.CreateTodo(ctx, "Third", "low")
			require.NoError(t, err)

			require.NoError(t, repo.DeleteTodo(ctx, 2))
			assert.ErrorIs(t, repo.DeleteTodo(ctx, 2), models.ErrTodoNotFound)
			assert.ErrorIs(t, repo.DeleteTodo(ctx, 9999), models.ErrTodoNotFound)

			todos, err := repo.ListTodos(ctx, nil)
			require.NoError(t, err)
			assert.Equal(t, []int{1, 3}, ids(todos))

			_, err = repo.GetTodo(ctx, 2)
			assert.ErrorIs(t, err, models.ErrTodoNotFound)
		})
	}
}

func TestRepo_ConcurrentCreates(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			const workers = 20

			var wg sync.WaitGroup
			results := make(chan int, workers)
			for i := 0; i < workers; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					todo, err := repo.CreateTodo(ctx, fmt.Sprintf("task %d", i), "medium")
					if assert.NoError(t, err) {
						results <- todo.ID
					}
				}(i)
			}
			wg.Wait()
			close(results)

			seen := map[int]bool{}
			for id := range results {
				assert.False(t, seen[id], "duplicate id %d", id)
				seen[id] = true
			}
			assert.Len(t, seen, workers)

			count, err := repo.CountTodos(ctx)
			require.NoError(t, err)
			assert.Equal(t, 2+workers, count)
		})
	}
}

func TestMemoryRepo_ReturnsCopies(t *testing.T) {
	repo := NewMemoryRepo(models.SeedTodos())
	ctx := context.Background()

	todo, err := repo.GetTodo(ctx, 1)
	require.NoError(t, err)
	todo.Task = "mutated"

	stored, err := repo.GetTodo(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Learn Node.js", stored.Task)
}

func TestNewMemoryRepo_CounterStartsPastSeed(t *testing.T) {
	repo := NewMemoryRepo([]*models.Todo{{ID: 7, Task: "seven", Priority: "low"}})

	todo, err := repo.CreateTodo(context.Background(), "next", "medium")
	require.NoError(t, err)
	assert.Equal(t, 8, todo.ID)
}
