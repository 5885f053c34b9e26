package client

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todos/internal/app"
	"github.com/thenoetrevino/todos/internal/database"
	"github.com/thenoetrevino/todos/internal/models"
	"github.com/thenoetrevino/todos/internal/server"
)

func boolPtr(b bool) *bool {
	return &b
}

func strPtr(s string) *string {
	return &s
}

// setupClient returns a client wired to a real server over a seeded collection
func setupClient(t *testing.T) *Client {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	application := app.New(database.NewMemoryRepo(models.SeedTodos()), app.WithLogger(logger))
	srv, err := server.NewServer("127.0.0.1:0", application)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		ts.Close()
		_ = srv.Shutdown()
		_ = application.Close()
	})

	return New(ts.URL, time.Second)
}

func TestClient_List(t *testing.T) {
	c := setupClient(t)
	ctx := context.Background()

	todos, err := c.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "Learn Node.js", todos[0].Task)

	_, err = c.Update(ctx, 2, models.TodoPatch{Completed: boolPtr(true)})
	require.NoError(t, err)

	done, err := c.List(ctx, boolPtr(true))
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, 2, done[0].ID)

	pending, err := c.List(ctx, boolPtr(false))
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, 1, pending[0].ID)
}

func TestClient_CreateAndGet(t *testing.T) {
	c := setupClient(t)
	ctx := context.Background()

	created, err := c.Create(ctx, "Buy milk", "")
	require.NoError(t, err)
	assert.Equal(t, &models.Todo{ID: 3, Task: "Buy milk", Priority: "medium"}, created)

	high, err := c.Create(ctx, "Pay rent", "high")
	require.NoError(t, err)
	assert.Equal(t, "high", high.Priority)

	got, err := c.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestClient_Update(t *testing.T) {
	c := setupClient(t)
	ctx := context.Background()

	updated, err := c.Update(ctx, 1, models.TodoPatch{Task: strPtr("Learn Go")})
	require.NoError(t, err)
	assert.Equal(t, "Learn Go", updated.Task)
	assert.False(t, updated.Completed)

	updated, err = c.Update(ctx, 1, models.TodoPatch{Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, "Learn Go", updated.Task)
	assert.True(t, updated.Completed)

	// false must be sent, not dropped
	updated, err = c.Update(ctx, 1, models.TodoPatch{Completed: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, updated.Completed)
}

func TestClient_NotFound(t *testing.T) {
	c := setupClient(t)
	ctx := context.Background()

	_, err := c.Get(ctx, 9999)
	assert.ErrorIs(t, err, models.ErrTodoNotFound)

	_, err = c.Update(ctx, 9999, models.TodoPatch{Completed: boolPtr(true)})
	assert.ErrorIs(t, err, models.ErrTodoNotFound)

	err = c.Delete(ctx, 9999)
	assert.ErrorIs(t, err, models.ErrTodoNotFound)
}

func TestClient_CompleteAllAndDelete(t *testing.T) {
	c := setupClient(t)
	ctx := context.Background()

	require.NoError(t, c.CompleteAll(ctx))
	todos, err := c.List(ctx, boolPtr(true))
	require.NoError(t, err)
	assert.Len(t, todos, 2)

	require.NoError(t, c.Delete(ctx, 1))
	todos, err = c.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, 2, todos[0].ID)
}

func TestClient_EmptyListIsNotNil(t *testing.T) {
	c := setupClient(t)
	ctx := context.Background()

	require.NoError(t, c.Delete(ctx, 1))
	require.NoError(t, c.Delete(ctx, 2))

	todos, err := c.List(ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Empty(t, todos)
}

func TestClient_TrimsTrailingSlash(t *testing.T) {
	c := New("http://localhost:3000/", 0)
	assert.Equal(t, "http://localhost:3000", c.BaseURL())
}

func TestClient_UnexpectedStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/todos/1":
			http.NotFound(w, r)
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))
	defer ts.Close()

	c := New(ts.URL, time.Second)

	_, err := c.List(context.Background(), nil)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, "boom", statusErr.Body)

	// a 404 without the todo message is a routing problem, not a missing todo
	_, err = c.Get(context.Background(), 1)
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.False(t, errors.Is(err, models.ErrTodoNotFound))
}

func TestClient_ConnectionRefused(t *testing.T) {
	lc := net.ListenConfig{}
	l, err := lc.Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	c := New("http://"+addr, time.Second)
	_, err = c.List(context.Background(), nil)

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, ErrConnectionRefused, serverErr.Code)
	assert.Contains(t, serverErr.Error(), "todos serve")
}

func TestClient_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer ts.Close()

	c := New(ts.URL, 50*time.Millisecond)
	_, err := c.List(context.Background(), nil)

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, ErrTimeout, serverErr.Code)
}

func TestClassifyServerError(t *testing.T) {
	assert.Nil(t, ClassifyServerError("http://x", nil))

	err := ClassifyServerError("http://x", errors.New("no such host"))
	assert.Equal(t, ErrServerUnreachable, err.Code)
	assert.Equal(t, "Server unreachable at http://x. Check --server or TODOS_SERVER", err.Error())

	err = ClassifyServerError("http://x", context.DeadlineExceeded)
	assert.Equal(t, ErrTimeout, err.Code)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
