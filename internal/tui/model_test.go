package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todos/internal/config"
	"github.com/thenoetrevino/todos/internal/database"
	"github.com/thenoetrevino/todos/internal/models"
)

// fakeAPI serves the board from an in-memory repository
type fakeAPI struct {
	repo    *database.MemoryRepo
	listErr error
}

func (f *fakeAPI) List(ctx context.Context, completed *bool) ([]*models.Todo, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.repo.ListTodos(ctx, completed)
}

func (f *fakeAPI) Create(ctx context.Context, task, priority string) (*models.Todo, error) {
	if priority == "" {
		priority = models.DefaultPriority
	}
	return f.repo.CreateTodo(ctx, task, priority)
}

func (f *fakeAPI) Update(ctx context.Context, id int, patch models.TodoPatch) (*models.Todo, error) {
	return f.repo.UpdateTodo(ctx, id, patch)
}

func (f *fakeAPI) CompleteAll(ctx context.Context) error {
	return f.repo.CompleteAllTodos(ctx)
}

func (f *fakeAPI) Delete(ctx context.Context, id int) error {
	return f.repo.DeleteTodo(ctx, id)
}

// setupTestModel returns a board that has already loaded the seeded todos
func setupTestModel(t *testing.T) (Model, *fakeAPI) {
	t.Helper()

	api := &fakeAPI{repo: database.NewMemoryRepo(models.SeedTodos())}
	m := New(context.Background(), api, config.Default())
	m = run(t, m, m.Init())

	require.Len(t, m.Todos(), 2)
	return m, api
}

// run executes a board command and feeds its message back into the model,
// following the reload that every mutation triggers.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()

	for cmd != nil {
		msg := cmd()
		switch msg.(type) {
		case todosLoadedMsg, mutationDoneMsg:
		default:
			t.Fatalf("unexpected message %T", msg)
		}
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m
}

// press sends a key and returns the model with the command it produced
func press(m Model, k tea.Key) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyPressMsg(k))
	return next.(Model), cmd
}

func char(r rune) tea.Key {
	return tea.Key{Text: string(r), Code: r}
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m, _ = press(m, char(r))
	}
	return m
}

func TestInit_LoadsTodos(t *testing.T) {
	m, _ := setupTestModel(t)

	assert.Equal(t, "Learn Node.js", m.Todos()[0].Task)
	assert.Equal(t, 0, m.Cursor())
	assert.Equal(t, NormalMode, m.Mode())
	assert.NoError(t, m.Err())
}

func TestNavigation(t *testing.T) {
	m, _ := setupTestModel(t)

	m, _ = press(m, tea.Key{Code: tea.KeyDown})
	assert.Equal(t, 1, m.Cursor())

	// stops at the last todo
	m, _ = press(m, char('j'))
	assert.Equal(t, 1, m.Cursor())

	m, _ = press(m, char('k'))
	assert.Equal(t, 0, m.Cursor())

	m, _ = press(m, tea.Key{Code: tea.KeyUp})
	assert.Equal(t, 0, m.Cursor())
}

func TestSpaceTogglesCompletion(t *testing.T) {
	m, api := setupTestModel(t)

	m, cmd := press(m, tea.Key{Code: tea.KeySpace, Text: " "})
	require.NotNil(t, cmd)
	m = run(t, m, cmd)

	stored, err := api.repo.GetTodo(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, stored.Completed)
	assert.True(t, m.Todos()[0].Completed)
	assert.Equal(t, "Completed #1", m.Status())

	m, cmd = press(m, tea.Key{Code: tea.KeySpace, Text: " "})
	m = run(t, m, cmd)
	assert.False(t, m.Todos()[0].Completed)
	assert.Equal(t, "Reopened #1", m.Status())
}

func TestCompleteAll(t *testing.T) {
	m, _ := setupTestModel(t)

	m, cmd := press(m, char('A'))
	require.NotNil(t, cmd)
	m = run(t, m, cmd)

	for _, td := range m.Todos() {
		assert.True(t, td.Completed)
	}
	assert.Equal(t, "Completed all todos", m.Status())
}

func TestDelete_Confirm(t *testing.T) {
	m, api := setupTestModel(t)

	m, _ = press(m, char('j'))
	m, cmd := press(m, char('d'))
	assert.Nil(t, cmd)
	assert.Equal(t, ConfirmDeleteMode, m.Mode())
	assert.Contains(t, m.View().Content, "Delete #2")

	m, cmd = press(m, char('y'))
	require.NotNil(t, cmd)
	m = run(t, m, cmd)

	assert.Equal(t, NormalMode, m.Mode())
	require.Len(t, m.Todos(), 1)
	assert.Equal(t, 1, m.Todos()[0].ID)
	// cursor follows the shrinking list
	assert.Equal(t, 0, m.Cursor())

	count, err := api.repo.CountTodos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDelete_Cancel(t *testing.T) {
	m, api := setupTestModel(t)

	m, _ = press(m, char('d'))
	m, cmd := press(m, tea.Key{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
	assert.Equal(t, NormalMode, m.Mode())

	count, err := api.repo.CountTodos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestAddTodo(t *testing.T) {
	m, api := setupTestModel(t)

	m, _ = press(m, char('a'))
	assert.Equal(t, AddMode, m.Mode())

	// keys that are bindings in normal mode are plain text while adding
	m = typeText(m, "Buy milk")

	m, cmd := press(m, tea.Key{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	m = run(t, m, cmd)

	assert.Equal(t, NormalMode, m.Mode())
	require.Len(t, m.Todos(), 3)
	assert.Equal(t, &models.Todo{ID: 3, Task: "Buy milk", Priority: "medium"}, m.Todos()[2])
	assert.Equal(t, "Added #3", m.Status())

	count, err := api.repo.CountTodos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestAddTodo_EmptyOrCancelled(t *testing.T) {
	m, api := setupTestModel(t)

	m, _ = press(m, char('a'))
	m, cmd := press(m, tea.Key{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, NormalMode, m.Mode())

	m, _ = press(m, char('a'))
	m = typeText(m, "never mind")
	m, cmd = press(m, tea.Key{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
	assert.Equal(t, NormalMode, m.Mode())

	count, err := api.repo.CountTodos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCycleFilter(t *testing.T) {
	m, api := setupTestModel(t)
	done := true
	_, err := api.repo.UpdateTodo(context.Background(), 2, models.TodoPatch{Completed: &done})
	require.NoError(t, err)

	m, cmd := press(m, char('f'))
	m = run(t, m, cmd)
	assert.Equal(t, FilterPending, m.Filter())
	require.Len(t, m.Todos(), 1)
	assert.Equal(t, 1, m.Todos()[0].ID)

	m, cmd = press(m, char('f'))
	m = run(t, m, cmd)
	assert.Equal(t, FilterDone, m.Filter())
	require.Len(t, m.Todos(), 1)
	assert.Equal(t, 2, m.Todos()[0].ID)

	m, cmd = press(m, char('f'))
	m = run(t, m, cmd)
	assert.Equal(t, FilterAll, m.Filter())
	assert.Len(t, m.Todos(), 2)
}

func TestFilter(t *testing.T) {
	assert.Nil(t, FilterAll.Completed())
	assert.False(t, *FilterPending.Completed())
	assert.True(t, *FilterDone.Completed())
	assert.Equal(t, FilterAll, FilterDone.Next())
	assert.Equal(t, "pending", FilterPending.String())
}

func TestRefresh_PicksUpExternalChanges(t *testing.T) {
	m, api := setupTestModel(t)

	_, err := api.repo.CreateTodo(context.Background(), "from elsewhere", "low")
	require.NoError(t, err)

	m, cmd := press(m, char('r'))
	m = run(t, m, cmd)
	assert.Len(t, m.Todos(), 3)
}

func TestAPIErrorIsShown(t *testing.T) {
	m, api := setupTestModel(t)

	api.listErr = errors.New("connection refused")
	m, cmd := press(m, char('r'))
	m = run(t, m, cmd)

	require.Error(t, m.Err())
	assert.Contains(t, m.View().Content, "connection refused")
	// the last good list stays on screen
	assert.Len(t, m.Todos(), 2)
}

func TestDeleteMissingTodoShowsError(t *testing.T) {
	m, api := setupTestModel(t)
	require.NoError(t, api.repo.DeleteTodo(context.Background(), 1))

	m, _ = press(m, char('d'))
	m, cmd := press(m, char('y'))
	m = run(t, m, cmd)

	assert.ErrorIs(t, m.Err(), models.ErrTodoNotFound)
	assert.Len(t, m.Todos(), 1)
}

func TestQuit(t *testing.T) {
	m, _ := setupTestModel(t)

	_, cmd := press(m, char('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = press(m, tea.Key{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCustomKeyMappings(t *testing.T) {
	cfg := config.Default()
	cfg.KeyMappings.CompleteAll = "c"

	api := &fakeAPI{repo: database.NewMemoryRepo(models.SeedTodos())}
	m := New(context.Background(), api, cfg)
	m = run(t, m, m.Init())

	m, cmd := press(m, char('c'))
	require.NotNil(t, cmd)
	m = run(t, m, cmd)
	for _, td := range m.Todos() {
		assert.True(t, td.Completed)
	}
}

func TestView(t *testing.T) {
	api := &fakeAPI{repo: database.NewMemoryRepo(models.SeedTodos())}
	m := New(context.Background(), api, config.Default())

	view := m.View()
	assert.True(t, view.AltScreen)
	assert.Contains(t, view.Content, "Loading...")

	m = run(t, m, m.Init())
	content := m.View().Content
	assert.Contains(t, content, "Learn Node.js")
	assert.Contains(t, content, "#2")
	assert.Contains(t, content, "[all]")

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	m, _ = press(m, char('?'))
	assert.Contains(t, m.View().Content, "complete all")

	require.NoError(t, api.repo.DeleteTodo(context.Background(), 1))
	require.NoError(t, api.repo.DeleteTodo(context.Background(), 2))
	m, cmd := press(m, char('r'))
	m = run(t, m, cmd)
	assert.True(t, strings.Contains(m.View().Content, "No todos"))
}
