package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todos/internal/models"
)

// todosLoadedMsg carries the result of a list request
type todosLoadedMsg struct {
	todos []*models.Todo
	err   error
}

// mutationDoneMsg reports a finished write; the board reloads afterwards
type mutationDoneMsg struct {
	status string
	err    error
}

func (m Model) loadTodos() tea.Cmd {
	api, ctx, completed := m.api, m.ctx, m.filter.Completed()
	return func() tea.Msg {
		todos, err := api.List(ctx, completed)
		return todosLoadedMsg{todos: todos, err: err}
	}
}

func (m Model) createTodo(task string) tea.Cmd {
	api, ctx := m.api, m.ctx
	return func() tea.Msg {
		t, err := api.Create(ctx, task, "")
		if err != nil {
			return mutationDoneMsg{err: err}
		}
		return mutationDoneMsg{status: fmt.Sprintf("Added #%d", t.ID)}
	}
}

func (m Model) toggleTodo(t *models.Todo) tea.Cmd {
	api, ctx := m.api, m.ctx
	id, completed := t.ID, !t.Completed
	return func() tea.Msg {
		_, err := api.Update(ctx, id, models.TodoPatch{Completed: &completed})
		if err != nil {
			return mutationDoneMsg{err: err}
		}
		if completed {
			return mutationDoneMsg{status: fmt.Sprintf("Completed #%d", id)}
		}
		return mutationDoneMsg{status: fmt.Sprintf("Reopened #%d", id)}
	}
}

func (m Model) completeAll() tea.Cmd {
	api, ctx := m.api, m.ctx
	return func() tea.Msg {
		if err := api.CompleteAll(ctx); err != nil {
			return mutationDoneMsg{err: err}
		}
		return mutationDoneMsg{status: "Completed all todos"}
	}
}

func (m Model) deleteTodo(id int) tea.Cmd {
	api, ctx := m.api, m.ctx
	return func() tea.Msg {
		if err := api.Delete(ctx, id); err != nil {
			return mutationDoneMsg{err: err}
		}
		return mutationDoneMsg{status: fmt.Sprintf("Deleted #%d", id)}
	}
}
