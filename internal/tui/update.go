package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetWidth(msg.Width)
		return m, nil

	case todosLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.todos = msg.todos
		m.clampCursor()
		return m, nil

	case mutationDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = ""
		} else {
			m.err = nil
			m.status = msg.status
		}
		return m, m.loadTodos()

	case tea.KeyPressMsg:
		switch m.mode {
		case AddMode:
			return m.updateAdd(msg)
		case ConfirmDeleteMode:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateNormal(msg)
		}
	}

	return m, nil
}

func (m Model) updateNormal(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.todos)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Add):
		m.mode = AddMode
		m.input.Reset()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Toggle):
		if t := m.selected(); t != nil {
			return m, m.toggleTodo(t)
		}

	case key.Matches(msg, m.keys.Delete):
		if m.selected() != nil {
			m.mode = ConfirmDeleteMode
		}

	case key.Matches(msg, m.keys.CompleteAll):
		return m, m.completeAll()

	case key.Matches(msg, m.keys.CycleFilter):
		m.filter = m.filter.Next()
		m.cursor = 0
		return m, m.loadTodos()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadTodos()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	}

	return m, nil
}

func (m Model) updateAdd(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "esc":
		m.mode = NormalMode
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		task := strings.TrimSpace(m.input.Value())
		m.mode = NormalMode
		m.input.Blur()
		if task == "" {
			return m, nil
		}
		return m, m.createTodo(task)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.mode = NormalMode
		if t := m.selected(); t != nil {
			return m, m.deleteTodo(t.ID)
		}
	case key.Matches(msg, m.keys.Cancel):
		m.mode = NormalMode
	}
	return m, nil
}

// clampCursor keeps the cursor on a todo after the list shrinks
func (m *Model) clampCursor() {
	if m.cursor >= len(m.todos) {
		m.cursor = len(m.todos) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
