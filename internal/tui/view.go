package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todos/internal/models"
)

// View renders the board
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.Content = m.render()
	return view
}

func (m Model) render() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Todos"))
	b.WriteString("  ")
	b.WriteString(m.styles.Filter.Render("[" + m.filter.String() + "]"))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.styles.Subtle.Render("Loading..."))
		b.WriteString("\n")
	case len(m.todos) == 0:
		b.WriteString(m.styles.Subtle.Render("No todos"))
		b.WriteString("\n")
	default:
		for i, t := range m.todos {
			b.WriteString(m.renderTodo(t, i == m.cursor))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")

	switch m.mode {
	case AddMode:
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case ConfirmDeleteMode:
		if t := m.selected(); t != nil {
			b.WriteString(m.styles.Prompt.Render(fmt.Sprintf("Delete #%d '%s'? (y/n)", t.ID, t.Task)))
			b.WriteString("\n")
		}
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.styles.Info.Render(m.status))
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}

	return b.String()
}

func (m Model) renderTodo(t *models.Todo, selected bool) string {
	check := m.styles.Pending.Render("[ ]")
	if t.Completed {
		check = m.styles.Done.Render("[x]")
	}

	line := fmt.Sprintf("%s #%d %s (%s)", check, t.ID, t.Task, m.styles.Priority(t.Priority))
	if selected {
		return m.styles.Selected.Render(line)
	}
	return m.styles.Item.Render(line)
}
