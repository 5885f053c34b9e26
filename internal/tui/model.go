// Package tui implements the interactive todo board.
package tui

import (
	"context"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todos/internal/config"
	"github.com/thenoetrevino/todos/internal/models"
)

// Mode is the interaction mode of the board
type Mode int

const (
	NormalMode Mode = iota
	AddMode
	ConfirmDeleteMode
)

// Filter selects which todos the board lists
type Filter int

const (
	FilterAll Filter = iota
	FilterPending
	FilterDone
)

// String returns the label shown in the board header
func (f Filter) String() string {
	switch f {
	case FilterPending:
		return "pending"
	case FilterDone:
		return "done"
	default:
		return "all"
	}
}

// Completed returns the list filter sent to the server
func (f Filter) Completed() *bool {
	switch f {
	case FilterPending:
		v := false
		return &v
	case FilterDone:
		v := true
		return &v
	default:
		return nil
	}
}

// Next cycles all → pending → done → all
func (f Filter) Next() Filter {
	return (f + 1) % 3
}

// Model represents the board state
type Model struct {
	ctx    context.Context
	api    TodoAPI
	keys   KeyMap
	styles Styles
	help   help.Model
	input  textinput.Model

	todos    []*models.Todo
	cursor   int
	filter   Filter
	mode     Mode
	showHelp bool
	loading  bool

	status string
	err    error

	width  int
	height int
}

// New creates a board over api using the key mappings and theme of cfg
func New(ctx context.Context, api TodoAPI, cfg *config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.Prompt = "> "
	ti.CharLimit = 200

	return Model{
		ctx:     ctx,
		api:     api,
		keys:    NewKeyMap(cfg.KeyMappings),
		styles:  NewStyles(cfg.ColorScheme),
		help:    help.New(),
		input:   ti,
		loading: true,
	}
}

// Init loads the first page of todos
func (m Model) Init() tea.Cmd {
	return m.loadTodos()
}

// Todos returns the todos currently shown
func (m Model) Todos() []*models.Todo {
	return m.todos
}

// Cursor returns the index of the selected todo
func (m Model) Cursor() int {
	return m.cursor
}

// Mode returns the current interaction mode
func (m Model) Mode() Mode {
	return m.mode
}

// Filter returns the active list filter
func (m Model) Filter() Filter {
	return m.filter
}

// Err returns the last API error, if any
func (m Model) Err() error {
	return m.err
}

// Status returns the last confirmation message
func (m Model) Status() string {
	return m.status
}

// selected returns the todo under the cursor, or nil for an empty list
func (m Model) selected() *models.Todo {
	if m.cursor < 0 || m.cursor >= len(m.todos) {
		return nil
	}
	return m.todos[m.cursor]
}
