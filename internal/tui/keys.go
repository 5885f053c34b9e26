package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/todos/internal/config"
)

// KeyMap holds the board's key bindings
type KeyMap struct {
	Add         key.Binding
	Toggle      key.Binding
	Delete      key.Binding
	CompleteAll key.Binding
	CycleFilter key.Binding
	Refresh     key.Binding
	Up          key.Binding
	Down        key.Binding
	Help        key.Binding
	Quit        key.Binding

	// Prompt keys
	Confirm key.Binding
	Cancel  key.Binding
	Submit  key.Binding
}

// NewKeyMap builds bindings from the configured key mappings.
// Arrow keys always move the cursor in addition to the configured keys.
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys(km.AddTodo),
			key.WithHelp(km.AddTodo, "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(km.ToggleTodo),
			key.WithHelp(km.ToggleTodo, "toggle"),
		),
		Delete: key.NewBinding(
			key.WithKeys(km.DeleteTodo),
			key.WithHelp(km.DeleteTodo, "delete"),
		),
		CompleteAll: key.NewBinding(
			key.WithKeys(km.CompleteAll),
			key.WithHelp(km.CompleteAll, "complete all"),
		),
		CycleFilter: key.NewBinding(
			key.WithKeys(km.CycleFilter),
			key.WithHelp(km.CycleFilter, "filter"),
		),
		Refresh: key.NewBinding(
			key.WithKeys(km.Refresh),
			key.WithHelp(km.Refresh, "refresh"),
		),
		Up: key.NewBinding(
			key.WithKeys(km.PrevTodo, "up"),
			key.WithHelp(km.PrevTodo+"/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(km.NextTodo, "down"),
			key.WithHelp(km.NextTodo+"/↓", "down"),
		),
		Help: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n/esc", "cancel"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Delete, k.CycleFilter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Add, k.Toggle, k.Delete, k.CompleteAll},
		{k.CycleFilter, k.Refresh, k.Help, k.Quit},
	}
}
