package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todos/internal/config/colors"
)

// Styles holds the lipgloss styles of the board
type Styles struct {
	Title    lipgloss.Style
	Filter   lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
	Pending  lipgloss.Style
	Subtle   lipgloss.Style
	Prompt   lipgloss.Style
	Info     lipgloss.Style
	Error    lipgloss.Style

	scheme colors.ColorScheme
}

// NewStyles builds the board styles from a color scheme
func NewStyles(c colors.ColorScheme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Title)),
		Filter: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Accent)),
		Item: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Normal)).
			PaddingLeft(2),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Normal)).
			Background(lipgloss.Color(c.SelectedBg)).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(c.SelectedBorder)).
			PaddingLeft(1),
		Done: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Done)),
		Pending: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Pending)),
		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Subtle)),
		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.WarningFg)).
			Background(lipgloss.Color(c.WarningBg)).
			Padding(0, 1),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.InfoFg)).
			Background(lipgloss.Color(c.InfoBg)).
			Padding(0, 1),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.ErrorFg)).
			Background(lipgloss.Color(c.ErrorBg)).
			Padding(0, 1),
		scheme: c,
	}
}

// Priority renders a priority name in its configured color
func (s Styles) Priority(priority string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.scheme.PriorityColor(priority))).
		Render(priority)
}
