package styles

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todos/internal/config/colors"
	"github.com/thenoetrevino/todos/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 60

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Task:", "Priority:"
	ValueStyle    lipgloss.Style // For field values

	// Status styles
	DoneStyle    lipgloss.Style
	PendingStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	scheme colors.ColorScheme
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(c colors.ColorScheme) {
	scheme = c

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Accent)).
		Padding(0, 1).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Normal))

	DoneStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Done))

	PendingStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Pending))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.InfoFg)).
		Background(lipgloss.Color(c.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.ErrorFg)).
		Background(lipgloss.Color(c.ErrorBg)).
		Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.WarningFg)).
		Background(lipgloss.Color(c.WarningBg)).
		Padding(0, 1)
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// Checkbox renders the completion marker of a todo
func Checkbox(completed bool) string {
	if completed {
		return DoneStyle.Render("[x]")
	}
	return PendingStyle.Render("[ ]")
}

// RenderPriority renders a priority name in its configured color
func RenderPriority(priority string) string {
	return ColoredText(priority, scheme.PriorityColor(priority))
}

// RenderTodoLine renders a todo as a single list row
// Format: "[x] #3 Buy milk (medium)"
func RenderTodoLine(t *models.Todo) string {
	return fmt.Sprintf("%s %s %s %s",
		Checkbox(t.Completed),
		SubtitleStyle.Render(fmt.Sprintf("#%d", t.ID)),
		ValueStyle.Render(t.Task),
		SubtitleStyle.Render("(")+RenderPriority(t.Priority)+SubtitleStyle.Render(")"))
}

// RenderTodoCard renders every field of a todo inside a bordered card
func RenderTodoCard(t *models.Todo) string {
	status := PendingStyle.Render("pending")
	if t.Completed {
		status = DoneStyle.Render("completed")
	}

	content := TitleStyle.Render(fmt.Sprintf("Todo #%d", t.ID)) + "\n\n" +
		LabelStyle.Render("Task:     ") + ValueStyle.Render(t.Task) + "\n" +
		LabelStyle.Render("Priority: ") + RenderPriority(t.Priority) + "\n" +
		LabelStyle.Render("Status:   ") + status

	return CardStyle.Render(content)
}
