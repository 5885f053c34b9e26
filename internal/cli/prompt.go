package cli

import (
	"fmt"

	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todos/internal/config/colors"
	"github.com/thenoetrevino/todos/internal/models"
)

// ConfirmFunc asks the user to confirm deleting t
type ConfirmFunc func(t *models.Todo, scheme colors.ColorScheme) (bool, error)

// ConfirmDelete is the prompt used by the delete command. Tests replace it.
var ConfirmDelete ConfirmFunc = confirmDeleteForm

func confirmDeleteForm(t *models.Todo, scheme colors.ColorScheme) (bool, error) {
	confirmed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete todo #%d: '%s'?", t.ID, t.Task)).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&confirmed),
		),
	).WithTheme(confirmTheme(scheme))

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

// confirmTheme colors the prompt with the configured scheme
func confirmTheme(scheme colors.ColorScheme) huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		accent := lipgloss.Color(scheme.Accent)
		subtle := lipgloss.Color(scheme.Subtle)
		normal := lipgloss.Color(scheme.Normal)
		title := lipgloss.Color(scheme.Title)

		t.Focused.Base = t.Focused.Base.BorderForeground(accent)
		t.Focused.Title = t.Focused.Title.Foreground(title).Bold(true)
		t.Focused.FocusedButton = t.Focused.FocusedButton.
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(accent).
			Bold(true)
		t.Focused.BlurredButton = t.Focused.BlurredButton.
			Foreground(normal).
			Background(subtle)

		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())

		return t
	})
}
