package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/todos/internal/cli/styles"
	"github.com/thenoetrevino/todos/internal/models"
)

// MarkdownWidth is the word-wrap width of --markdown output
const MarkdownWidth = 80

// OutputFormatter handles the output modes: JSON, quiet, markdown and human-readable
type OutputFormatter struct {
	JSON     bool
	Quiet    bool
	Markdown bool
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Printf("%d\n", idGetter.GetID())
			return nil
		}
		if todos, ok := data.([]*models.Todo); ok {
			for _, t := range todos {
				fmt.Printf("%d\n", t.ID)
			}
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	if f.Markdown {
		if todos, ok := data.([]*models.Todo); ok {
			return f.renderMarkdown(todos)
		}
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Message prints a confirmation line in human mode. JSON and quiet modes
// print nothing so scripts only see data.
func (f *OutputFormatter) Message(msg string) {
	if f.JSON || f.Quiet {
		return
	}
	fmt.Println(styles.SuccessStyle.Render("✓") + " " + msg)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "%s %s\n", styles.ErrorStyle.Render("Error"), message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "%s %s\n", styles.WarningStyle.Render("Hint"), suggestion)
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	switch v := data.(type) {
	case *models.Todo:
		fmt.Println(styles.RenderTodoCard(v))
	case []*models.Todo:
		if len(v) == 0 {
			fmt.Println(styles.SubtitleStyle.Render("No todos"))
			return nil
		}
		for _, t := range v {
			fmt.Println(styles.RenderTodoLine(t))
		}
	default:
		fmt.Printf("%+v\n", data)
	}
	return nil
}

// TodosMarkdown renders todos as a markdown table
func TodosMarkdown(todos []*models.Todo) string {
	var b strings.Builder
	b.WriteString("# Todos\n\n")
	if len(todos) == 0 {
		b.WriteString("_No todos_\n")
		return b.String()
	}

	b.WriteString("| ID | Task | Priority | Done |\n")
	b.WriteString("|---:|------|----------|:----:|\n")
	for _, t := range todos {
		done := " "
		if t.Completed {
			done = "✓"
		}
		task := strings.ReplaceAll(t.Task, "|", `\|`)
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", t.ID, task, t.Priority, done)
	}
	return b.String()
}

func (f *OutputFormatter) renderMarkdown(todos []*models.Todo) error {
	md := TodosMarkdown(todos)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(MarkdownWidth),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	fmt.Print(out)
	return nil
}
