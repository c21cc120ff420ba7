package components

import (
	"strconv"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/trackmaster/trackmaster/internal/models"
	"github.com/trackmaster/trackmaster/internal/tui/theme"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderMarkdown renders a description as markdown, falling back to the raw text
func RenderMarkdown(text string, width int) string {
	if strings.TrimSpace(text) == "" {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Render("No description")
	}
	renderer, err := getRenderer(max(width, 20))
	if err != nil {
		return text
	}
	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}

// TaskViewProps describes the task detail overlay
type TaskViewProps struct {
	Task      *models.Task
	Assignees []string
	Width     int
}

// RenderTaskView renders the full task: status, assignees, markdown
// description and numbered resources.
func RenderTaskView(props TaskViewProps) string {
	t := props.Task
	inner := max(props.Width-6, 20)
	label := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	var b strings.Builder
	b.WriteString(TitleStyle.Render(t.Title))
	if t.IsLocked() {
		b.WriteString("  " + LockedStyle.Render("✔ reviewed"))
	}
	b.WriteString("\n\n")
	b.WriteString(label.Render("Status     ") + t.Status.Title() + "\n")
	b.WriteString(label.Render("Assignees  ") + strings.Join(props.Assignees, ", ") + "\n\n")
	b.WriteString(RenderMarkdown(t.Description, inner))

	if len(t.Resources) > 0 {
		b.WriteString("\n\n" + label.Render("Resources") + "\n")
		for i, r := range t.Resources {
			style := r.Style()
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ResourceChip)).
				Render(strconv.Itoa(i+1)+" "+style.Glyph+" "+r.DisplayName()) +
				label.Render("  "+style.Label+" · "+r.URL) + "\n")
		}
	}
	b.WriteString("\n" + label.Render("1-9: open resource  esc: close"))

	return DetailBoxStyle.Width(props.Width).Render(b.String())
}
