package components

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/trackmaster/trackmaster/internal/models"
	"github.com/trackmaster/trackmaster/internal/tui/theme"
)

// CardProps is everything a task card needs to render
type CardProps struct {
	Task      *models.Task
	Assignees []string
	Selected  bool
	Grabbed   bool
	Expanded  bool
	// PreviewLength is the collapsed description length; 0 means DefaultPreviewLength
	PreviewLength int
	Width         int
}

// TruncateDescription shortens desc to limit characters unless expanded.
// The returned label is "more" or "less" when the description is long enough
// to toggle, and "" otherwise.
func TruncateDescription(desc string, limit int, expanded bool) (string, string) {
	if limit <= 0 {
		limit = DefaultPreviewLength
	}
	runes := []rune(desc)
	if len(runes) <= limit {
		return desc, ""
	}
	if expanded {
		return desc, lessLabel
	}
	return strings.TrimRight(string(runes[:limit]), " ") + "…", moreLabel
}

// RenderTask renders a single task as a card
//
//	┏━━━━━━━━━━━━━━━━━━━━━━━━━━┓
//	┃ {Title}               🔒 ┃
//	┃ Ana Rojas, Luis Vargas   ┃
//	┃ {description preview}…   ┃
//	┃ [more]                   ┃
//	┃ 1 📄 spec.pdf 2 🔗 Board  ┃
//	┗━━━━━━━━━━━━━━━━━━━━━━━━━━┛
func RenderTask(props CardProps) string {
	bg := theme.TaskBg
	if props.Selected || props.Grabbed {
		bg = theme.SelectedBg
	}
	inner := max(props.Width-2, 10)
	base := lipgloss.NewStyle().Background(lipgloss.Color(bg)).Width(inner)

	lines := []string{renderCardTitle(props.Task, bg, inner)}

	assignees := strings.Join(props.Assignees, ", ")
	lines = append(lines, base.Foreground(lipgloss.Color(theme.AssigneeChip)).Render(assignees))

	desc, toggle := TruncateDescription(props.Task.Description, props.PreviewLength, props.Expanded)
	if desc != "" {
		lines = append(lines, base.Foreground(lipgloss.Color(theme.Normal)).Render(desc))
	}
	if toggle != "" {
		lines = append(lines, base.Foreground(lipgloss.Color(theme.Subtle)).Italic(true).Render("["+toggle+"]"))
	}
	if chips := renderResourceChips(props.Task.Resources, bg); chips != "" {
		lines = append(lines, base.Render(chips))
	}

	border := theme.TaskBorder
	switch {
	case props.Grabbed:
		border = theme.GrabBorder
	case props.Selected:
		border = theme.SelectedBorder
	}

	return TaskStyle.
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg)).
		Width(props.Width).
		Render(strings.Join(lines, "\n"))
}

func renderCardTitle(task *models.Task, bg string, width int) string {
	var lock string
	if task.IsLocked() {
		lock = " " + LockedStyle.Background(lipgloss.Color(bg)).Render("✔ reviewed")
	}

	title := task.Title
	room := width - lipgloss.Width(lock)
	if r := []rune(title); room > 1 && len(r) > room {
		title = string(r[:room-1]) + "…"
	}

	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Normal)).
		Background(lipgloss.Color(bg)).
		Width(width).
		Render(title + lock)
}

// renderResourceChips renders each resource as "<n> <glyph> <name>"; n is the key that opens it
func renderResourceChips(resources []models.Resource, bg string) string {
	if len(resources) == 0 {
		return ""
	}
	chipStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ResourceChip)).
		Background(lipgloss.Color(bg))

	chips := make([]string, 0, len(resources))
	for i, r := range resources {
		chips = append(chips, chipStyle.Render(strconv.Itoa(i+1)+" "+r.Style().Glyph+" "+r.DisplayName()))
	}
	return strings.Join(chips, "  ")
}
