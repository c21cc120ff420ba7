package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/trackmaster/trackmaster/internal/models"
	"github.com/trackmaster/trackmaster/internal/tui/theme"
)

// ColumnProps is everything a column needs to render
type ColumnProps struct {
	Column  models.Column
	Members models.MemberDirectory

	// Focused is true for the column holding the cursor
	Focused     bool
	SelectedIdx int
	// GrabbedID is the card being dragged, 0 when none
	GrabbedID int
	// DropTarget highlights the column a dragged card will land in
	DropTarget bool

	IsExpanded    func(taskID int) bool
	PreviewLength int

	Offset int
	Width  int
	Height int
}

// RenderColumn renders a complete column with its title and tasks.
// Cards have different heights, so the visible window is computed here:
// it starts at Offset and slides down until the selected card fits.
// The offset actually used is returned so the caller can keep it.
//
// Layout:
//
//	{Column Title} ({count})
//	▲ more above
//	{Task 1}
//	{Task 2}
//	▼ more below
func RenderColumn(props ColumnProps) (string, int) {
	tasks := props.Column.Tasks
	header := TitleStyle.Render(fmt.Sprintf("%s (%d)", props.Column.Title, len(tasks)))
	inner := max(props.Width-4, 12)

	var content string
	offset := 0
	if len(tasks) == 0 {
		content = header + "\n" + lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Padding(1, 0).
			Render(EmptyColumnText)
	} else {
		cards := make([]string, len(tasks))
		for i, task := range tasks {
			cards[i] = RenderTask(CardProps{
				Task:          task,
				Assignees:     props.Members.Names(task.AssignedTo),
				Selected:      props.Focused && i == props.SelectedIdx,
				Grabbed:       task.ID == props.GrabbedID,
				Expanded:      props.IsExpanded != nil && props.IsExpanded(task.ID),
				PreviewLength: props.PreviewLength,
				Width:         inner,
			})
		}

		available := props.Height - columnBorderOverhead - headerLines - indicatorLines
		focus := -1
		if props.Focused {
			focus = props.SelectedIdx
		}
		var end int
		offset, end = visibleWindow(cards, props.Offset, focus, available)

		var b strings.Builder
		b.WriteString(header + "\n")
		if offset > 0 {
			b.WriteString(IndicatorStyle.Width(inner).Render("▲ more above"))
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(cards[offset:end], "\n"))
		if end < len(cards) {
			b.WriteString("\n" + IndicatorStyle.Width(inner).Render("▼ more below"))
		}
		content = b.String()
	}

	border := theme.ColumnBorder
	switch {
	case props.DropTarget:
		border = theme.DropTarget
	case props.Focused:
		border = theme.SelectedBorder
	}

	style := ColumnStyle.BorderForeground(lipgloss.Color(border)).Width(props.Width)
	if props.Height > 0 {
		style = style.Height(props.Height - columnBorderOverhead).MaxHeight(props.Height)
	}
	return style.Render(content), offset
}

// visibleWindow picks [start, end) of cards fitting in height lines,
// starting at offset but moved so that focus (when >= 0) is inside.
func visibleWindow(cards []string, offset, focus, height int) (int, int) {
	if len(cards) == 0 {
		return 0, 0
	}
	start := max(min(offset, len(cards)-1), 0)
	if focus >= 0 && focus < start {
		start = focus
	}
	for {
		end := fitFrom(cards, start, height)
		if focus < end || start >= focus {
			return start, end
		}
		start++
	}
}

// fitFrom returns the end of the run of cards starting at start that fits in height.
// At least one card is always shown.
func fitFrom(cards []string, start, height int) int {
	used := 0
	end := start
	for end < len(cards) {
		h := lipgloss.Height(cards[end])
		if end > start && used+h > height {
			break
		}
		used += h
		end++
	}
	return end
}
