package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/trackmaster/trackmaster/internal/models"
)

// HeaderProps describes the sprint header
type HeaderProps struct {
	Sprints    []models.Sprint
	SelectedID int
	// User is the session label, e.g. "Ana (student)"
	User  string
	Width int
}

// RenderTabs renders a tab bar with the given tab names
// selectedIdx indicates which tab is active (0-indexed, -1 for none)
// width is the total width to fill with the tab gap
//
// Layout:
//
//	╭──────╮╭──────╮
//	│ Tab1 ││ Tab2 │────────────────── right
func RenderTabs(tabs []string, selectedIdx int, width int, right string) string {
	var renderedTabs []string

	for i, tabName := range tabs {
		if i == selectedIdx {
			renderedTabs = append(renderedTabs, ActiveTabStyle.Render(tabName))
		} else {
			renderedTabs = append(renderedTabs, TabStyle.Render(tabName))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)

	rightWidth := lipgloss.Width(right)
	gapWidth := max(width-lipgloss.Width(row)-rightWidth-2, 0)
	gap := TabGapStyle.Render(strings.Repeat(" ", gapWidth))

	if right != "" {
		return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap, TabGapStyle.Render(right))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap)
}

// RenderHeader renders the sprint tabs with the signed-in user on the right
func RenderHeader(props HeaderProps) string {
	tabs := make([]string, 0, len(props.Sprints))
	selected := -1
	for i, sp := range props.Sprints {
		tabs = append(tabs, sp.Title)
		if sp.ID == props.SelectedID {
			selected = i
		}
	}
	if len(tabs) == 0 {
		tabs = append(tabs, "no sprints")
	}
	return RenderTabs(tabs, selected, props.Width, props.User)
}

// SprintRange formats a sprint's dates, e.g. "2024-03-04 → 2024-03-18"
func SprintRange(sp models.Sprint) string {
	start, end := sp.StartDate.String(), sp.EndDate.String()
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return "from " + start
	case start == "":
		return "until " + end
	}
	return start + " → " + end
}
