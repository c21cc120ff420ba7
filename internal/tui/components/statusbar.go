package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/trackmaster/trackmaster/internal/tui/theme"
)

// StatusBarProps describes the bottom line
type StatusBarProps struct {
	Left  string
	Right string
	Width int
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	leftRendered := style.Render(props.Left)
	rightRendered := style.Render(props.Right)

	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, strings.Repeat(" ", gapWidth), rightRendered)
}
