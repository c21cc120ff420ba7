// Package notifications renders the floating notice banners
package notifications

import (
	"charm.land/lipgloss/v2"

	"github.com/trackmaster/trackmaster/internal/tui/state"
	"github.com/trackmaster/trackmaster/internal/tui/theme"
)

// maxMessageWidth keeps long backend errors from covering the board
const maxMessageWidth = 48

// banner is the look of one notice level
type banner struct {
	heading string
	fg, bg  string
}

func bannerFor(level state.NotificationLevel) banner {
	switch level {
	case state.LevelWarning:
		return banner{heading: "⚠ Warning", fg: theme.WarningFg, bg: theme.WarningBg}
	case state.LevelError:
		return banner{heading: "✕ Could not sync", fg: theme.ErrorFg, bg: theme.ErrorBg}
	}
	return banner{heading: "🔔 Info", fg: theme.InfoFg, bg: theme.InfoBg}
}

// Render draws a notice: a bold heading over the wrapped message, in a
// rounded box colored by level
func Render(level state.NotificationLevel, message string) string {
	b := bannerFor(level)
	width := min(max(lipgloss.Width(b.heading), lipgloss.Width(message)), maxMessageWidth)
	text := lipgloss.NewStyle().Foreground(lipgloss.Color(b.fg)).Width(width)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(b.bg)).
		Background(lipgloss.Color(b.bg)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			text.Bold(true).Render(b.heading),
			text.Render(message),
		))
}

// RenderFromState renders a queued notification
func RenderFromState(n state.Notification) string {
	return Render(n.Level, n.Message)
}
