package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/trackmaster/trackmaster/internal/config"
	"github.com/trackmaster/trackmaster/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Status:", "Assignees:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description", "Resources"

	// Status styles
	LockedStyle  lipgloss.Style
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
)

// Init initializes all CLI styles with the given color scheme.
// Until it is called every style renders plain text.
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	LockedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Locked))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg)).
		Background(lipgloss.Color(colors.WarningBg)).
		Padding(0, 1)
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// RenderColumnHeading renders "To Do (3)"
func RenderColumnHeading(col models.Column) string {
	return TitleStyle.Render(fmt.Sprintf("%s (%d)", col.Title, len(col.Tasks)))
}

// RenderTaskLine renders one task of a column listing
// Format: "  #12  Title  [Ana Rojas, Luis Vargas]"
func RenderTaskLine(task *models.Task, names []string) string {
	line := fmt.Sprintf("  #%-4d %s  %s", task.ID, task.Title,
		SubtitleStyle.Render("["+strings.Join(names, ", ")+"]"))
	if task.IsLocked() {
		line += " " + LockedStyle.Render("✔ reviewed")
	}
	return line
}

// RenderField renders "Label: value"
func RenderField(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
