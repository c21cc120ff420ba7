package forms

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/trackmaster/trackmaster/internal/tui/theme"
)

// Option represents a selectable option
type Option struct {
	Label string
	Value int
}

// Select picks exactly one option by cycling through them
type Select struct {
	key     string
	title   string
	options []Option
	value   *int
	focused bool
	cursor  int
}

// NewSelect creates a single-choice field. The cursor starts on *value if present,
// otherwise nothing is chosen until the user cycles.
func NewSelect(key, title string, options []Option, value *int) *Select {
	s := &Select{
		key:     key,
		title:   title,
		options: options,
		value:   value,
		cursor:  -1,
	}
	if value != nil {
		for i, o := range options {
			if o.Value == *value {
				s.cursor = i
			}
		}
	}
	return s
}

// Update handles messages
func (s *Select) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !s.focused || len(s.options) == 0 {
		return s, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "right", "l", "down", "j", "space", "enter":
			s.cursor = (s.cursor + 1) % len(s.options)
		case "left", "h", "up", "k":
			if s.cursor <= 0 {
				s.cursor = len(s.options) - 1
			} else {
				s.cursor--
			}
		default:
			return s, nil
		}
		if s.value != nil {
			*s.value = s.options[s.cursor].Value
		}
	}

	return s, nil
}

// View renders the current choice between arrows
func (s *Select) View() string {
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.AssigneeChip)).Bold(true)
	subtle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	label := subtle.Italic(true).Render("none")
	switch {
	case len(s.options) == 0:
		label = subtle.Italic(true).Render("no members available")
	case s.cursor >= 0:
		label = valueStyle.Render(s.options[s.cursor].Label)
	}

	return renderTitle(s.title, s.focused) + "\n" + subtle.Render("‹ ") + label + subtle.Render(" ›")
}

// Focus focuses the field
func (s *Select) Focus() tea.Cmd {
	s.focused = true
	return nil
}

// Blur removes focus
func (s *Select) Blur() {
	s.focused = false
}

// Focused returns whether the field is focused
func (s *Select) Focused() bool {
	return s.focused
}

// Key returns the field key
func (s *Select) Key() string {
	return s.key
}

// Value returns the chosen value, or 0 when nothing is chosen
func (s *Select) Value() int {
	if s.cursor < 0 || s.cursor >= len(s.options) {
		return 0
	}
	return s.options[s.cursor].Value
}
