package forms

import (
	"fmt"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/trackmaster/trackmaster/internal/tui/theme"
)

// TextInput is a single-line text input field
type TextInput struct {
	key   string
	title string
	limit int
	value *string
	input textinput.Model
}

// NewTextInput creates a new text input field. limit is shown as a counter, not enforced.
func NewTextInput(key, title, placeholder string, limit int, value *string) *TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if value != nil && *value != "" {
		ti.SetValue(*value)
	}

	return &TextInput{
		key:   key,
		title: title,
		limit: limit,
		value: value,
		input: ti,
	}
}

// Update handles messages
func (t *TextInput) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)

	if t.value != nil {
		*t.value = t.input.Value()
	}

	return t, cmd
}

// View renders the text input
func (t *TextInput) View() string {
	return renderTitle(t.title, t.Focused()) + counter(len([]rune(t.input.Value())), t.limit) + "\n" + t.input.View()
}

// Focus focuses the text input
func (t *TextInput) Focus() tea.Cmd {
	return t.input.Focus()
}

// Blur removes focus
func (t *TextInput) Blur() {
	t.input.Blur()
}

// Focused returns whether the input is focused
func (t *TextInput) Focused() bool {
	return t.input.Focused()
}

// Key returns the field key
func (t *TextInput) Key() string {
	return t.key
}

// Value returns the current value
func (t *TextInput) Value() string {
	return t.input.Value()
}

// counter renders " 12/50", turning red past the limit
func counter(n, limit int) string {
	if limit <= 0 {
		return ""
	}
	color := theme.Subtle
	if n > limit {
		color = theme.Delete
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(fmt.Sprintf(" %d/%d", n, limit))
}
