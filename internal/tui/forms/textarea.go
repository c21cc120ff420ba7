package forms

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextArea is a multi-line text input field
type TextArea struct {
	key      string
	title    string
	limit    int
	value    *string
	textarea textarea.Model
}

// NewTextArea creates a new text area field. limit is shown as a counter, not enforced.
func NewTextArea(key, title, placeholder string, limit int, value *string) *TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetHeight(4)
	if value != nil && *value != "" {
		ta.SetValue(*value)
	}

	return &TextArea{
		key:      key,
		title:    title,
		limit:    limit,
		value:    value,
		textarea: ta,
	}
}

// SetWidth sets the editing width
func (t *TextArea) SetWidth(width int) {
	t.textarea.SetWidth(width)
}

// Update handles messages
func (t *TextArea) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	t.textarea, cmd = t.textarea.Update(msg)

	if t.value != nil {
		*t.value = t.textarea.Value()
	}

	return t, cmd
}

// View renders the text area
func (t *TextArea) View() string {
	return renderTitle(t.title, t.Focused()) + counter(len([]rune(t.textarea.Value())), t.limit) + "\n" + t.textarea.View()
}

// Focus focuses the text area
func (t *TextArea) Focus() tea.Cmd {
	return t.textarea.Focus()
}

// Blur removes focus
func (t *TextArea) Blur() {
	t.textarea.Blur()
}

// Focused returns whether the textarea is focused
func (t *TextArea) Focused() bool {
	return t.textarea.Focused()
}

// Key returns the field key
func (t *TextArea) Key() string {
	return t.key
}

// Value returns the current value
func (t *TextArea) Value() string {
	return t.textarea.Value()
}
