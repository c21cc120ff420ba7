package forms

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/trackmaster/trackmaster/internal/tui/theme"
)

// FormState represents the state of the form
type FormState int

const (
	StateInProgress FormState = iota
	StateCompleted
	StateAborted
)

// Field is the interface that all form fields must implement
type Field interface {
	// Update handles messages and updates the field
	Update(tea.Msg) (Field, tea.Cmd)

	// View renders the field
	View() string

	// Focus focuses the field
	Focus() tea.Cmd

	// Blur removes focus from the field
	Blur()

	// Focused returns whether the field is focused
	Focused() bool

	// Key returns the field's key (used to retrieve values and match errors)
	Key() string
}

// Form manages a collection of fields.
// esc aborts, the submit key completes, tab and shift+tab move focus.
type Form struct {
	fields       []Field
	focusedIndex int
	state        FormState
	submitKey    string
	errors       map[string]string
}

// NewForm creates a new form with the given fields
func NewForm(submitKey string, fields ...Field) *Form {
	if submitKey == "" {
		submitKey = "ctrl+s"
	}
	return &Form{
		fields:    fields,
		state:     StateInProgress,
		submitKey: submitKey,
		errors:    map[string]string{},
	}
}

// Init focuses the first field
func (f *Form) Init() tea.Cmd {
	if len(f.fields) > 0 {
		return f.fields[0].Focus()
	}
	return nil
}

// Update handles messages for the form
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if f.state != StateInProgress {
		return f, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			f.state = StateAborted
			return f, nil
		case f.submitKey:
			f.state = StateCompleted
			return f, nil
		case "tab", "shift+tab":
			return f, f.handleTabNavigation(keyMsg.String() == "shift+tab")
		}
	}

	// Forward message to focused field
	if f.focusedIndex < len(f.fields) {
		var cmd tea.Cmd
		f.fields[f.focusedIndex], cmd = f.fields[f.focusedIndex].Update(msg)
		return f, cmd
	}

	return f, nil
}

// handleTabNavigation moves focus between fields
func (f *Form) handleTabNavigation(reverse bool) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}

	f.fields[f.focusedIndex].Blur()

	if reverse {
		f.focusedIndex--
		if f.focusedIndex < 0 {
			f.focusedIndex = len(f.fields) - 1
		}
	} else {
		f.focusedIndex++
		if f.focusedIndex >= len(f.fields) {
			f.focusedIndex = 0
		}
	}

	return f.fields[f.focusedIndex].Focus()
}

// View renders the form, with each field's error under it
func (f *Form) View() string {
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Delete)).Italic(true)

	var b strings.Builder
	for i, field := range f.fields {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(field.View())
		if msg := f.errors[field.Key()]; msg != "" {
			b.WriteString("\n" + errorStyle.Render("✕ "+msg))
		}
	}
	return b.String()
}

// State returns the current form state
func (f *Form) State() FormState {
	return f.state
}

// Resume puts a completed form back in progress, e.g. after failed validation
func (f *Form) Resume() {
	f.state = StateInProgress
}

// SetErrors replaces the per-field error messages, keyed by field key
func (f *Form) SetErrors(errs map[string]string) {
	if errs == nil {
		errs = map[string]string{}
	}
	f.errors = errs
}

// Errors returns the per-field error messages
func (f *Form) Errors() map[string]string {
	return f.errors
}

// Focused returns the key of the focused field
func (f *Form) Focused() string {
	if f.focusedIndex < len(f.fields) {
		return f.fields[f.focusedIndex].Key()
	}
	return ""
}

// Get retrieves a field by key
func (f *Form) Get(key string) Field {
	for _, field := range f.fields {
		if field.Key() == key {
			return field
		}
	}
	return nil
}

func renderTitle(title string, focused bool) string {
	color := theme.Subtle
	if focused {
		color = theme.Title
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color)).Render(title)
}
