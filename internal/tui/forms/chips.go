package forms

import (
	"slices"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/trackmaster/trackmaster/internal/tui/theme"
)

// Chips is a multi-select field shown as a row of chips.
// Selection order is kept; the option list below the chips is the picker.
type Chips struct {
	key      string
	title    string
	options  []Option
	value    *[]int
	focused  bool
	cursor   int
	selected []int
}

// NewChips creates a multi-select chip field preloaded from *value
func NewChips(key, title string, options []Option, value *[]int) *Chips {
	c := &Chips{
		key:     key,
		title:   title,
		options: options,
		value:   value,
	}
	if value != nil {
		c.selected = append([]int(nil), *value...)
	}
	return c
}

// Update handles messages
func (c *Chips) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !c.focused {
		return c, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "up", "k":
			if c.cursor > 0 {
				c.cursor--
			}
		case "down", "j":
			if c.cursor < len(c.options)-1 {
				c.cursor++
			}
		case "space", "enter":
			if c.cursor < len(c.options) {
				c.toggle(c.options[c.cursor].Value)
			}
		case "backspace", "x":
			if n := len(c.selected); n > 0 {
				c.selected = c.selected[:n-1]
			}
		default:
			return c, nil
		}

		if c.value != nil {
			*c.value = c.SelectedValues()
		}
	}

	return c, nil
}

func (c *Chips) toggle(v int) {
	if i := slices.Index(c.selected, v); i >= 0 {
		c.selected = slices.Delete(c.selected, i, i+1)
		return
	}
	c.selected = append(c.selected, v)
}

// View renders the chips and the member picker
func (c *Chips) View() string {
	chipStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.TaskBg)).
		Background(lipgloss.Color(theme.AssigneeChip)).
		Padding(0, 1)
	subtle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Highlight))

	var chips []string
	for _, v := range c.selected {
		chips = append(chips, chipStyle.Render(c.labelOf(v)))
	}
	row := subtle.Italic(true).Render("no assignees")
	if len(chips) > 0 {
		row = strings.Join(chips, " ")
	}

	var b strings.Builder
	b.WriteString(renderTitle(c.title, c.focused) + "\n" + row)
	if !c.focused {
		return b.String()
	}

	for i, option := range c.options {
		cursor := "  "
		if i == c.cursor {
			cursor = cursorStyle.Render("> ")
		}
		mark := "[ ] "
		if slices.Contains(c.selected, option.Value) {
			mark = "[x] "
		}
		b.WriteString("\n" + cursor + mark + option.Label)
	}
	return b.String()
}

func (c *Chips) labelOf(v int) string {
	for _, o := range c.options {
		if o.Value == v {
			return o.Label
		}
	}
	return "#" + strconv.Itoa(v)
}

// Focus focuses the field
func (c *Chips) Focus() tea.Cmd {
	c.focused = true
	return nil
}

// Blur removes focus
func (c *Chips) Blur() {
	c.focused = false
}

// Focused returns whether the field is focused
func (c *Chips) Focused() bool {
	return c.focused
}

// Key returns the field key
func (c *Chips) Key() string {
	return c.key
}

// SelectedValues returns the selected values in the order they were added
func (c *Chips) SelectedValues() []int {
	return append([]int{}, c.selected...)
}
