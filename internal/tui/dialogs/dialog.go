// Package dialogs holds the new task and edit task dialogs.
// A dialog edits a working copy only; the board sees the result through
// SubmitMsg, and only after the fields pass validation.
package dialogs

import (
	"errors"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/trackmaster/trackmaster/internal/models"
	taskservice "github.com/trackmaster/trackmaster/internal/services/task"
	"github.com/trackmaster/trackmaster/internal/tui/forms"
	"github.com/trackmaster/trackmaster/internal/tui/theme"
)

// Kind tells the two dialogs apart
type Kind int

const (
	KindCreate Kind = iota
	KindEdit
)

// Field keys match the validation field names so errors land under the right field
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldAssignee    = "assignee"
	FieldAssignedTo  = "assigned_to"
)

// SubmitMsg is emitted once the dialog's fields are valid
type SubmitMsg struct {
	Kind   Kind
	TaskID int
	Create taskservice.CreateInput
	Edit   taskservice.EditInput
}

// CancelMsg is emitted when the dialog is dismissed. Nothing was changed.
type CancelMsg struct {
	Kind Kind
}

// TaskDialog is the working copy of a task being created or edited
type TaskDialog struct {
	kind      Kind
	taskID    int
	form      *forms.Form
	submitKey string

	title       string
	description string
	assignee    int
	assignedTo  []int

	err string
}

// NewCreateDialog opens an empty new task form with a single cycled assignee
func NewCreateDialog(members []models.TeamMember, submitKey string) *TaskDialog {
	submitKey = orDefault(submitKey)
	d := &TaskDialog{kind: KindCreate, submitKey: submitKey}
	d.form = forms.NewForm(submitKey,
		forms.NewTextInput(FieldTitle, "Title", "What needs doing?", taskservice.MaxTitleLength, &d.title),
		forms.NewTextArea(FieldDescription, "Description", "Details for the team...", taskservice.MaxDescriptionLength, &d.description),
		forms.NewSelect(FieldAssignee, "Assignee", memberOptions(members), &d.assignee),
	)
	return d
}

// NewEditDialog opens a form prefilled from task, with assignees as chips
func NewEditDialog(task *models.Task, members []models.TeamMember, submitKey string) *TaskDialog {
	submitKey = orDefault(submitKey)
	d := &TaskDialog{
		kind:        KindEdit,
		taskID:      task.ID,
		submitKey:   submitKey,
		title:       task.Title,
		description: task.Description,
		assignedTo:  append([]int(nil), task.AssignedTo...),
	}
	d.form = forms.NewForm(submitKey,
		forms.NewTextInput(FieldTitle, "Title", "", taskservice.MaxTitleLength, &d.title),
		forms.NewTextArea(FieldDescription, "Description", "", taskservice.MaxDescriptionLength, &d.description),
		forms.NewChips(FieldAssignedTo, "Assignees", memberOptions(members), &d.assignedTo),
	)
	return d
}

func orDefault(submitKey string) string {
	if submitKey == "" {
		return "ctrl+s"
	}
	return submitKey
}

func memberOptions(members []models.TeamMember) []forms.Option {
	options := make([]forms.Option, 0, len(members))
	for _, m := range members {
		options = append(options, forms.Option{Label: m.FullName(), Value: m.ID})
	}
	return options
}

// Kind returns which dialog this is
func (d *TaskDialog) Kind() Kind {
	return d.kind
}

// TaskID returns the task being edited, 0 for the create dialog
func (d *TaskDialog) TaskID() int {
	return d.taskID
}

// Init focuses the first field
func (d *TaskDialog) Init() tea.Cmd {
	return d.form.Init()
}

// Update forwards input to the form and emits SubmitMsg or CancelMsg when it finishes
func (d *TaskDialog) Update(msg tea.Msg) (*TaskDialog, tea.Cmd) {
	var cmd tea.Cmd
	d.form, cmd = d.form.Update(msg)

	switch d.form.State() {
	case forms.StateAborted:
		return d, emit(CancelMsg{Kind: d.kind})
	case forms.StateCompleted:
		submit, err := d.validate()
		if err != nil {
			d.Reject(err)
			return d, nil
		}
		d.err = ""
		d.form.SetErrors(nil)
		return d, emit(submit)
	}
	return d, cmd
}

func (d *TaskDialog) validate() (SubmitMsg, error) {
	msg := SubmitMsg{Kind: d.kind, TaskID: d.taskID}
	if d.kind == KindCreate {
		msg.Create = taskservice.CreateInput{
			Title:       d.title,
			Description: d.description,
			Assignee:    d.assignee,
		}
		return msg, msg.Create.Validate()
	}
	msg.Edit = taskservice.EditInput{
		Title:       d.title,
		Description: d.description,
		AssignedTo:  append([]int(nil), d.assignedTo...),
	}
	return msg, msg.Edit.Validate()
}

// Reject reopens the dialog with err shown. Field errors go under their
// fields; anything else is shown above the form.
func (d *TaskDialog) Reject(err error) {
	d.form.Resume()
	fields := taskservice.FieldErrors(err)
	d.form.SetErrors(fields)
	d.err = ""
	var vErr *taskservice.ValidationError
	if err != nil && !errors.As(err, &vErr) {
		d.err = err.Error()
	}
}

// Errors returns the current per-field errors
func (d *TaskDialog) Errors() map[string]string {
	return d.form.Errors()
}

// View renders the dialog box
func (d *TaskDialog) View(width int) string {
	heading, border := "New Task", theme.Create
	if d.kind == KindEdit {
		heading, border = "Edit Task", theme.Edit
	}

	headingStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(border))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Delete)).Bold(true)

	content := headingStyle.Render(heading) + "\n\n"
	if d.err != "" {
		content += errStyle.Render(d.err) + "\n\n"
	}
	content += d.form.View() + "\n\n"
	if d.kind == KindEdit {
		content += hintStyle.Render("space: add/remove member  backspace: drop last chip") + "\n"
	}
	content += hintStyle.Render("tab: next field  " + d.submitKey + ": save  esc: cancel")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(1, 2).
		Width(width).
		Render(content)
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
