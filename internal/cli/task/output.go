package task

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/trackmaster/trackmaster/internal/cli/styles"
	"github.com/trackmaster/trackmaster/internal/models"
)

// BoardListing is the output of task list
type BoardListing struct {
	SprintID int
	Columns  []models.Column
	Members  models.MemberDirectory
}

type columnJSON struct {
	Status models.Status  `json:"status"`
	Title  string         `json:"title"`
	Tasks  []*models.Task `json:"tasks"`
}

func (b *BoardListing) MarshalJSON() ([]byte, error) {
	cols := make([]columnJSON, len(b.Columns))
	for i, col := range b.Columns {
		tasks := col.Tasks
		if tasks == nil {
			tasks = []*models.Task{}
		}
		cols[i] = columnJSON{Status: col.ID, Title: col.Title, Tasks: tasks}
	}
	return json.Marshal(map[string]any{
		"sprint_id": b.SprintID,
		"columns":   cols,
	})
}

// IDs lists every task ID, column by column, for quiet mode
func (b *BoardListing) IDs() []int {
	var ids []int
	for _, col := range b.Columns {
		for _, t := range col.Tasks {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

func (b *BoardListing) String() string {
	var sb strings.Builder
	for i, col := range b.Columns {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(styles.RenderColumnHeading(col))
		if len(col.Tasks) == 0 {
			sb.WriteString("\n  " + styles.SubtitleStyle.Render("No tasks"))
			continue
		}
		for _, t := range col.Tasks {
			sb.WriteString("\n" + styles.RenderTaskLine(t, b.Members.Names(t.AssignedTo)))
		}
	}
	return sb.String()
}

// TaskDetail is the output of task show
type TaskDetail struct {
	Task      *models.Task
	Assignees []string
}

// GetID lets quiet mode print the task ID
func (d *TaskDetail) GetID() int {
	return d.Task.ID
}

func (d *TaskDetail) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"task":           d.Task,
		"assignee_names": d.Assignees,
		"locked":         d.Task.IsLocked(),
	})
}

func (d *TaskDetail) String() string {
	t := d.Task
	lines := []string{
		styles.TitleStyle.Render(fmt.Sprintf("#%d %s", t.ID, t.Title)),
		"",
		styles.RenderField("Status", t.Status.Title()),
		styles.RenderField("Assignees", strings.Join(d.Assignees, ", ")),
	}
	if t.IsLocked() {
		lines = append(lines, styles.LockedStyle.Render("✔ reviewed; this task can no longer change"))
	}

	lines = append(lines, styles.SectionStyle.Render("Description"), t.Description)

	if len(t.Resources) > 0 {
		lines = append(lines, styles.SectionStyle.Render("Resources"))
		for _, r := range t.Resources {
			style := r.Style()
			lines = append(lines, fmt.Sprintf("%s %s  %s · %s", style.Glyph, r.DisplayName(), style.Label, r.URL))
		}
	}
	return styles.RenderCard(strings.Join(lines, "\n"))
}

// TaskResult is the output of create and update
type TaskResult struct {
	Action string       `json:"action"`
	Task   *models.Task `json:"task"`
}

// GetID lets quiet mode print the task ID
func (r *TaskResult) GetID() int {
	return r.Task.ID
}

func (r *TaskResult) String() string {
	return fmt.Sprintf("✓ Task '%s' %s (ID: %d)\n  Status: %s",
		r.Task.Title, r.Action, r.Task.ID, r.Task.Status.Title())
}

// MoveResult is the output of task move
type MoveResult struct {
	TaskID     int           `json:"task_id"`
	FromColumn models.Status `json:"from_column"`
	ToColumn   models.Status `json:"to_column"`
	Moved      bool          `json:"moved"`
}

// GetID lets quiet mode print the task ID
func (r *MoveResult) GetID() int {
	return r.TaskID
}

func (r *MoveResult) String() string {
	if !r.Moved {
		return fmt.Sprintf("Task %d is already in '%s'", r.TaskID, r.ToColumn.Title())
	}
	return fmt.Sprintf("Task %d moved to '%s'", r.TaskID, r.ToColumn.Title())
}

// DeleteResult is the output of task delete
type DeleteResult struct {
	TaskID  int  `json:"task_id"`
	Deleted bool `json:"deleted"`
}

// GetID lets quiet mode print the task ID
func (r *DeleteResult) GetID() int {
	return r.TaskID
}

func (r *DeleteResult) String() string {
	if !r.Deleted {
		return "Deletion cancelled"
	}
	return fmt.Sprintf("✓ Task %d deleted", r.TaskID)
}
