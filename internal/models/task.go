package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Task represents a single sprint task on the kanban board
type Task struct {
	ID          int        `json:"id"`
	SprintID    int        `json:"sprint_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	AssignedTo  Assignees  `json:"assigned_to"`
	Resources   []Resource `json:"resources"`
	Reviewed    bool       `json:"reviewed"`
}

// GetID lets output formatters print the bare ID in quiet mode
func (t *Task) GetID() int {
	return t.ID
}

// IsLocked reports whether the task is in the terminal reviewed+done state.
// Locked tasks cannot be moved, edited or deleted.
func (t *Task) IsLocked() bool {
	return t.Reviewed && t.Status == StatusDone
}

// Clone returns a deep copy so snapshots never share slices with live state
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	if t.AssignedTo != nil {
		c.AssignedTo = append(Assignees(nil), t.AssignedTo...)
	}
	if t.Resources != nil {
		c.Resources = append([]Resource(nil), t.Resources...)
	}
	return &c
}

// TaskDraft carries the user-editable fields of a task
type TaskDraft struct {
	Title       string
	Description string
	AssignedTo  []int
}

// Assignees is the list of member IDs a task is assigned to.
// The backend sends either a single ID or a list; both decode here.
type Assignees []int

// UnmarshalJSON accepts null, a single number, a list of numbers,
// or a list of member objects carrying an id.
func (a *Assignees) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = nil
		return nil
	}

	switch data[0] {
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		ids := make(Assignees, 0, len(raw))
		for _, item := range raw {
			id, err := decodeMemberRef(item)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		*a = ids
		return nil
	default:
		id, err := decodeMemberRef(data)
		if err != nil {
			return err
		}
		*a = Assignees{id}
		return nil
	}
}

// Contains reports whether id is one of the assignees
func (a Assignees) Contains(id int) bool {
	for _, v := range a {
		if v == id {
			return true
		}
	}
	return false
}

func decodeMemberRef(data []byte) (int, error) {
	var id int
	if err := json.Unmarshal(data, &id); err == nil {
		return id, nil
	}
	var ref struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(data, &ref); err != nil {
		return 0, fmt.Errorf("invalid member reference %s: %w", string(data), err)
	}
	return ref.ID, nil
}
