package models

import (
	"fmt"
	"strings"
)

// Status is the workflow state of a task. Every status owns exactly one board column.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Statuses returns the fixed column order of the board
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// Valid reports whether s is one of the three board statuses
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Title returns the column heading for the status
func (s Status) Title() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	}
	return string(s)
}

// Index returns the column position of the status, or -1 if unknown
func (s Status) Index() int {
	for i, st := range Statuses() {
		if st == s {
			return i
		}
	}
	return -1
}

// ParseStatus converts user or wire input into a Status.
// Accepts the wire values plus the column titles (case-insensitive).
func ParseStatus(raw string) (Status, error) {
	switch normalizeStatus(raw) {
	case "todo", "to do", "to_do":
		return StatusTodo, nil
	case "in_progress", "in progress", "inprogress", "doing":
		return StatusInProgress, nil
	case "done":
		return StatusDone, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
}

// Column is one of the three fixed board columns.
// ID always equals the Status of every task it holds.
type Column struct {
	ID    Status
	Title string
	Tasks []*Task
}

func normalizeStatus(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
