package board

import (
	"context"
	"fmt"

	"github.com/trackmaster/trackmaster/internal/models"
)

// OpKind identifies the mutation a pending operation carries
type OpKind int

const (
	OpMove OpKind = iota
	OpUpdate
	OpDelete
)

func (k OpKind) String() string {
	switch k {
	case OpMove:
		return "move"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	}
	return "unknown"
}

// Op is an optimistic mutation that has been applied to the visible board
// but not yet confirmed by the backend.
type Op struct {
	ID         int
	Kind       OpKind
	Generation int
	TaskID     int

	// Task is the full task state to persist; nil for deletes
	Task *models.Task

	From      models.Status
	FromIndex int
	To        models.Status
	ToIndex   int

	Attempts int
}

// Outcome is what happened to a pending operation after a persistence failure
type Outcome int

const (
	// OutcomeRetry means the op is still pending and should be sent again
	OutcomeRetry Outcome = iota
	// OutcomeRolledBack means the op was dropped and its effect reverted
	OutcomeRolledBack
	// OutcomeDiscarded means the op no longer exists (e.g. the sprint changed)
	OutcomeDiscarded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRetry:
		return "retry"
	case OutcomeRolledBack:
		return "rolled back"
	case OutcomeDiscarded:
		return "discarded"
	}
	return "unknown"
}

// Persister is the part of the task service that pending operations need
type Persister interface {
	UpdateTask(ctx context.Context, task *models.Task) (*models.Task, error)
	MoveTask(ctx context.Context, task *models.Task) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID int) error
}

// Persist sends op to the backend. Moves and updates PUT the full task;
// the saved copy is returned for Confirm. Only updates are checked
// against the edit form rules.
func Persist(ctx context.Context, p Persister, op Op) (*models.Task, error) {
	switch op.Kind {
	case OpMove, OpUpdate:
		if op.Task == nil {
			return nil, fmt.Errorf("%s op %d has no task", op.Kind, op.ID)
		}
		if op.Kind == OpMove {
			return p.MoveTask(ctx, op.Task.Clone())
		}
		return p.UpdateTask(ctx, op.Task.Clone())
	case OpDelete:
		return nil, p.DeleteTask(ctx, op.TaskID)
	}
	return nil, fmt.Errorf("unknown op kind %d", op.Kind)
}
