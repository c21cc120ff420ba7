package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrInvalidTask     = errors.New("invalid task")
	ErrInvalidTaskID   = errors.New("invalid task ID")
	ErrInvalidSprintID = errors.New("invalid sprint ID")
	ErrInvalidStatus   = errors.New("invalid task status")
)
