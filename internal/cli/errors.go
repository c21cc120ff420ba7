package cli

import (
	"errors"
	"net/http"

	"github.com/trackmaster/trackmaster/internal/board"
	"github.com/trackmaster/trackmaster/internal/gateway"
	"github.com/trackmaster/trackmaster/internal/models"
	taskservice "github.com/trackmaster/trackmaster/internal/services/task"
)

// ErrUsage marks errors caused by how the command was called
var ErrUsage = errors.New("usage error")

// ErrorClass is how a failure is reported: a stable code for scripts,
// the exit status, and an optional hint.
type ErrorClass struct {
	Code       string
	Exit       int
	Suggestion string
}

// Classify maps an error to its report class
func Classify(err error) ErrorClass {
	var apiErr *gateway.APIError
	isAPI := errors.As(err, &apiErr)

	switch {
	case errors.Is(err, ErrUsage):
		return ErrorClass{Code: "USAGE_ERROR", Exit: ExitUsage, Suggestion: "Run with --help to see the available flags"}
	case errors.Is(err, board.ErrTaskNotFound), isAPI && apiErr.NotFound():
		return ErrorClass{Code: "NOT_FOUND", Exit: ExitNotFound, Suggestion: "List the sprint's tasks with: trackmaster task list --sprint <id>"}
	case errors.Is(err, board.ErrTaskLocked), isAPI && apiErr.Conflict():
		return ErrorClass{Code: "TASK_LOCKED", Exit: ExitValidation}
	case errors.Is(err, taskservice.ErrInvalidTask),
		errors.Is(err, taskservice.ErrInvalidTaskID),
		errors.Is(err, taskservice.ErrInvalidSprintID),
		errors.Is(err, taskservice.ErrInvalidStatus),
		errors.Is(err, models.ErrUnknownStatus):
		return ErrorClass{Code: "VALIDATION_ERROR", Exit: ExitValidation}
	case isAPI && apiErr.StatusCode == http.StatusBadRequest:
		return ErrorClass{Code: "VALIDATION_ERROR", Exit: ExitValidation}
	case isAPI:
		return ErrorClass{Code: "BACKEND_ERROR", Exit: ExitError}
	}
	return ErrorClass{Code: "ERROR", Exit: ExitError}
}
