package board

import (
	"errors"

	"github.com/trackmaster/trackmaster/internal/models"
)

// Board errors
var (
	ErrTaskLocked       = errors.New("task is reviewed and done; it can no longer change")
	ErrTaskNotFound     = errors.New("task not found on the board")
	ErrIndexOutOfRange  = errors.New("task index out of range")
	ErrNoSprintSelected = errors.New("no sprint selected")
	ErrOpNotFound       = errors.New("pending operation not found")

	// ErrStaleGeneration is returned for results of a sprint load that has since been replaced
	ErrStaleGeneration = errors.New("result belongs to a previous sprint load")

	// ErrUnknownStatus is shared with the model layer so either check matches
	ErrUnknownStatus = models.ErrUnknownStatus
)

// temporary is implemented by errors that may succeed on retry
type temporary interface {
	Temporary() bool
}

// IsRetryable reports whether a failed persistence call is worth retrying.
// Transport errors and 5xx responses are; validation and 4xx are not.
func IsRetryable(err error) bool {
	var t temporary
	if errors.As(err, &t) {
		return t.Temporary()
	}
	return false
}
