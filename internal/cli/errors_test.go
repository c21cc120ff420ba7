package cli

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trackmaster/trackmaster/internal/board"
	"github.com/trackmaster/trackmaster/internal/gateway"
	"github.com/trackmaster/trackmaster/internal/models"
	taskservice "github.com/trackmaster/trackmaster/internal/services/task"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantExit int
	}{
		{"usage", fmt.Errorf("%w: --sprint is required", ErrUsage), "USAGE_ERROR", ExitUsage},
		{"missing task", fmt.Errorf("%w: task 3", board.ErrTaskNotFound), "NOT_FOUND", ExitNotFound},
		{"backend 404", &gateway.APIError{StatusCode: http.StatusNotFound}, "NOT_FOUND", ExitNotFound},
		{"locked task", board.ErrTaskLocked, "TASK_LOCKED", ExitValidation},
		{"backend 409", &gateway.APIError{StatusCode: http.StatusConflict}, "TASK_LOCKED", ExitValidation},
		{"invalid task", fmt.Errorf("%w: title is required", taskservice.ErrInvalidTask), "VALIDATION_ERROR", ExitValidation},
		{"invalid status", fmt.Errorf("%w: sideways", models.ErrUnknownStatus), "VALIDATION_ERROR", ExitValidation},
		{"backend 400", &gateway.APIError{StatusCode: http.StatusBadRequest}, "VALIDATION_ERROR", ExitValidation},
		{"backend 500", fmt.Errorf("save: %w", &gateway.APIError{StatusCode: http.StatusInternalServerError}), "BACKEND_ERROR", ExitError},
		{"anything else", errors.New("disk on fire"), "ERROR", ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class := Classify(tt.err)
			assert.Equal(t, tt.wantCode, class.Code)
			assert.Equal(t, tt.wantExit, class.Exit)
		})
	}
}

func TestClassify_UsageHasSuggestion(t *testing.T) {
	assert.NotEmpty(t, Classify(ErrUsage).Suggestion)
}
