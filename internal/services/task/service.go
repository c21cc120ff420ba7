package task

import (
	"context"
	"fmt"

	"github.com/trackmaster/trackmaster/internal/models"
)

// Backend is the remote task store. The REST gateway implements it.
type Backend interface {
	ListTasks(ctx context.Context, sprintID int) ([]*models.Task, error)
	CreateTask(ctx context.Context, sprintID int, draft models.TaskDraft) (*models.Task, error)
	UpdateTask(ctx context.Context, task *models.Task) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID int) error
}

// Service defines all task-related business operations
type Service interface {
	ListTasks(ctx context.Context, sprintID int) ([]*models.Task, error)
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, task *models.Task) (*models.Task, error)
	MoveTask(ctx context.Context, task *models.Task) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID int) error
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	SprintID int
	CreateInput
}

// service implements Service interface
type service struct {
	backend Backend
}

// NewService creates a new task service
func NewService(backend Backend) Service {
	return &service{backend: backend}
}

func (s *service) ListTasks(ctx context.Context, sprintID int) ([]*models.Task, error) {
	if sprintID <= 0 {
		return nil, ErrInvalidSprintID
	}
	tasks, err := s.backend.ListTasks(ctx, sprintID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask validates the request and creates the task in the todo column
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	if req.SprintID <= 0 {
		return nil, ErrInvalidSprintID
	}
	if err := req.CreateInput.Validate(); err != nil {
		return nil, err
	}

	task, err := s.backend.CreateTask(ctx, req.SprintID, models.TaskDraft{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  []int{req.Assignee},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// UpdateTask validates and persists the full task state
func (s *service) UpdateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	if err := ValidateTask(task); err != nil {
		return nil, err
	}

	updated, err := s.backend.UpdateTask(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("failed to update task %d: %w", task.ID, err)
	}
	return updated, nil
}

// MoveTask persists a status change. Only the ID and status are checked,
// the other fields go out as they were loaded.
func (s *service) MoveTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	if task == nil || task.ID <= 0 {
		return nil, ErrInvalidTaskID
	}
	if !task.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, task.Status)
	}

	moved, err := s.backend.UpdateTask(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("failed to move task %d: %w", task.ID, err)
	}
	return moved, nil
}

func (s *service) DeleteTask(ctx context.Context, taskID int) error {
	if taskID <= 0 {
		return ErrInvalidTaskID
	}
	if err := s.backend.DeleteTask(ctx, taskID); err != nil {
		return fmt.Errorf("failed to delete task %d: %w", taskID, err)
	}
	return nil
}

// ValidateTask checks a full task against the edit rules.
// The task's text fields are trimmed in place.
func ValidateTask(task *models.Task) error {
	if task == nil || task.ID <= 0 {
		return ErrInvalidTaskID
	}
	if !task.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, task.Status)
	}
	in := EditInput{
		Title:       task.Title,
		Description: task.Description,
		AssignedTo:  task.AssignedTo,
	}
	if err := in.Validate(); err != nil {
		return err
	}
	task.Title = in.Title
	task.Description = in.Description
	return nil
}
