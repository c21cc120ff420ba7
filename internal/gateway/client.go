// Package gateway is the REST client for the TrackMaster backend.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/trackmaster/trackmaster/internal/models"
	"github.com/trackmaster/trackmaster/internal/session"
)

// DefaultTimeout bounds every request when the caller does not configure one
const DefaultTimeout = 10 * time.Second

// Client talks to the sprint, task and group endpoints
type Client struct {
	session *session.Session
	http    *http.Client
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger for request tracing
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for the session's backend
func NewClient(sess *session.Session, opts ...Option) *Client {
	c := &Client{
		session: sess,
		http:    &http.Client{},
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListSprints returns the sprints of a group
func (c *Client) ListSprints(ctx context.Context, groupID int) ([]models.Sprint, error) {
	var sprints []models.Sprint
	q := url.Values{"group_id": {strconv.Itoa(groupID)}}
	if err := c.do(ctx, http.MethodGet, "/sprints", q, nil, &sprints); err != nil {
		return nil, err
	}
	return sprints, nil
}

// ListTasks returns every task of a sprint
func (c *Client) ListTasks(ctx context.Context, sprintID int) ([]*models.Task, error) {
	var tasks []*models.Task
	q := url.Values{"sprint_id": {strconv.Itoa(sprintID)}}
	if err := c.do(ctx, http.MethodGet, "/tasks", q, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

type createTaskBody struct {
	SprintID    int           `json:"sprint_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	AssignedTo  []int         `json:"assigned_to"`
	Status      models.Status `json:"status"`
}

// CreateTask creates a task in the todo column of a sprint
func (c *Client) CreateTask(ctx context.Context, sprintID int, draft models.TaskDraft) (*models.Task, error) {
	body := createTaskBody{
		SprintID:    sprintID,
		Title:       draft.Title,
		Description: draft.Description,
		AssignedTo:  draft.AssignedTo,
		Status:      models.StatusTodo,
	}
	var task models.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", nil, body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

type updateTaskBody struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	AssignedTo  []int         `json:"assigned_to"`
	Status      models.Status `json:"status"`
}

// UpdateTask replaces the editable fields and status of a task
func (c *Client) UpdateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	body := updateTaskBody{
		Title:       task.Title,
		Description: task.Description,
		AssignedTo:  task.AssignedTo,
		Status:      task.Status,
	}
	var saved models.Task
	path := "/tasks/" + strconv.Itoa(task.ID)
	if err := c.do(ctx, http.MethodPut, path, nil, body, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeleteTask removes a task
func (c *Client) DeleteTask(ctx context.Context, taskID int) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+strconv.Itoa(taskID), nil, nil, nil)
}

// GroupDetails returns the group with its representative and members
func (c *Client) GroupDetails(ctx context.Context, groupID int) (*models.Group, error) {
	var group models.Group
	q := url.Values{"group_id": {strconv.Itoa(groupID)}}
	if err := c.do(ctx, http.MethodGet, "/groups/details", q, nil, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// do sends one JSON request and decodes the response into out, if non-nil
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.session.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth := c.session.AuthorizationHeader(); auth != "" {
		req.Header.Set("Authorization", auth)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed", "method", method, "path", path, "error", err)
		return &TransportError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode %s %s response", method, path)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(raw) == 0 {
		return apiErr
	}
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil && payload.Error != "" {
		apiErr.Message = payload.Error
	}
	return apiErr
}
