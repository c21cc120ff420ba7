package gateway

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackmaster/trackmaster/internal/board"
	"github.com/trackmaster/trackmaster/internal/database"
	"github.com/trackmaster/trackmaster/internal/models"
	"github.com/trackmaster/trackmaster/internal/session"
	"github.com/trackmaster/trackmaster/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

var quietLogger = testutil.QuietLogger()

// setupBackend starts the dev server over a seeded in-memory database
func setupBackend(t *testing.T) (*Client, *database.SeedResult) {
	t.Helper()
	backend := testutil.StartBackend(t)

	sess, err := session.New(backend.URL, "", backend.Seed.GroupID)
	require.NoError(t, err)
	return NewClient(sess, WithLogger(quietLogger)), backend.Seed
}

// stubServer answers every request with handler
func stubServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	sess := &session.Session{BaseURL: ts.URL, Token: "abc.def.ghi"}
	return NewClient(sess, WithLogger(quietLogger), WithTimeout(2*time.Second))
}

// ============================================================================
// ENDPOINT TESTS
// ============================================================================

func TestClient_ReadEndpoints(t *testing.T) {
	client, seed := setupBackend(t)
	ctx := context.Background()

	sprints, err := client.ListSprints(ctx, seed.GroupID)
	require.NoError(t, err)
	require.Len(t, sprints, 2)

	tasks, err := client.ListTasks(ctx, sprints[0].ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 4)

	group, err := client.GroupDetails(ctx, seed.GroupID)
	require.NoError(t, err)
	assert.Len(t, group.Assignable(), 3)
}

func TestClient_TaskLifecycle(t *testing.T) {
	client, seed := setupBackend(t)
	ctx := context.Background()

	created, err := client.CreateTask(ctx, seed.SprintIDs[1], models.TaskDraft{
		Title:       "Plan retro",
		Description: "Collect topics",
		AssignedTo:  []int{seed.MemberIDs[0]},
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusTodo, created.Status)

	created.Status = models.StatusDone
	created.AssignedTo = models.Assignees{seed.MemberIDs[0], seed.MemberIDs[1]}
	saved, err := client.UpdateTask(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDone, saved.Status)
	assert.Len(t, saved.AssignedTo, 2)

	require.NoError(t, client.DeleteTask(ctx, created.ID))

	err = client.DeleteTask(ctx, created.ID)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.True(t, apiErr.NotFound())
	assert.False(t, board.IsRetryable(err))
}

func TestClient_LockedTaskConflict(t *testing.T) {
	client, seed := setupBackend(t)
	ctx := context.Background()

	tasks, err := client.ListTasks(ctx, seed.SprintIDs[0])
	require.NoError(t, err)
	var locked *models.Task
	for _, task := range tasks {
		if task.IsLocked() {
			locked = task
		}
	}
	require.NotNil(t, locked)

	locked.Status = models.StatusTodo
	_, err = client.UpdateTask(ctx, locked)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.True(t, apiErr.Conflict())
	assert.NotEmpty(t, apiErr.Message)
}

// ============================================================================
// WIRE FORMAT TESTS
// ============================================================================

func TestClient_SendsBearerAndBody(t *testing.T) {
	var gotAuth, gotMethod, gotPath string
	var gotBody []byte
	client := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"title":"Write spec","status":"in_progress","assigned_to":2}`))
	})

	saved, err := client.UpdateTask(context.Background(), &models.Task{
		ID:          1,
		Title:       "Write spec",
		Description: "Draft",
		Status:      models.StatusInProgress,
		AssignedTo:  models.Assignees{2},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer abc.def.ghi", gotAuth)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/tasks/1", gotPath)
	assert.JSONEq(t, `{"title":"Write spec","description":"Draft","assigned_to":[2],"status":"in_progress"}`, string(gotBody))
	assert.Equal(t, models.Assignees{2}, saved.AssignedTo, "single assignee normalised to a list")
}

func TestClient_APIErrorDecoding(t *testing.T) {
	client := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"database is restarting"}`))
	})

	_, err := client.ListTasks(context.Background(), 1)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, "database is restarting", apiErr.Message)
	assert.True(t, board.IsRetryable(err))
}

func TestClient_APIErrorWithoutBody(t *testing.T) {
	client := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`not json`))
	})

	err := client.DeleteTask(context.Background(), 3)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "400")
}

func TestClient_DecodeError(t *testing.T) {
	client := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"resources":{"type":"file"}}]`))
	})

	_, err := client.ListTasks(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode GET /tasks")
}

func TestClient_KeepsUnknownResources(t *testing.T) {
	client := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"status":"todo","resources":[{"type":"video","url":"https://v.example/1"}]},{"id":2,"status":"done"}]`))
	})

	tasks, err := client.ListTasks(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, models.ResourceType("video"), tasks[0].Resources[0].Type)
}

func TestClient_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	client := NewClient(&session.Session{BaseURL: url}, WithLogger(quietLogger))
	_, err := client.ListSprints(context.Background(), 1)

	var tErr *TransportError
	require.True(t, errors.As(err, &tErr))
	assert.True(t, board.IsRetryable(err))
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	client := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)
	client.timeout = 50 * time.Millisecond

	_, err := client.ListSprints(context.Background(), 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
