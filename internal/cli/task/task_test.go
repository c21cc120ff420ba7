package task

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackmaster/trackmaster/internal/app"
	"github.com/trackmaster/trackmaster/internal/cli"
	"github.com/trackmaster/trackmaster/internal/models"
	"github.com/trackmaster/trackmaster/internal/testutil"
	"github.com/trackmaster/trackmaster/internal/testutil/clitest"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

type fixture struct {
	app     *app.App
	backend *testutil.Backend
	sprint  string
}

func setup(t *testing.T) *fixture {
	t.Helper()
	a, backend := clitest.SetupCLITest(t)
	return &fixture{app: a, backend: backend, sprint: strconv.Itoa(backend.Seed.SprintIDs[0])}
}

func (f *fixture) run(t *testing.T, args ...string) clitest.Result {
	t.Helper()
	return clitest.ExecuteCLICommand(t, f.app, TaskCmd(), args...)
}

func (f *fixture) runWithInput(t *testing.T, stdin string, args ...string) clitest.Result {
	t.Helper()
	return clitest.ExecuteCLICommandWithInput(t, f.app, TaskCmd(), stdin, args...)
}

// stored returns the backend's copy of the first sprint task with title
func (f *fixture) stored(t *testing.T, title string) *models.Task {
	t.Helper()
	tasks, err := f.backend.Repo.Tasks.ListBySprint(context.Background(), f.backend.Seed.SprintIDs[0])
	require.NoError(t, err)
	for _, task := range tasks {
		if task.Title == title {
			return task
		}
	}
	return nil
}

func (f *fixture) id(t *testing.T, title string) string {
	t.Helper()
	task := f.stored(t, title)
	require.NotNil(t, task, "seeded task %q", title)
	return strconv.Itoa(task.ID)
}

func (f *fixture) member(i int) string {
	return strconv.Itoa(f.backend.Seed.MemberIDs[i])
}

// ============================================================================
// LIST / SHOW
// ============================================================================

func TestList_HumanReadable(t *testing.T) {
	f := setup(t)

	res := f.run(t, "list", "--sprint", f.sprint)
	require.NoError(t, res.Err, res.Stderr)

	assert.Contains(t, res.Stdout, "To Do (1)")
	assert.Contains(t, res.Stdout, "In Progress (1)")
	assert.Contains(t, res.Stdout, "Done (2)")
	assert.Contains(t, res.Stdout, "Write spec")
	assert.Contains(t, res.Stdout, "[Ana Rojas]")
	assert.Contains(t, res.Stdout, "✔ reviewed")

	todo := strings.Index(res.Stdout, "To Do")
	done := strings.Index(res.Stdout, "Done (2)")
	assert.Less(t, todo, done, "columns in board order")
}

func TestList_JSON(t *testing.T) {
	f := setup(t)

	res := f.run(t, "list", "--sprint", f.sprint, "--json")
	require.NoError(t, res.Err, res.Stderr)

	out := clitest.ParseJSON(t, res.Stdout)
	assert.Equal(t, true, out["success"])
	data := out["data"].(map[string]any)
	columns := data["columns"].([]any)
	require.Len(t, columns, 3)

	first := columns[0].(map[string]any)
	assert.Equal(t, "todo", first["status"])
	assert.Equal(t, "To Do", first["title"])
	assert.Len(t, first["tasks"], 1)
}

func TestList_Quiet(t *testing.T) {
	f := setup(t)

	res := f.run(t, "list", "--sprint", f.sprint, "--quiet")
	require.NoError(t, res.Err)

	lines := strings.Fields(res.Stdout)
	assert.Len(t, lines, 4)
	assert.Equal(t, f.id(t, "Write spec"), lines[0])
}

func TestList_MissingSprintIsUsageError(t *testing.T) {
	f := setup(t)

	res := f.run(t, "list")
	require.Error(t, res.Err)
	assert.Equal(t, cli.ExitUsage, res.ExitCode())
	assert.Contains(t, res.Stderr, "--sprint must be greater than 0")
}

func TestShow(t *testing.T) {
	f := setup(t)

	res := f.run(t, "show", "--sprint", f.sprint, "--id", f.id(t, "Set up CI"))
	require.NoError(t, res.Err, res.Stderr)
	assert.Contains(t, res.Stdout, "Set up CI")
	assert.Contains(t, res.Stdout, "Eva Mendez, Luis Vargas")
	assert.Contains(t, res.Stdout, "pipeline.yml")
	assert.Contains(t, res.Stdout, "can no longer change")

	res = f.run(t, "show", "--sprint", f.sprint, "--id", "999")
	assert.Equal(t, cli.ExitNotFound, res.ExitCode())
}

// ============================================================================
// CREATE
// ============================================================================

func TestCreate(t *testing.T) {
	f := setup(t)

	res := f.run(t, "create", "--sprint", f.sprint,
		"--title", "  Plan retro ", "--description", "Book a room", "--assignee", f.member(1))
	require.NoError(t, res.Err, res.Stderr)
	assert.Contains(t, res.Stdout, "✓ Task 'Plan retro' created")

	created := f.stored(t, "Plan retro")
	require.NotNil(t, created, "title is trimmed before saving")
	assert.Equal(t, models.StatusTodo, created.Status)
	assert.Equal(t, models.Assignees{f.backend.Seed.MemberIDs[1]}, created.AssignedTo)
}

func TestCreate_QuietPrintsID(t *testing.T) {
	f := setup(t)

	res := f.run(t, "create", "--sprint", f.sprint,
		"--title", "Plan retro", "--description", "Book a room", "--assignee", f.member(0), "--quiet")
	require.NoError(t, res.Err, res.Stderr)
	assert.Equal(t, f.id(t, "Plan retro")+"\n", res.Stdout)
}

func TestCreate_DescriptionFromStdin(t *testing.T) {
	f := setup(t)

	res := f.runWithInput(t, "Piped in\n", "create", "--sprint", f.sprint,
		"--title", "Plan retro", "--description", "-", "--assignee", f.member(0))
	require.NoError(t, res.Err, res.Stderr)
	assert.Equal(t, "Piped in", f.stored(t, "Plan retro").Description)
}

func TestCreate_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"title too long", []string{"--title", strings.Repeat("x", 51), "--description", "d", "--assignee", "1"}},
		{"missing description", []string{"--title", "t", "--assignee", "1"}},
		{"description too long", []string{"--title", "t", "--description", strings.Repeat("x", 201), "--assignee", "1"}},
		{"missing assignee", []string{"--title", "t", "--description", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			args := append([]string{"create", "--sprint", f.sprint, "--json"}, tt.args...)

			res := f.run(t, args...)
			require.Error(t, res.Err)
			assert.Equal(t, cli.ExitValidation, res.ExitCode())

			out := clitest.ParseJSON(t, res.Stdout)
			assert.Equal(t, false, out["success"])
			assert.Equal(t, "VALIDATION_ERROR", out["error"].(map[string]any)["code"])

			tasks, err := f.backend.Repo.Tasks.ListBySprint(context.Background(), f.backend.Seed.SprintIDs[0])
			require.NoError(t, err)
			assert.Len(t, tasks, 4, "nothing is created")
		})
	}
}

// ============================================================================
// MOVE
// ============================================================================

func TestMove(t *testing.T) {
	f := setup(t)

	res := f.run(t, "move", "--sprint", f.sprint, "--id", f.id(t, "Write spec"), "in_progress", "--json")
	require.NoError(t, res.Err, res.Stderr)

	data := clitest.ParseJSON(t, res.Stdout)["data"].(map[string]any)
	assert.Equal(t, "todo", data["from_column"])
	assert.Equal(t, "in_progress", data["to_column"])
	assert.Equal(t, true, data["moved"])

	assert.Equal(t, models.StatusInProgress, f.stored(t, "Write spec").Status)
}

func TestMove_ByColumnTitle(t *testing.T) {
	f := setup(t)

	res := f.run(t, "move", "--sprint", f.sprint, "--id", f.id(t, "Design database"), "Done")
	require.NoError(t, res.Err, res.Stderr)
	assert.Contains(t, res.Stdout, "moved to 'Done'")
	assert.Equal(t, models.StatusDone, f.stored(t, "Design database").Status)
}

func TestMove_SameColumnIsSilent(t *testing.T) {
	f := setup(t)

	res := f.run(t, "move", "--sprint", f.sprint, "--id", f.id(t, "Write spec"), "todo")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "already in 'To Do'")
}

func TestMove_Failures(t *testing.T) {
	tests := []struct {
		name     string
		args     func(t *testing.T, f *fixture) []string
		wantExit int
		wantCode string
	}{
		{
			name:     "reviewed task in done",
			args:     func(t *testing.T, f *fixture) []string { return []string{"--id", f.id(t, "Set up CI"), "todo"} },
			wantExit: cli.ExitValidation,
			wantCode: "TASK_LOCKED",
		},
		{
			name:     "unknown task",
			args:     func(t *testing.T, f *fixture) []string { return []string{"--id", "999", "done"} },
			wantExit: cli.ExitNotFound,
			wantCode: "NOT_FOUND",
		},
		{
			name:     "unknown status",
			args:     func(t *testing.T, f *fixture) []string { return []string{"--id", f.id(t, "Write spec"), "blocked"} },
			wantExit: cli.ExitValidation,
			wantCode: "VALIDATION_ERROR",
		},
		{
			name:     "missing target",
			args:     func(t *testing.T, f *fixture) []string { return []string{"--id", f.id(t, "Write spec")} },
			wantExit: cli.ExitUsage,
			wantCode: "USAGE_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			args := append([]string{"move", "--sprint", f.sprint, "--json"}, tt.args(t, f)...)

			res := f.run(t, args...)
			require.Error(t, res.Err)
			assert.Equal(t, tt.wantExit, res.ExitCode())
			assert.Equal(t, tt.wantCode, clitest.ParseJSON(t, res.Stdout)["error"].(map[string]any)["code"])
		})
	}
}

func TestMove_LockedTaskUnchanged(t *testing.T) {
	f := setup(t)

	f.run(t, "move", "--sprint", f.sprint, "--id", f.id(t, "Set up CI"), "todo")

	task := f.stored(t, "Set up CI")
	assert.Equal(t, models.StatusDone, task.Status)
	assert.True(t, task.Reviewed)
}

// ============================================================================
// UPDATE
// ============================================================================

func TestUpdate(t *testing.T) {
	f := setup(t)

	res := f.run(t, "update", "--sprint", f.sprint, "--id", f.id(t, "Write spec"),
		"--description", "Agree on the REST contract", "--assignee", f.member(1)+","+f.member(2), "--status", "done")
	require.NoError(t, res.Err, res.Stderr)
	assert.Contains(t, res.Stdout, "updated")

	task := f.stored(t, "Write spec")
	assert.Equal(t, "Agree on the REST contract", task.Description)
	assert.Equal(t, models.Assignees{f.backend.Seed.MemberIDs[1], f.backend.Seed.MemberIDs[2]}, task.AssignedTo)
	assert.Equal(t, models.StatusDone, task.Status)
}

func TestUpdate_Failures(t *testing.T) {
	f := setup(t)

	res := f.run(t, "update", "--sprint", f.sprint, "--id", f.id(t, "Write spec"))
	assert.Equal(t, cli.ExitUsage, res.ExitCode(), "nothing to update")

	res = f.run(t, "update", "--sprint", f.sprint, "--id", f.id(t, "Write spec"), "--title", "")
	assert.Equal(t, cli.ExitValidation, res.ExitCode(), "title is required")

	res = f.run(t, "update", "--sprint", f.sprint, "--id", f.id(t, "Set up CI"), "--title", "Renamed")
	assert.Equal(t, cli.ExitValidation, res.ExitCode(), "reviewed task in done")
	assert.NotNil(t, f.stored(t, "Set up CI"))

	assert.Equal(t, "Write spec", f.stored(t, "Write spec").Title)
}

// ============================================================================
// DELETE
// ============================================================================

func TestDelete_Confirmation(t *testing.T) {
	f := setup(t)
	id := f.id(t, "Sprint review notes")

	res := f.runWithInput(t, "n\n", "delete", "--sprint", f.sprint, "--id", id)
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "Delete task "+id+" 'Sprint review notes'? (y/N)")
	assert.Contains(t, res.Stdout, "Deletion cancelled")
	assert.NotNil(t, f.stored(t, "Sprint review notes"))

	res = f.runWithInput(t, "y\n", "delete", "--sprint", f.sprint, "--id", id)
	require.NoError(t, res.Err, res.Stderr)
	assert.Contains(t, res.Stdout, "✓ Task "+id+" deleted")
	assert.Nil(t, f.stored(t, "Sprint review notes"))
}

func TestDelete_Force(t *testing.T) {
	f := setup(t)

	res := f.run(t, "delete", "--sprint", f.sprint, "--id", f.id(t, "Write spec"), "--force")
	require.NoError(t, res.Err, res.Stderr)
	assert.Nil(t, f.stored(t, "Write spec"))
}

func TestDelete_LockedTask(t *testing.T) {
	f := setup(t)

	res := f.run(t, "delete", "--sprint", f.sprint, "--id", f.id(t, "Set up CI"), "--force")
	assert.Equal(t, cli.ExitValidation, res.ExitCode())
	assert.Contains(t, res.Stderr, "reviewed and done")
	assert.NotNil(t, f.stored(t, "Set up CI"))
}
