// Package clitest runs CLI commands against the development backend.
// It is kept apart from testutil so lower-level packages can use testutil
// without importing the app container.
package clitest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/trackmaster/trackmaster/internal/app"
	"github.com/trackmaster/trackmaster/internal/cli"
	"github.com/trackmaster/trackmaster/internal/config"
	"github.com/trackmaster/trackmaster/internal/testutil"
)

// SetupCLITest starts a seeded backend and returns an App pointed at it
func SetupCLITest(t *testing.T) (*app.App, *testutil.Backend) {
	t.Helper()
	backend := testutil.StartBackend(t)

	cfg := config.Default()
	cfg.API.BaseURL = backend.URL
	cfg.API.GroupID = backend.Seed.GroupID
	cfg.API.MaxAttempts = 1

	appInstance, err := app.New(cfg, app.WithLogger(testutil.QuietLogger()))
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	return appInstance, backend
}

// Result is what a command printed and returned
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// ExitCode is the process exit code the command would produce
func (r Result) ExitCode() int {
	return cli.ExitCode(r.Err)
}

// ExecuteCLICommand executes a CLI command with a test app instance
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args ...string) Result {
	t.Helper()
	return ExecuteCLICommandWithInput(t, testApp, cmd, "", args...)
}

// ExecuteCLICommandWithInput is ExecuteCLICommand with stdin
func ExecuteCLICommandWithInput(t *testing.T, testApp *app.App, cmd *cobra.Command, stdin string, args ...string) Result {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	ctx := cli.WithCLI(context.Background(), cli.FromApp(testApp))
	err := cmd.ExecuteContext(ctx)

	return Result{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.NewDecoder(strings.NewReader(output)).Decode(&result); err != nil && err != io.EOF {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
	return result
}
