package task

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/trackmaster/trackmaster/internal/cli"
	"github.com/trackmaster/trackmaster/internal/cli/handler"
	taskservice "github.com/trackmaster/trackmaster/internal/services/task"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a task in the To Do column of a sprint.

The title (at most 50 characters), description (at most 200 characters)
and assignee are required. The assignee defaults to the signed-in user.

Examples:
  # Simple task (human-readable output)
  trackmaster task create --sprint 1 --title "Write spec" --description "First draft" --assignee 2

  # Description from stdin
  echo "First draft" | trackmaster task create --sprint 1 --title "Write spec" --description - --assignee 2

  # Quiet mode for bash capture
  TASK_ID=$(trackmaster task create --sprint 1 --title "Write spec" --description "First draft" --assignee 2 --quiet)
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runCreate), func(cmd *cobra.Command, args []string) error {
			return validateBoardFlags(cmd, false)
		}),
	}

	addBoardFlags(cmd, false)
	cmd.Flags().String("title", "", "Task title (required)")
	cmd.Flags().String("description", "", "Task description, or - to read it from stdin (required)")
	cmd.Flags().Int("assignee", 0, "Member ID the task is assigned to")

	return cmd
}

func runCreate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	description := args.GetString("description", "")
	if description == "-" {
		data, err := io.ReadAll(args.GetCmd().InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read description from stdin: %w", err)
		}
		description = string(data)
	}

	store, err := c.LoadBoard(ctx, args.GetInt("sprint", 0))
	if err != nil {
		return nil, err
	}

	req, err := store.CreateTask(taskservice.CreateInput{
		Title:       args.GetString("title", ""),
		Description: description,
		Assignee:    args.GetInt("assignee", c.App.Session.UserID),
	})
	if err != nil {
		return nil, err
	}

	task, err := c.App.TaskService.CreateTask(ctx, req.CreateTaskRequest)
	if err != nil {
		return nil, err
	}
	if err := store.AddCreated(req.Generation, task); err != nil {
		slog.Warn("created task not added to board", "task_id", task.ID, "error", err)
	}

	return &TaskResult{Action: "created", Task: task}, nil
}
