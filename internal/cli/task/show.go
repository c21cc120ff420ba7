package task

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trackmaster/trackmaster/internal/board"
	"github.com/trackmaster/trackmaster/internal/cli"
	"github.com/trackmaster/trackmaster/internal/cli/handler"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show task details",
		Long: `Display a task's status, assignees, description and resources.

Examples:
  trackmaster task show --sprint 1 --id 3
  trackmaster task show --sprint 1 --id 3 --json
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runShow), func(cmd *cobra.Command, args []string) error {
			return validateBoardFlags(cmd, true)
		}),
	}

	addBoardFlags(cmd, true)

	return cmd
}

func runShow(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	taskID := args.GetInt("id", 0)

	store, err := c.LoadBoard(ctx, args.GetInt("sprint", 0))
	if err != nil {
		return nil, err
	}
	task, ok := store.Task(taskID)
	if !ok {
		return nil, fmt.Errorf("%w: task %d", board.ErrTaskNotFound, taskID)
	}

	return &TaskDetail{
		Task:      task,
		Assignees: c.Members(ctx).Names(task.AssignedTo),
	}, nil
}
