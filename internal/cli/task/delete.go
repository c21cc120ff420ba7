package task

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trackmaster/trackmaster/internal/board"
	"github.com/trackmaster/trackmaster/internal/cli"
	"github.com/trackmaster/trackmaster/internal/cli/handler"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task",
		Long: `Delete a task by ID (requires confirmation unless --force, --json or --quiet).
Reviewed tasks in Done cannot be deleted.

Examples:
  trackmaster task delete --sprint 1 --id 3
  trackmaster task delete --sprint 1 --id 3 --force
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runDelete), func(cmd *cobra.Command, args []string) error {
			return validateBoardFlags(cmd, true)
		}),
	}

	addBoardFlags(cmd, true)
	cmd.Flags().Bool("force", false, "Skip confirmation")

	return cmd
}

func runDelete(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	taskID := args.GetInt("id", 0)

	store, err := c.LoadBoard(ctx, args.GetInt("sprint", 0))
	if err != nil {
		return nil, err
	}
	task, ok := store.Task(taskID)
	if !ok {
		return nil, fmt.Errorf("%w: task %d", board.ErrTaskNotFound, taskID)
	}
	if task.IsLocked() {
		return nil, board.ErrTaskLocked
	}

	// Ask for confirmation unless forced or the output is for a script
	if !args.GetBool("force") && !args.GetBool("quiet") && !args.GetBool("json") {
		cmd := args.GetCmd()
		fmt.Fprintf(cmd.OutOrStdout(), "Delete task %d '%s'? (y/N): ", task.ID, task.Title)
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			return &DeleteResult{TaskID: taskID}, nil
		}
	}

	op, err := store.DeleteTask(taskID)
	if err != nil {
		return nil, err
	}
	if _, err := c.Save(ctx, store, op); err != nil {
		return nil, err
	}
	return &DeleteResult{TaskID: taskID, Deleted: true}, nil
}
