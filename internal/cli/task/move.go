package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trackmaster/trackmaster/internal/board"
	"github.com/trackmaster/trackmaster/internal/cli"
	"github.com/trackmaster/trackmaster/internal/cli/handler"
	"github.com/trackmaster/trackmaster/internal/models"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <todo|in_progress|done>",
		Short: "Move a task to another column",
		Long: `Move a task to another column by status or column title.

The task goes to the end of the column unless --position is given.
Reviewed tasks in Done cannot be moved.

Examples:
  trackmaster task move --sprint 1 --id 3 in_progress
  trackmaster task move --sprint 1 --id 3 "In Progress"
  trackmaster task move --sprint 1 --id 3 done --position 1

  # JSON output for agents
  trackmaster task move --sprint 1 --id 3 done --json
`,
		RunE: handler.Command(handler.HandlerFunc(runMove), validateMove),
	}

	addBoardFlags(cmd, true)
	cmd.Flags().Int("position", 0, "1-based position in the target column (defaults to the end)")

	return cmd
}

func validateMove(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("expected exactly one target column: todo, in_progress or done")
	}
	if err := validateBoardFlags(cmd, true); err != nil {
		return err
	}
	p := handler.NewFlagParser(cmd)
	if p.Changed("position") {
		if _, err := p.ParseInt("position"); err != nil {
			return err
		}
	}
	return nil
}

func runMove(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	taskID := args.GetInt("id", 0)
	to, err := models.ParseStatus(args.Args[0])
	if err != nil {
		return nil, err
	}

	store, err := c.LoadBoard(ctx, args.GetInt("sprint", 0))
	if err != nil {
		return nil, err
	}
	from, fromIndex, ok := store.Locate(taskID)
	if !ok {
		return nil, fmt.Errorf("%w: task %d", board.ErrTaskNotFound, taskID)
	}

	result := &MoveResult{TaskID: taskID, FromColumn: from, ToColumn: to}

	var op *board.Op
	switch {
	case args.Changed("position"):
		op, err = store.MoveTask(taskID, from, fromIndex, to, args.GetInt("position", 1)-1)
	case from == to:
		return result, nil
	default:
		op, err = store.MoveTaskTo(taskID, to)
	}
	if err != nil {
		return nil, err
	}

	if _, err := c.Save(ctx, store, op); err != nil {
		return nil, err
	}
	result.Moved = from != to
	return result, nil
}
