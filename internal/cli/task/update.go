package task

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/trackmaster/trackmaster/internal/board"
	"github.com/trackmaster/trackmaster/internal/cli"
	"github.com/trackmaster/trackmaster/internal/cli/handler"
	"github.com/trackmaster/trackmaster/internal/models"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a task",
		Long: `Update a task's title, description, assignees or status.
Only the flags given are changed. Reviewed tasks in Done cannot be updated.

Examples:
  trackmaster task update --sprint 1 --id 3 --title "Write the spec"
  trackmaster task update --sprint 1 --id 3 --assignee 1,2
  trackmaster task update --sprint 1 --id 3 --status done
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runUpdate), validateUpdate),
	}

	addBoardFlags(cmd, true)
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().IntSlice("assignee", nil, "Member IDs the task is assigned to (replaces the current list)")
	cmd.Flags().String("status", "", "New status: todo, in_progress or done")

	return cmd
}

func validateUpdate(cmd *cobra.Command, args []string) error {
	if err := validateBoardFlags(cmd, true); err != nil {
		return err
	}
	p := handler.NewFlagParser(cmd)
	if !p.Changed("title") && !p.Changed("description") && !p.Changed("assignee") && !p.Changed("status") {
		return errors.New("nothing to update; pass at least one of --title, --description, --assignee, --status")
	}
	if p.Changed("assignee") {
		if _, err := p.ParseIntSlice("assignee"); err != nil {
			return err
		}
	}
	return nil
}

func runUpdate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	taskID := args.GetInt("id", 0)

	var patch board.Patch
	if args.Changed("title") {
		title := args.GetString("title", "")
		patch.Title = &title
	}
	if args.Changed("description") {
		description := args.GetString("description", "")
		patch.Description = &description
	}
	if args.Changed("assignee") {
		patch.AssignedTo = args.GetIntSlice("assignee", []int{})
	}
	if args.Changed("status") {
		status, err := models.ParseStatus(args.GetString("status", ""))
		if err != nil {
			return nil, err
		}
		patch.Status = &status
	}

	store, err := c.LoadBoard(ctx, args.GetInt("sprint", 0))
	if err != nil {
		return nil, err
	}
	op, err := store.EditTask(taskID, patch)
	if err != nil {
		return nil, err
	}

	saved, err := c.Save(ctx, store, op)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		saved, _ = store.Task(taskID)
	}
	return &TaskResult{Action: "updated", Task: saved}, nil
}
