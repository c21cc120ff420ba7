package task

import (
	"github.com/spf13/cobra"

	"github.com/trackmaster/trackmaster/internal/cli/handler"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage sprint tasks",
		Long: `Manage the tasks of a sprint board.

Every command loads the sprint's board first and applies the same rules as
the interactive board: reviewed tasks in Done cannot be moved, edited or
deleted, and titles, descriptions and assignees are validated before
anything is sent to the backend.`,
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// addBoardFlags adds the --sprint flag every task command needs, plus --id when withID
func addBoardFlags(cmd *cobra.Command, withID bool) {
	cmd.Flags().Int("sprint", 0, "Sprint ID (required)")
	if withID {
		cmd.Flags().Int("id", 0, "Task ID (required)")
	}
	handler.AddOutputFlags(cmd)
}

// validateBoardFlags checks the flags added by addBoardFlags
func validateBoardFlags(cmd *cobra.Command, withID bool) error {
	p := handler.NewFlagParser(cmd)
	if _, _, err := p.OutputFormats(); err != nil {
		return err
	}
	if _, err := p.ParseSprintID("sprint"); err != nil {
		return err
	}
	if withID {
		if _, err := p.ParseTaskID("id"); err != nil {
			return err
		}
	}
	return nil
}
