package sprint

import (
	"github.com/spf13/cobra"
)

// SprintCmd returns the sprint parent command
func SprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sprint",
		Short: "Browse the group's sprints",
	}

	cmd.AddCommand(ListCmd())

	return cmd
}
