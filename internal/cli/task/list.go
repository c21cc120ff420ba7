package task

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/trackmaster/trackmaster/internal/cli"
	"github.com/trackmaster/trackmaster/internal/cli/handler"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a sprint's tasks by column",
		Long: `List every task of a sprint, grouped into the To Do, In Progress and Done columns.

Examples:
  trackmaster task list --sprint 1
  trackmaster task list --sprint 1 --json
  trackmaster task list --sprint 1 --quiet   # one task ID per line
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runList), func(cmd *cobra.Command, args []string) error {
			return validateBoardFlags(cmd, false)
		}),
	}

	addBoardFlags(cmd, false)

	return cmd
}

func runList(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	sprintID := args.GetInt("sprint", 0)

	store, err := c.LoadBoard(ctx, sprintID)
	if err != nil {
		return nil, err
	}

	return &BoardListing{
		SprintID: sprintID,
		Columns:  store.Columns(),
		Members:  c.Members(ctx),
	}, nil
}
