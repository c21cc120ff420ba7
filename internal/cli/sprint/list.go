package sprint

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trackmaster/trackmaster/internal/cli"
	"github.com/trackmaster/trackmaster/internal/cli/handler"
	"github.com/trackmaster/trackmaster/internal/cli/styles"
	"github.com/trackmaster/trackmaster/internal/models"
	"github.com/trackmaster/trackmaster/internal/tui/components"
)

// ListCmd returns the sprint list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sprints",
		Long: `List the sprints of the configured group, oldest first.

Examples:
  trackmaster sprint list
  trackmaster sprint list --json
  trackmaster sprint list --quiet   # one ID per line
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runList), validateList),
	}

	cmd.Flags().Int("group", 0, "Group ID (defaults to the configured group)")
	handler.AddOutputFlags(cmd)

	return cmd
}

func validateList(cmd *cobra.Command, args []string) error {
	p := handler.NewFlagParser(cmd)
	if _, _, err := p.OutputFormats(); err != nil {
		return err
	}
	if p.Changed("group") {
		if _, err := p.ParseInt("group"); err != nil {
			return err
		}
	}
	return nil
}

func runList(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	groupID := args.GetInt("group", c.App.Session.GroupID)
	if groupID <= 0 {
		return nil, fmt.Errorf("%w: no group configured; pass --group or set TRACKMASTER_GROUP_ID", cli.ErrUsage)
	}

	sprints, err := c.App.Gateway.ListSprints(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return SprintList(sprints), nil
}

// SprintList is the output of sprint list
type SprintList []models.Sprint

// IDs lists every sprint ID for quiet mode
func (l SprintList) IDs() []int {
	ids := make([]int, len(l))
	for i, sp := range l {
		ids[i] = sp.ID
	}
	return ids
}

func (l SprintList) String() string {
	if len(l) == 0 {
		return styles.SubtitleStyle.Render("No sprints for this group")
	}
	var b strings.Builder
	for i, sp := range l {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%-4d %s  %s", sp.ID, styles.TitleStyle.Render(sp.Title),
			styles.SubtitleStyle.Render(components.SprintRange(sp)))
	}
	return b.String()
}
