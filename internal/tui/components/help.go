package components

import (
	"fmt"

	"github.com/trackmaster/trackmaster/internal/config"
)

// GenerateHelpText creates help text based on current key mappings
func GenerateHelpText(km config.KeyMappings) string {
	return fmt.Sprintf(`TrackMaster - Keyboard Shortcuts

TASKS
  %s     Add new task
  %s     Edit selected task
  %s     Delete selected task
  %s     Grab task / drop it
  esc       Cancel a drag
  %s     Move task to previous column
  %s     Move task to next column
  %s     Show more / less of the description
  %s     View task details
  %s     Open first resource (1-9 pick one)

NAVIGATION
  %s     Move to previous column
  %s     Move to next column
  %s     Move to previous task
  %s     Move to next task
  %s     Switch to previous sprint
  %s     Switch to next sprint

OTHER
  %s     Reload the sprint
  %s     Show this help
  %s     Quit

Press any key to close`,
		km.AddTask,
		km.EditTask,
		km.DeleteTask,
		km.GrabTask,
		km.MoveTaskLeft,
		km.MoveTaskRight,
		km.ToggleMore,
		km.ViewTask,
		km.OpenResource,
		km.PrevColumn,
		km.NextColumn,
		km.PrevTask,
		km.NextTask,
		km.PrevSprint,
		km.NextSprint,
		km.Refresh,
		km.ShowHelp,
		km.Quit,
	)
}
