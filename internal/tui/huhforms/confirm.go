package huhforms

import (
	"fmt"

	"charm.land/huh/v2"

	"github.com/trackmaster/trackmaster/internal/config/colors"
)

// CreateDeleteConfirm asks before a task is deleted.
// The answer is written to confirm; the form completes on either button.
func CreateDeleteConfirm(taskTitle string, confirm *bool, colorScheme colors.ColorScheme) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title(fmt.Sprintf("Delete '%s'?", taskTitle)).
				Description("This cannot be undone.").
				Affirmative("Delete").
				Negative("Keep").
				Value(confirm),
		),
	).WithTheme(CreateTheme(colorScheme)).WithShowHelp(false)
}
