package theme

import "github.com/trackmaster/trackmaster/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Subtle         string
	Normal         string
	Title          string
	Create         string
	Edit           string
	Delete         string
	ColumnBorder   string
	TaskBorder     string
	TaskBg         string
	SelectedBorder string
	SelectedBg     string
	GrabBorder     string
	DropTarget     string
	Locked         string
	ResourceChip   string
	AssigneeChip   string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	Create = colors.Create
	Edit = colors.Edit
	Delete = colors.Delete
	ColumnBorder = colors.ColumnBorder
	TaskBorder = colors.TaskBorder
	TaskBg = colors.TaskBackground
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	GrabBorder = colors.GrabBorder
	DropTarget = colors.DropTarget
	Locked = colors.Locked
	ResourceChip = colors.ResourceChip
	AssigneeChip = colors.AssigneeChip
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
