package colors

// DefaultPreset is used when the config names no preset or an unknown one
const DefaultPreset = "default"

var presets = map[string]ColorScheme{
	// teal board with amber drag highlights
	"default": {
		Accent: "#2AA198",
		Create: "#5FD787", Edit: "#5FAFD7", Delete: "#D75F5F",

		ColumnBorder: "#3A7D8C", TaskBorder: "#4E4E4E", TaskBackground: "#1F2A30",
		SelectedBorder: "#2AA198", SelectedBg: "#2E3D44",
		GrabBorder: "#FFAF00", DropTarget: "#FFAF00",
		Locked:       "#87AF87",
		ResourceChip: "#5FAFD7", AssigneeChip: "#AF87D7",

		Title: "#E4E4E4", Subtle: "#6C6C6C", Normal: "#C6C6C6",

		InfoFg: "#D7FFFF", InfoBg: "#005F5F",
		WarningFg: "#FFD787", WarningBg: "#5F4B00",
		ErrorFg: "#FFD7D7", ErrorBg: "#5F0000",
	},
	// greys only, for terminals where color is unwanted
	"monochrome": {
		Accent: "#FFFFFF",
		Create: "#FFFFFF", Edit: "#FFFFFF", Delete: "#FFFFFF",

		ColumnBorder: "#BCBCBC", TaskBorder: "#585858", TaskBackground: "#1C1C1C",
		SelectedBorder: "#FFFFFF", SelectedBg: "#3A3A3A",
		GrabBorder: "#FFFFFF", DropTarget: "#D0D0D0",
		Locked:       "#8A8A8A",
		ResourceChip: "#D0D0D0", AssigneeChip: "#D0D0D0",

		Title: "#FFFFFF", Subtle: "#6C6C6C", Normal: "#D0D0D0",

		InfoFg: "#FFFFFF", InfoBg: "#262626",
		WarningFg: "#FFFFFF", WarningBg: "#444444",
		ErrorFg: "#000000", ErrorBg: "#BCBCBC",
	},
}

// Preset returns the named color scheme, falling back to the default one
func Preset(name string) ColorScheme {
	scheme, ok := presets[name]
	if !ok {
		name = DefaultPreset
		scheme = presets[name]
	}
	scheme.Preset = name
	return scheme
}

// Default returns the default color scheme
func Default() ColorScheme {
	return Preset(DefaultPreset)
}
