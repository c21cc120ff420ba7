package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - new task dialog
	Edit   string `yaml:"edit"`   // Blue - edit dialog
	Delete string `yaml:"delete"` // Red - delete confirmations

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	TaskBorder     string `yaml:"task_border"`
	TaskBackground string `yaml:"task_background"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`
	GrabBorder     string `yaml:"grab_border"`   // card being dragged
	DropTarget     string `yaml:"drop_target"`   // insertion marker while dragging
	Locked         string `yaml:"locked"`        // reviewed and done cards
	ResourceChip   string `yaml:"resource_chip"` // file/link chips
	AssigneeChip   string `yaml:"assignee_chip"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// fields lists every color slot so defaults and merges stay in sync with the struct
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent,
		&c.Create, &c.Edit, &c.Delete,
		&c.ColumnBorder, &c.TaskBorder, &c.TaskBackground,
		&c.SelectedBorder, &c.SelectedBg,
		&c.GrabBorder, &c.DropTarget, &c.Locked,
		&c.ResourceChip, &c.AssigneeChip,
		&c.Title, &c.Subtle, &c.Normal,
		&c.InfoFg, &c.InfoBg,
		&c.WarningFg, &c.WarningBg,
		&c.ErrorFg, &c.ErrorBg,
	}
}

// ApplyDefaults fills every empty slot from the named preset
func (c *ColorScheme) ApplyDefaults() {
	preset := Preset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	dst, src := c.fields(), preset.fields()
	for i := range dst {
		if *dst[i] == "" {
			*dst[i] = *src[i]
		}
	}
}

// MergeFrom overrides colors with every non-empty value in other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	dst, src := c.fields(), other.fields()
	for i := range dst {
		if *src[i] != "" {
			*dst[i] = *src[i]
		}
	}
}
