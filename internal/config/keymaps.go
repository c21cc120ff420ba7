package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask       string `yaml:"add_task"`
	EditTask      string `yaml:"edit_task"`
	DeleteTask    string `yaml:"delete_task"`
	ViewTask      string `yaml:"view_task"`
	GrabTask      string `yaml:"grab_task"`
	MoveTaskLeft  string `yaml:"move_task_left"`
	MoveTaskRight string `yaml:"move_task_right"`
	ToggleMore    string `yaml:"toggle_more"`
	OpenResource  string `yaml:"open_resource"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`
	PrevSprint string `yaml:"prev_sprint"`
	NextSprint string `yaml:"next_sprint"`

	// Other
	Refresh  string `yaml:"refresh"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:       "a",
		EditTask:      "e",
		DeleteTask:    "d",
		ViewTask:      "v",
		GrabTask:      "space",
		MoveTaskLeft:  "H",
		MoveTaskRight: "L",
		ToggleMore:    "m",
		OpenResource:  "o",
		SaveForm:      "ctrl+s",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",
		PrevSprint: "[",
		NextSprint: "]",

		// Other
		Refresh:  "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

func (k *KeyMappings) fields() []*string {
	return []*string{
		&k.AddTask, &k.EditTask, &k.DeleteTask, &k.ViewTask, &k.GrabTask,
		&k.MoveTaskLeft, &k.MoveTaskRight, &k.ToggleMore, &k.OpenResource,
		&k.SaveForm,
		&k.PrevColumn, &k.NextColumn, &k.PrevTask, &k.NextTask,
		&k.PrevSprint, &k.NextSprint,
		&k.Refresh, &k.ShowHelp, &k.Quit,
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	dst, src := k.fields(), defaults.fields()
	for i := range dst {
		if *dst[i] == "" {
			*dst[i] = *src[i]
		}
	}
}
