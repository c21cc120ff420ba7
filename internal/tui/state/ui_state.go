package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	GrabMode                      // A card is picked up and follows the drop target
	CreateMode                    // New task dialog
	EditMode                      // Edit task dialog
	DeleteConfirmMode             // Confirming task deletion
	DetailMode                    // Task detail overlay
	HelpMode                      // Displaying help screen
)

func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "normal"
	case GrabMode:
		return "grab"
	case CreateMode:
		return "create"
	case EditMode:
		return "edit"
	case DeleteConfirmMode:
		return "delete"
	case DetailMode:
		return "detail"
	case HelpMode:
		return "help"
	}
	return "unknown"
}

// UIState manages the user interface state.
// This includes the cursor, per-column scrolling, terminal dimensions,
// the current interaction mode, and which cards are expanded.
type UIState struct {
	// selectedColumn is the index of the currently selected column (0..2)
	selectedColumn int

	// selectedTask is the index of the currently selected task within the selected column
	selectedTask int

	width  int
	height int

	mode Mode

	// taskScrollOffsets tracks the index of the first visible task per column
	taskScrollOffsets map[int]int

	// expanded holds the IDs of cards showing their full description
	expanded map[int]bool
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		taskScrollOffsets: make(map[int]int),
		expanded:          make(map[int]bool),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedTask returns the index of the currently selected task.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = index
}

// Select moves the cursor to a column and task in one step
func (s *UIState) Select(column, task int) {
	s.selectedColumn = column
	s.selectedTask = task
}

// ClampSelection keeps the task cursor inside a column of the given length
func (s *UIState) ClampSelection(columnLen int) {
	if s.selectedTask >= columnLen {
		s.selectedTask = columnLen - 1
	}
	if s.selectedTask < 0 {
		s.selectedTask = 0
	}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode changes the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// TaskScrollOffset returns the scroll offset for a column
func (s *UIState) TaskScrollOffset(column int) int {
	return s.taskScrollOffsets[column]
}

// SetTaskScrollOffset sets the scroll offset for a column
func (s *UIState) SetTaskScrollOffset(column, offset int) {
	s.taskScrollOffsets[column] = max(offset, 0)
}

// EnsureTaskVisible scrolls a column so that index is within a window of size visible
func (s *UIState) EnsureTaskVisible(column, index, visible int) {
	if visible < 1 {
		visible = 1
	}
	offset := s.taskScrollOffsets[column]
	if index < offset {
		offset = index
	}
	if index >= offset+visible {
		offset = index - visible + 1
	}
	s.SetTaskScrollOffset(column, offset)
}

// IsExpanded reports whether a card shows its full description
func (s *UIState) IsExpanded(taskID int) bool {
	return s.expanded[taskID]
}

// ToggleExpanded flips a card between the truncated and full description
func (s *UIState) ToggleExpanded(taskID int) bool {
	if s.expanded[taskID] {
		delete(s.expanded, taskID)
		return false
	}
	s.expanded[taskID] = true
	return true
}

// ResetBoard forgets the cursor, scrolling and expanded cards. Used on sprint switch.
func (s *UIState) ResetBoard() {
	s.selectedColumn = 0
	s.selectedTask = 0
	s.taskScrollOffsets = make(map[int]int)
	s.expanded = make(map[int]bool)
}
