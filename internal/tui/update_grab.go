package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/trackmaster/trackmaster/internal/tui/state"
)

// handleGrabMode moves the drop target of a grabbed card.
// The board only changes when the card is dropped.
func (m Model) handleGrabMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch msg.String() {
	case km.GrabTask, "enter":
		return m.dropTask()
	case "esc":
		return m.cancelGrab()
	case km.Quit:
		return m, tea.Quit
	case km.PrevColumn, "left":
		m.DragState.MoveColumn(-1, m.columnLengths())
	case km.NextColumn, "right":
		m.DragState.MoveColumn(1, m.columnLengths())
	case km.PrevTask, "up":
		m.DragState.MoveIndex(-1, m.columnLengths())
	case km.NextTask, "down":
		m.DragState.MoveIndex(1, m.columnLengths())
	default:
		return m, nil
	}

	// the cursor follows the drop target so the column scrolls with it
	to, idx := m.DragState.Target()
	m.UiState.Select(to.Index(), idx)
	return m, nil
}

func (m Model) dropTask() (tea.Model, tea.Cmd) {
	taskID := m.DragState.TaskID()
	from, fromIdx := m.DragState.Source()
	to, toIdx := m.DragState.Target()
	m.DragState.Cancel()
	m.UiState.SetMode(state.NormalMode)

	op, err := m.Store.MoveTask(taskID, from, fromIdx, to, toIdx)
	if err != nil {
		m.selectTask(taskID)
		return m, m.mutationError("move", err)
	}
	m.selectTask(taskID)
	return m, m.persistCmd(op)
}

func (m Model) cancelGrab() (tea.Model, tea.Cmd) {
	from, fromIdx := m.DragState.Source()
	m.DragState.Cancel()
	m.UiState.SetMode(state.NormalMode)
	m.UiState.Select(from.Index(), fromIdx)
	return m, nil
}
