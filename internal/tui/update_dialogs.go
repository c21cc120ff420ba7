package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/trackmaster/trackmaster/internal/board"
	"github.com/trackmaster/trackmaster/internal/tui/dialogs"
	"github.com/trackmaster/trackmaster/internal/tui/state"
)

// ============================================================================
// TASK DIALOGS
// ============================================================================

func (m Model) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.dialog == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}
	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.Update(msg)
	return m, cmd
}

// handleDialogSubmit hands a validated dialog to the store.
// A refused change reopens the dialog with the error instead of closing it.
func (m Model) handleDialogSubmit(msg dialogs.SubmitMsg) (tea.Model, tea.Cmd) {
	if m.dialog == nil || m.dialog.Kind() != msg.Kind {
		return m, nil
	}

	switch msg.Kind {
	case dialogs.KindCreate:
		req, err := m.Store.CreateTask(msg.Create)
		if err != nil {
			m.dialog.Reject(err)
			return m, nil
		}
		m.closeDialog()
		return m, m.createTaskCmd(req)

	case dialogs.KindEdit:
		title, description := msg.Edit.Title, msg.Edit.Description
		op, err := m.Store.EditTask(msg.TaskID, board.Patch{
			Title:       &title,
			Description: &description,
			AssignedTo:  msg.Edit.AssignedTo,
		})
		if err != nil {
			m.dialog.Reject(err)
			return m, nil
		}
		m.closeDialog()
		m.selectTask(msg.TaskID)
		return m, m.persistCmd(op)
	}
	return m, nil
}

func (m *Model) closeDialog() {
	m.dialog = nil
	m.UiState.SetMode(state.NormalMode)
}

// ============================================================================
// DELETE CONFIRMATION
// ============================================================================

// handleDeleteConfirm answers y/n directly and leaves the rest to the huh form
func (m Model) handleDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.confirmDeleteTask()
	case "n", "N", "esc":
		m.closeDeleteConfirm()
		return m, nil
	}
	return m.updateDeleteForm(msg)
}

func (m Model) updateDeleteForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.deleteForm == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	model, cmd := m.deleteForm.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.deleteForm = f
	}

	switch m.deleteForm.State {
	case huh.StateCompleted:
		if *m.deleteConfirm {
			return m.confirmDeleteTask()
		}
		m.closeDeleteConfirm()
		return m, nil
	case huh.StateAborted:
		m.closeDeleteConfirm()
		return m, nil
	}
	return m, cmd
}

func (m Model) confirmDeleteTask() (tea.Model, tea.Cmd) {
	taskID := m.deleteTaskID
	m.closeDeleteConfirm()

	task, _ := m.Store.Task(taskID)
	op, err := m.Store.DeleteTask(taskID)
	if err != nil {
		return m, m.mutationError("delete", err)
	}
	m.UiState.ClampSelection(len(m.getCurrentTasks()))

	cmds := []tea.Cmd{m.persistCmd(op)}
	if task != nil {
		cmds = append(cmds, m.notify(state.LevelInfo, fmt.Sprintf("Deleted '%s'", task.Title)))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) closeDeleteConfirm() {
	m.deleteForm = nil
	m.deleteTaskID = 0
	m.UiState.SetMode(state.NormalMode)
}

// ============================================================================
// OVERLAYS
// ============================================================================

// handleDetailMode closes the detail overlay or opens one of its resources
func (m Model) handleDetailMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	key := msg.String()

	switch key {
	case "esc", km.ViewTask, km.Quit, "enter":
		m.detailTaskID = 0
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	case km.OpenResource:
		task, _ := m.Store.Task(m.detailTaskID)
		return m.handleOpenResource(task, 0)
	}
	if n, ok := resourceKey(key); ok {
		task, _ := m.Store.Task(m.detailTaskID)
		return m.handleOpenResource(task, n)
	}
	return m, nil
}

// handleHelpMode closes the help screen on any key
func (m Model) handleHelpMode(tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.UiState.SetMode(state.NormalMode)
	return m, nil
}
