package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/trackmaster/trackmaster/internal/board"
	"github.com/trackmaster/trackmaster/internal/models"
	"github.com/trackmaster/trackmaster/internal/tui/dialogs"
	"github.com/trackmaster/trackmaster/internal/tui/huhforms"
	"github.com/trackmaster/trackmaster/internal/tui/state"
)

const lockedNotice = "Reviewed tasks in Done can no longer change"

func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit:
		return m, tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case km.AddTask:
		return m.handleAddTask()
	case km.EditTask:
		return m.handleEditTask()
	case km.DeleteTask:
		return m.handleDeleteTask()
	case km.ViewTask, "enter":
		return m.handleViewTask()
	case km.GrabTask:
		return m.handleGrabTask()
	case km.MoveTaskLeft:
		return m.handleMoveTaskColumn(-1)
	case km.MoveTaskRight:
		return m.handleMoveTaskColumn(1)
	case km.ToggleMore:
		return m.handleToggleMore()
	case km.OpenResource:
		return m.handleOpenResource(m.getCurrentTask(), 0)
	case km.PrevColumn, "left":
		return m.handleNavigateColumn(-1)
	case km.NextColumn, "right":
		return m.handleNavigateColumn(1)
	case km.PrevTask, "up":
		return m.handleNavigateTask(-1)
	case km.NextTask, "down":
		return m.handleNavigateTask(1)
	case km.PrevSprint:
		return m.handleSwitchSprint(-1)
	case km.NextSprint:
		return m.handleSwitchSprint(1)
	case km.Refresh:
		return m.handleRefresh()
	}

	if n, ok := resourceKey(key); ok {
		return m.handleOpenResource(m.getCurrentTask(), n)
	}
	return m, nil
}

// resourceKey maps "1".."9" to a resource index
func resourceKey(key string) (int, bool) {
	n, err := strconv.Atoi(key)
	if err != nil || n < 1 || n > 9 {
		return 0, false
	}
	return n - 1, true
}

// ============================================================================
// NAVIGATION
// ============================================================================

func (m Model) handleNavigateColumn(delta int) (tea.Model, tea.Cmd) {
	next := m.UiState.SelectedColumn() + delta
	if next < 0 || next >= len(models.Statuses()) {
		return m, nil
	}
	m.UiState.SetSelectedColumn(next)
	m.UiState.ClampSelection(len(m.getCurrentTasks()))
	return m, nil
}

func (m Model) handleNavigateTask(delta int) (tea.Model, tea.Cmd) {
	next := m.UiState.SelectedTask() + delta
	if next < 0 || next >= len(m.getCurrentTasks()) {
		return m, nil
	}
	m.UiState.SetSelectedTask(next)
	return m, nil
}

func (m Model) handleSwitchSprint(delta int) (tea.Model, tea.Cmd) {
	id, ok := m.Store.AdjacentSprint(delta)
	if !ok {
		if len(m.Store.Sprints()) == 0 {
			return m, m.notify(state.LevelInfo, "No sprints for this group")
		}
		if delta < 0 {
			return m, m.notify(state.LevelInfo, "Already at the first sprint")
		}
		return m, m.notify(state.LevelInfo, "Already at the last sprint")
	}
	return m.switchSprint(id)
}

// handleRefresh reloads sprints, members and the current sprint.
// It waits while changes are still being saved, since a reload forgets them.
func (m Model) handleRefresh() (tea.Model, tea.Cmd) {
	if n := len(m.Store.Pending()); n > 0 {
		return m, m.notify(state.LevelWarning, fmt.Sprintf("Saving %d change(s); try again in a moment", n))
	}
	cmds := []tea.Cmd{m.loadSprintsCmd(), m.loadMembersCmd()}
	if id := m.Store.SprintID(); id != 0 {
		model, cmd := m.switchSprint(id)
		m = model.(Model)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// ============================================================================
// CARDS
// ============================================================================

func (m Model) handleToggleMore() (tea.Model, tea.Cmd) {
	if task := m.getCurrentTask(); task != nil {
		m.UiState.ToggleExpanded(task.ID)
	}
	return m, nil
}

func (m Model) handleViewTask() (tea.Model, tea.Cmd) {
	task := m.getCurrentTask()
	if task == nil {
		return m, nil
	}
	m.detailTaskID = task.ID
	m.UiState.SetMode(state.DetailMode)
	return m, nil
}

func (m Model) handleOpenResource(task *models.Task, n int) (tea.Model, tea.Cmd) {
	if task == nil {
		return m, nil
	}
	if n >= len(task.Resources) {
		if len(task.Resources) == 0 {
			return m, m.notify(state.LevelInfo, "This task has no resources")
		}
		return m, m.notify(state.LevelInfo, fmt.Sprintf("This task has %d resource(s)", len(task.Resources)))
	}
	return m, m.openResourceCmd(task.Resources[n])
}

// ============================================================================
// MOVES
// ============================================================================

func (m Model) handleGrabTask() (tea.Model, tea.Cmd) {
	task := m.getCurrentTask()
	if task == nil {
		return m, nil
	}
	if task.IsLocked() {
		return m, m.notify(state.LevelWarning, lockedNotice)
	}
	m.DragState.Grab(task.ID, m.currentStatus(), m.UiState.SelectedTask())
	m.UiState.SetMode(state.GrabMode)
	return m, nil
}

// handleMoveTaskColumn sends the selected card to the end of the neighbouring column
func (m Model) handleMoveTaskColumn(delta int) (tea.Model, tea.Cmd) {
	task := m.getCurrentTask()
	if task == nil {
		return m, nil
	}
	statuses := models.Statuses()
	next := m.currentStatus().Index() + delta
	if next < 0 || next >= len(statuses) {
		return m, nil
	}

	op, err := m.Store.MoveTaskTo(task.ID, statuses[next])
	if err != nil {
		return m, m.mutationError("move", err)
	}
	m.selectTask(task.ID)
	return m, m.persistCmd(op)
}

// mutationError turns a refused board mutation into a notification
func (m *Model) mutationError(action string, err error) tea.Cmd {
	if errors.Is(err, board.ErrTaskLocked) {
		return m.notify(state.LevelWarning, lockedNotice)
	}
	slog.Error("Error applying change", "action", action, "error", err)
	return m.notify(state.LevelError, fmt.Sprintf("Could not %s task: %v", action, err))
}

// ============================================================================
// DIALOG ENTRY POINTS
// ============================================================================

func (m Model) handleAddTask() (tea.Model, tea.Cmd) {
	if m.Store.SprintID() == 0 {
		return m, m.notify(state.LevelWarning, "Select a sprint before adding tasks")
	}
	m.dialog = dialogs.NewCreateDialog(m.memberList, m.Config.KeyMappings.SaveForm)
	m.UiState.SetMode(state.CreateMode)
	return m, m.dialog.Init()
}

func (m Model) handleEditTask() (tea.Model, tea.Cmd) {
	task := m.getCurrentTask()
	if task == nil {
		return m, nil
	}
	if task.IsLocked() {
		return m, m.notify(state.LevelWarning, lockedNotice)
	}
	m.dialog = dialogs.NewEditDialog(task, m.memberList, m.Config.KeyMappings.SaveForm)
	m.UiState.SetMode(state.EditMode)
	return m, m.dialog.Init()
}

func (m Model) handleDeleteTask() (tea.Model, tea.Cmd) {
	task := m.getCurrentTask()
	if task == nil {
		return m, nil
	}
	if task.IsLocked() {
		return m, m.notify(state.LevelWarning, lockedNotice)
	}
	*m.deleteConfirm = false
	m.deleteTaskID = task.ID
	m.deleteForm = huhforms.CreateDeleteConfirm(task.Title, m.deleteConfirm, m.Config.ColorScheme)
	m.UiState.SetMode(state.DeleteConfirmMode)
	return m, m.deleteForm.Init()
}
