package tui

import (
	"errors"
	"fmt"
	"log/slog"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/trackmaster/trackmaster/internal/board"
	"github.com/trackmaster/trackmaster/internal/models"
	"github.com/trackmaster/trackmaster/internal/tui/dialogs"
	"github.com/trackmaster/trackmaster/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.NotificationState.SetWindowSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case sprintsLoadedMsg:
		return m.handleSprintsLoaded(msg)
	case membersLoadedMsg:
		return m.handleMembersLoaded(msg)
	case tasksLoadedMsg:
		return m.handleTasksLoaded(msg)
	case taskCreatedMsg:
		return m.handleTaskCreated(msg)
	case opResultMsg:
		return m.handleOpResult(msg)
	case retryOpMsg:
		return m.handleRetryOp(msg)

	case dialogs.SubmitMsg:
		return m.handleDialogSubmit(msg)
	case dialogs.CancelMsg:
		m.closeDialog()
		return m, nil

	case noticeExpiredMsg:
		m.NotificationState.Remove(msg.id)
		return m, nil
	case resourceOpenedMsg:
		if msg.err != nil {
			slog.Error("Error opening resource", "url", msg.url, "error", msg.err)
			return m, m.notify(state.LevelError, "Could not open "+msg.url)
		}
		return m, nil
	}

	// Cursor blinks and other internal messages belong to whatever overlay is open
	return m.forwardToOverlay(msg)
}

// handleKeyPress dispatches a key press to the handler for the current mode
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.UiState.Mode() {
	case state.NormalMode:
		return m.handleNormalMode(msg)
	case state.GrabMode:
		return m.handleGrabMode(msg)
	case state.CreateMode, state.EditMode:
		return m.updateDialog(msg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(msg)
	case state.DetailMode:
		return m.handleDetailMode(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	}
	return m, nil
}

func (m Model) forwardToOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.UiState.Mode() {
	case state.CreateMode, state.EditMode:
		return m.updateDialog(msg)
	case state.DeleteConfirmMode:
		return m.updateDeleteForm(msg)
	}
	return m, nil
}

// busy reports whether the loading spinner should keep turning
func (m Model) busy() bool {
	return !m.sprintsLoaded || m.Store.Loading()
}

// ============================================================================
// LOADING
// ============================================================================

func (m Model) handleSprintsLoaded(msg sprintsLoadedMsg) (tea.Model, tea.Cmd) {
	m.sprintsLoaded = true
	if msg.err != nil {
		slog.Error("Error loading sprints", "group", m.Session.GroupID, "error", msg.err)
		return m, m.notify(state.LevelError, "Failed to load sprints")
	}

	m.Store.SetSprints(msg.sprints)
	if m.Store.SprintID() != 0 {
		return m, nil
	}
	id, ok := m.Store.AdjacentSprint(0)
	if !ok {
		return m, nil
	}
	return m.switchSprint(id)
}

func (m Model) handleMembersLoaded(msg membersLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil || msg.group == nil {
		slog.Error("Error loading group members", "group", m.Session.GroupID, "error", msg.err)
		return m, m.notify(state.LevelWarning, "Could not load group members")
	}
	m.memberList = msg.group.Assignable()
	m.Members = models.NewMemberDirectory(m.memberList)
	return m, nil
}

// switchSprint clears the board and starts loading sprintID.
// Anything still in flight for the previous sprint is dropped when it arrives.
func (m Model) switchSprint(sprintID int) (tea.Model, tea.Cmd) {
	gen := m.Store.LoadSprint(sprintID)
	m.UiState.ResetBoard()
	m.DragState.Cancel()
	if m.UiState.Mode() == state.GrabMode {
		m.UiState.SetMode(state.NormalMode)
	}
	slog.Debug("Loading sprint", "sprint", sprintID, "generation", gen)
	return m, tea.Batch(m.loadTasksCmd(gen, sprintID), m.spinner.Tick)
}

func (m Model) handleTasksLoaded(msg tasksLoadedMsg) (tea.Model, tea.Cmd) {
	var err error
	if msg.err != nil {
		err = m.Store.FailLoad(msg.gen, msg.err)
	} else {
		err = m.Store.ApplyLoad(msg.gen, msg.tasks)
	}
	if errors.Is(err, board.ErrStaleGeneration) {
		slog.Debug("Dropping stale sprint load", "generation", msg.gen)
		return m, nil
	}
	m.UiState.ClampSelection(len(m.getCurrentTasks()))
	if err != nil {
		slog.Error("Error loading tasks", "error", err)
		return m, m.notify(state.LevelError, "Failed to load tasks")
	}
	return m, nil
}

// ============================================================================
// PERSISTENCE
// ============================================================================

func (m Model) handleTaskCreated(msg taskCreatedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if msg.gen != m.Store.Generation() {
			return m, nil
		}
		slog.Error("Error creating task", "error", msg.err)
		return m, m.notify(state.LevelError, "Failed to create task")
	}
	if err := m.Store.AddCreated(msg.gen, msg.task); err != nil {
		if !errors.Is(err, board.ErrStaleGeneration) {
			slog.Error("Error adding created task", "error", err)
		}
		return m, nil
	}
	m.selectTask(msg.task.ID)
	return m, m.notify(state.LevelInfo, fmt.Sprintf("Created '%s'", msg.task.Title))
}

func (m Model) handleOpResult(msg opResultMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.Store.Generation() {
		return m, nil
	}
	if msg.err == nil {
		if err := m.Store.Confirm(msg.opID, msg.saved); err != nil {
			slog.Debug("Confirm skipped", "op", msg.opID, "error", err)
		}
		return m, nil
	}

	op, _ := m.Store.Op(msg.opID)
	outcome, err := m.Store.Fail(msg.opID, msg.err)
	if err != nil {
		return m, nil
	}
	switch outcome {
	case board.OutcomeRetry:
		slog.Warn("Retrying operation", "op", msg.opID, "kind", op.Kind, "attempt", op.Attempts+1, "error", msg.err)
		return m, retryOpCmd(msg.opID, msg.gen, op.Attempts+1)
	case board.OutcomeRolledBack:
		slog.Error("Operation rolled back", "op", msg.opID, "kind", op.Kind, "task", op.TaskID, "error", msg.err)
		if m.UiState.Mode() == state.NormalMode {
			m.UiState.ClampSelection(len(m.getCurrentTasks()))
		}
		return m, m.notify(state.LevelError, rollbackMessage(op.Kind))
	}
	return m, nil
}

func (m Model) handleRetryOp(msg retryOpMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.Store.Generation() {
		return m, nil
	}
	op, ok := m.Store.Op(msg.opID)
	if !ok {
		return m, nil
	}
	return m, m.persistCmd(op)
}

func rollbackMessage(kind board.OpKind) string {
	switch kind {
	case board.OpMove:
		return "Failed to move task; it is back where it was"
	case board.OpDelete:
		return "Failed to delete task; it has been restored"
	}
	return "Failed to save task; changes reverted"
}
