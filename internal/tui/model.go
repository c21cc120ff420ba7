// Package tui is the interactive kanban board
package tui

import (
	"context"
	"os/exec"
	"runtime"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/trackmaster/trackmaster/internal/board"
	"github.com/trackmaster/trackmaster/internal/config"
	"github.com/trackmaster/trackmaster/internal/models"
	taskservice "github.com/trackmaster/trackmaster/internal/services/task"
	"github.com/trackmaster/trackmaster/internal/session"
	"github.com/trackmaster/trackmaster/internal/tui/components"
	"github.com/trackmaster/trackmaster/internal/tui/dialogs"
	"github.com/trackmaster/trackmaster/internal/tui/state"
)

// Backend is the read side of the REST API the board needs besides tasks
type Backend interface {
	ListSprints(ctx context.Context, groupID int) ([]models.Sprint, error)
	GroupDetails(ctx context.Context, groupID int) (*models.Group, error)
}

// Opener hands a resource URL to the operating system
type Opener func(url string) error

// Deps is everything the board is built from
type Deps struct {
	Config  *config.Config
	Session *session.Session
	Backend Backend
	Tasks   taskservice.Service
	Store   *board.Store
	// Opener defaults to OpenURL
	Opener Opener
}

// Model represents the application state for the TUI
type Model struct {
	ctx     context.Context
	backend Backend
	tasks   taskservice.Service
	open    Opener

	Config  *config.Config
	Session *session.Session
	Store   *board.Store

	// Members resolves assignee IDs; memberList is the dialog option order
	Members    models.MemberDirectory
	memberList []models.TeamMember

	UiState           *state.UIState
	NotificationState *state.NotificationState
	DragState         *state.DragState

	dialog        *dialogs.TaskDialog
	deleteForm    *huh.Form
	deleteConfirm *bool
	deleteTaskID  int
	detailTaskID  int

	spinner       spinner.Model
	sprintsLoaded bool
}

// InitialModel wires the board to its dependencies. Nothing is fetched until Init.
func InitialModel(ctx context.Context, deps Deps) Model {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.Default()
	}
	store := deps.Store
	if store == nil {
		store = board.NewStore(board.WithMaxAttempts(cfg.API.MaxAttempts))
	}
	opener := deps.Opener
	if opener == nil {
		opener = OpenURL
	}
	sess := deps.Session
	if sess == nil {
		sess = &session.Session{}
	}

	components.InitStyles(cfg.ColorScheme)

	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		ctx:               ctx,
		backend:           deps.Backend,
		tasks:             deps.Tasks,
		open:              opener,
		Config:            cfg,
		Session:           sess,
		Store:             store,
		Members:           models.NewMemberDirectory(nil),
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		DragState:         state.NewDragState(),
		deleteConfirm:     new(bool),
		spinner:           s,
	}
}

// Init starts loading sprints and group members
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadSprintsCmd(),
		m.loadMembersCmd(),
		m.spinner.Tick,
	)
}

// currentStatus is the status of the column under the cursor
func (m Model) currentStatus() models.Status {
	statuses := models.Statuses()
	col := max(min(m.UiState.SelectedColumn(), len(statuses)-1), 0)
	return statuses[col]
}

// getCurrentTasks returns the tasks of the selected column
func (m Model) getCurrentTasks() []*models.Task {
	return m.Store.Column(m.currentStatus()).Tasks
}

// getCurrentTask returns the selected task, or nil when the column is empty
func (m Model) getCurrentTask() *models.Task {
	tasks := m.getCurrentTasks()
	if m.UiState.SelectedTask() >= len(tasks) {
		return nil
	}
	return tasks[m.UiState.SelectedTask()]
}

// columnLengths gives the drag state the size of every visible column
func (m Model) columnLengths() map[models.Status]int {
	lengths := make(map[models.Status]int, 3)
	for _, col := range m.Store.Columns() {
		lengths[col.ID] = len(col.Tasks)
	}
	return lengths
}

// selectTask moves the cursor onto a task wherever it is on the board
func (m *Model) selectTask(taskID int) {
	st, idx, ok := m.Store.Locate(taskID)
	if !ok {
		m.UiState.ClampSelection(len(m.getCurrentTasks()))
		return
	}
	m.UiState.Select(st.Index(), idx)
}

// notify shows a transient notification and schedules its dismissal
func (m *Model) notify(level state.NotificationLevel, msg string) tea.Cmd {
	id := m.NotificationState.Add(level, msg)
	return expireNoticeCmd(id, m.Config.UI.NoticeDuration())
}

// OpenURL opens url with the platform's default handler
func OpenURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
