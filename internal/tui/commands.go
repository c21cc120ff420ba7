package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/trackmaster/trackmaster/internal/board"
	"github.com/trackmaster/trackmaster/internal/models"
)

// retryBackoff is the base delay before resending a failed operation; it doubles per attempt
const retryBackoff = 500 * time.Millisecond

// requestContext bounds a single backend call
func (m Model) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.ctx, m.Config.API.Timeout())
}

func (m Model) loadSprintsCmd() tea.Cmd {
	if m.backend == nil {
		return nil
	}
	groupID := m.Session.GroupID
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		sprints, err := m.backend.ListSprints(ctx, groupID)
		return sprintsLoadedMsg{sprints: sprints, err: err}
	}
}

func (m Model) loadMembersCmd() tea.Cmd {
	if m.backend == nil {
		return nil
	}
	groupID := m.Session.GroupID
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		group, err := m.backend.GroupDetails(ctx, groupID)
		return membersLoadedMsg{group: group, err: err}
	}
}

func (m Model) loadTasksCmd(gen, sprintID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		tasks, err := m.tasks.ListTasks(ctx, sprintID)
		return tasksLoadedMsg{gen: gen, tasks: tasks, err: err}
	}
}

func (m Model) createTaskCmd(req board.CreateRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		task, err := m.tasks.CreateTask(ctx, req.CreateTaskRequest)
		return taskCreatedMsg{gen: req.Generation, task: task, err: err}
	}
}

// persistCmd sends a pending operation. The op is copied so the
// goroutine never reads store memory.
func (m Model) persistCmd(op *board.Op) tea.Cmd {
	if op == nil {
		return nil
	}
	snapshot := *op
	snapshot.Task = op.Task.Clone()
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		saved, err := board.Persist(ctx, m.tasks, snapshot)
		return opResultMsg{opID: snapshot.ID, gen: snapshot.Generation, saved: saved, err: err}
	}
}

func retryOpCmd(opID, gen, attempt int) tea.Cmd {
	delay := retryBackoff << max(attempt-1, 0)
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return retryOpMsg{opID: opID, gen: gen}
	})
}

func expireNoticeCmd(id int, after time.Duration) tea.Cmd {
	if after <= 0 {
		return nil
	}
	return tea.Tick(after, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}

func (m Model) openResourceCmd(r models.Resource) tea.Cmd {
	open := m.open
	return func() tea.Msg {
		return resourceOpenedMsg{url: r.URL, err: open(r.URL)}
	}
}
