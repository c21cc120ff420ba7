package tui

import "github.com/trackmaster/trackmaster/internal/models"

// Backend results come back to the update loop as messages.
// Anything tied to a sprint load carries its generation so stale
// results can be dropped.

type sprintsLoadedMsg struct {
	sprints []models.Sprint
	err     error
}

type membersLoadedMsg struct {
	group *models.Group
	err   error
}

type tasksLoadedMsg struct {
	gen   int
	tasks []*models.Task
	err   error
}

type taskCreatedMsg struct {
	gen  int
	task *models.Task
	err  error
}

// opResultMsg reports one persistence attempt of a pending operation
type opResultMsg struct {
	opID  int
	gen   int
	saved *models.Task
	err   error
}

type retryOpMsg struct {
	opID int
	gen  int
}

type noticeExpiredMsg struct {
	id int
}

type resourceOpenedMsg struct {
	url string
	err error
}
