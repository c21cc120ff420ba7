package board

import (
	"fmt"

	"github.com/trackmaster/trackmaster/internal/models"
	taskservice "github.com/trackmaster/trackmaster/internal/services/task"
)

// DefaultMaxAttempts is how many times a retryable operation is sent before rolling back
const DefaultMaxAttempts = 3

type columns map[models.Status][]*models.Task

// Store is the single source of truth for the three columns of the selected sprint.
//
// Mutations are optimistic: they change the visible columns immediately and
// return a pending Op for the caller to persist. The confirmed columns only
// change when an Op is confirmed, so a failed Op can be rolled back by
// replaying the remaining pending Ops on top of the confirmed snapshot.
//
// Store is not safe for concurrent use; the TUI only touches it from the update loop.
type Store struct {
	sprints  []models.Sprint
	sprintID int

	generation int
	loading    bool

	confirmed columns
	visible   columns
	pending   []*Op

	nextOpID    int
	maxAttempts int
}

// Option configures a Store
type Option func(*Store)

// WithMaxAttempts sets the retry budget for pending operations
func WithMaxAttempts(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// NewStore creates an empty board with no sprint selected
func NewStore(opts ...Option) *Store {
	s := &Store{
		confirmed:   emptyColumns(),
		visible:     emptyColumns(),
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ============================================================================
// SPRINTS
// ============================================================================

// SetSprints replaces the sprint list. The selection is kept only if it still exists.
func (s *Store) SetSprints(sprints []models.Sprint) {
	s.sprints = append([]models.Sprint(nil), sprints...)
	if s.sprintIndex(s.sprintID) < 0 {
		s.sprintID = 0
	}
}

// Sprints returns the available sprints
func (s *Store) Sprints() []models.Sprint {
	return append([]models.Sprint(nil), s.sprints...)
}

// SprintID returns the selected sprint, or 0 when none is selected
func (s *Store) SprintID() int {
	return s.sprintID
}

// Sprint returns the selected sprint
func (s *Store) Sprint() (models.Sprint, bool) {
	i := s.sprintIndex(s.sprintID)
	if i < 0 {
		return models.Sprint{}, false
	}
	return s.sprints[i], true
}

// AdjacentSprint returns the ID of the sprint delta positions away from the selection.
// With nothing selected, any move picks the first sprint.
func (s *Store) AdjacentSprint(delta int) (int, bool) {
	if len(s.sprints) == 0 {
		return 0, false
	}
	i := s.sprintIndex(s.sprintID)
	if i < 0 {
		return s.sprints[0].ID, true
	}
	next := i + delta
	if next < 0 || next >= len(s.sprints) {
		return 0, false
	}
	return s.sprints[next].ID, true
}

func (s *Store) sprintIndex(id int) int {
	for i, sp := range s.sprints {
		if sp.ID == id {
			return i
		}
	}
	return -1
}

// ============================================================================
// LOADING
// ============================================================================

// LoadSprint selects a sprint and starts a new load generation.
// Columns are emptied right away and pending operations are forgotten.
func (s *Store) LoadSprint(sprintID int) int {
	s.sprintID = sprintID
	s.generation++
	s.loading = true
	s.confirmed = emptyColumns()
	s.visible = emptyColumns()
	s.pending = nil
	return s.generation
}

// ApplyLoad replaces the columns with the fetched tasks, partitioned by status.
// Returns ErrStaleGeneration if a newer load has started since gen.
func (s *Store) ApplyLoad(gen int, tasks []*models.Task) error {
	if gen != s.generation {
		return ErrStaleGeneration
	}
	s.loading = false

	cols := emptyColumns()
	seen := make(map[int]bool, len(tasks))
	for _, t := range tasks {
		if t == nil || seen[t.ID] {
			continue
		}
		if !t.Status.Valid() {
			s.confirmed = emptyColumns()
			s.visible = emptyColumns()
			return fmt.Errorf("failed to load task %d: %w: %q", t.ID, ErrUnknownStatus, t.Status)
		}
		seen[t.ID] = true
		cols[t.Status] = append(cols[t.Status], t.Clone())
	}

	s.confirmed = cols
	s.visible = cols.clone()
	return nil
}

// FailLoad ends a load that could not fetch its tasks. Columns stay empty.
func (s *Store) FailLoad(gen int, err error) error {
	if gen != s.generation {
		return ErrStaleGeneration
	}
	s.loading = false
	s.confirmed = emptyColumns()
	s.visible = emptyColumns()
	return fmt.Errorf("failed to load sprint %d: %w", s.sprintID, err)
}

// Loading reports whether a sprint load is in flight
func (s *Store) Loading() bool {
	return s.loading
}

// Generation returns the current load generation
func (s *Store) Generation() int {
	return s.generation
}

// ============================================================================
// READS
// ============================================================================

// Columns returns the visible board in column order
func (s *Store) Columns() []models.Column {
	out := make([]models.Column, 0, len(models.Statuses()))
	for _, st := range models.Statuses() {
		out = append(out, s.Column(st))
	}
	return out
}

// Column returns one visible column. Tasks are copies.
func (s *Store) Column(status models.Status) models.Column {
	return models.Column{
		ID:    status,
		Title: status.Title(),
		Tasks: cloneTasks(s.visible[status]),
	}
}

// Locate finds the column and index of a visible task
func (s *Store) Locate(taskID int) (models.Status, int, bool) {
	return s.visible.locate(taskID)
}

// Task returns a copy of a visible task
func (s *Store) Task(taskID int) (*models.Task, bool) {
	st, i, ok := s.visible.locate(taskID)
	if !ok {
		return nil, false
	}
	return s.visible[st][i].Clone(), true
}

// Pending returns copies of the operations awaiting confirmation, oldest first
func (s *Store) Pending() []Op {
	out := make([]Op, 0, len(s.pending))
	for _, op := range s.pending {
		c := *op
		c.Task = op.Task.Clone()
		out = append(out, c)
	}
	return out
}

// ============================================================================
// MUTATIONS
// ============================================================================

// MoveTask moves a task between (or within) columns and re-statuses it.
//
// Moving to the same position is a no-op and returns a nil Op. Reordering
// inside a column is applied locally and also returns a nil Op, since order
// is not persisted. toIndex past the end of the destination appends.
func (s *Store) MoveTask(taskID int, from models.Status, fromIndex int, to models.Status, toIndex int) (*Op, error) {
	if !from.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, from)
	}
	if !to.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, to)
	}
	src := s.visible[from]
	if fromIndex < 0 || fromIndex >= len(src) {
		return nil, fmt.Errorf("%w: %s[%d]", ErrIndexOutOfRange, from, fromIndex)
	}
	if toIndex < 0 {
		return nil, fmt.Errorf("%w: %s[%d]", ErrIndexOutOfRange, to, toIndex)
	}
	task := src[fromIndex]
	if task.ID != taskID {
		return nil, fmt.Errorf("%w: %d is not at %s[%d]", ErrTaskNotFound, taskID, from, fromIndex)
	}
	if task.IsLocked() {
		return nil, ErrTaskLocked
	}
	if from == to && fromIndex == toIndex {
		return nil, nil
	}

	moved := task.Clone()
	moved.Status = to
	op := s.newOp(OpMove, moved)
	op.From, op.FromIndex = from, fromIndex
	op.To, op.ToIndex = to, toIndex

	if from == to {
		if st, _, ok := s.confirmed.locate(taskID); ok && st == from {
			s.confirmed.apply(op)
		}
		s.visible.apply(op)
		return nil, nil
	}

	s.visible.apply(op)
	s.pending = append(s.pending, op)
	return op, nil
}

// MoveTaskTo moves a task to the end of another column
func (s *Store) MoveTaskTo(taskID int, to models.Status) (*Op, error) {
	from, idx, ok := s.visible.locate(taskID)
	if !ok {
		return nil, ErrTaskNotFound
	}
	return s.MoveTask(taskID, from, idx, to, len(s.visible[to]))
}

// Patch describes an edit. Nil fields are left unchanged.
type Patch struct {
	Title       *string
	Description *string
	AssignedTo  []int
	Status      *models.Status
}

// EditTask validates and applies a patch in place.
// A status change moves the task to the end of the new column.
func (s *Store) EditTask(taskID int, patch Patch) (*Op, error) {
	st, i, ok := s.visible.locate(taskID)
	if !ok {
		return nil, ErrTaskNotFound
	}
	current := s.visible[st][i]
	if current.IsLocked() {
		return nil, ErrTaskLocked
	}

	edited := current.Clone()
	if patch.Title != nil {
		edited.Title = *patch.Title
	}
	if patch.Description != nil {
		edited.Description = *patch.Description
	}
	if patch.AssignedTo != nil {
		edited.AssignedTo = append(models.Assignees(nil), patch.AssignedTo...)
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, *patch.Status)
		}
		edited.Status = *patch.Status
	}
	if err := taskservice.ValidateTask(edited); err != nil {
		return nil, err
	}

	op := s.newOp(OpUpdate, edited)
	op.From, op.FromIndex = st, i
	op.To = edited.Status
	s.visible.apply(op)
	s.pending = append(s.pending, op)
	return op, nil
}

// DeleteTask removes a task optimistically
func (s *Store) DeleteTask(taskID int) (*Op, error) {
	st, i, ok := s.visible.locate(taskID)
	if !ok {
		return nil, ErrTaskNotFound
	}
	if s.visible[st][i].IsLocked() {
		return nil, ErrTaskLocked
	}

	op := s.newOp(OpDelete, nil)
	op.TaskID = taskID
	op.From, op.FromIndex = st, i
	s.visible.apply(op)
	s.pending = append(s.pending, op)
	return op, nil
}

// CreateRequest is a validated create, waiting for the backend to assign an ID
type CreateRequest struct {
	Generation int
	taskservice.CreateTaskRequest
}

// CreateTask validates the new task form against the selected sprint.
// Nothing is added to the board until AddCreated is called with the backend's task.
func (s *Store) CreateTask(in taskservice.CreateInput) (CreateRequest, error) {
	if s.sprintID == 0 {
		return CreateRequest{}, ErrNoSprintSelected
	}
	if err := in.Validate(); err != nil {
		return CreateRequest{}, err
	}
	return CreateRequest{
		Generation: s.generation,
		CreateTaskRequest: taskservice.CreateTaskRequest{
			SprintID:    s.sprintID,
			CreateInput: in,
		},
	}, nil
}

// AddCreated appends a task created by the backend to its column (todo for new tasks)
func (s *Store) AddCreated(gen int, task *models.Task) error {
	if gen != s.generation {
		return ErrStaleGeneration
	}
	if task == nil {
		return ErrTaskNotFound
	}
	if _, _, exists := s.visible.locate(task.ID); exists {
		return nil
	}
	t := task.Clone()
	if !t.Status.Valid() {
		t.Status = models.StatusTodo
	}
	s.confirmed[t.Status] = append(s.confirmed[t.Status], t)
	s.visible[t.Status] = append(s.visible[t.Status], t.Clone())
	return nil
}

// ============================================================================
// RECONCILIATION
// ============================================================================

// Confirm folds a persisted operation into the confirmed snapshot.
// saved is the backend's copy of the task, if it returned one; its data
// replaces the local copy without changing the task's position.
func (s *Store) Confirm(opID int, saved *models.Task) error {
	op, idx := s.findOp(opID)
	if op == nil {
		return ErrOpNotFound
	}
	s.pending = append(s.pending[:idx], s.pending[idx+1:]...)

	s.confirmed.apply(op)
	if saved != nil && op.Kind != OpDelete {
		s.confirmed.patch(saved)
		s.visible.patch(saved)
	}
	return nil
}

// Fail records a failed persistence attempt.
// Retryable errors keep the operation pending until its attempt budget is
// spent; anything else drops it and rebuilds the visible board.
func (s *Store) Fail(opID int, err error) (Outcome, error) {
	op, idx := s.findOp(opID)
	if op == nil {
		return OutcomeDiscarded, ErrOpNotFound
	}
	op.Attempts++
	if IsRetryable(err) && op.Attempts < s.maxAttempts {
		return OutcomeRetry, nil
	}

	s.pending = append(s.pending[:idx], s.pending[idx+1:]...)
	s.rebuild()
	return OutcomeRolledBack, nil
}

// Op returns a pending operation by ID
func (s *Store) Op(opID int) (*Op, bool) {
	op, _ := s.findOp(opID)
	if op == nil {
		return nil, false
	}
	c := *op
	c.Task = op.Task.Clone()
	return &c, true
}

func (s *Store) rebuild() {
	s.visible = s.confirmed.clone()
	for _, op := range s.pending {
		s.visible.apply(op)
	}
}

func (s *Store) newOp(kind OpKind, task *models.Task) *Op {
	s.nextOpID++
	op := &Op{
		ID:         s.nextOpID,
		Kind:       kind,
		Generation: s.generation,
		Task:       task,
	}
	if task != nil {
		op.TaskID = task.ID
	}
	return op
}

func (s *Store) findOp(opID int) (*Op, int) {
	for i, op := range s.pending {
		if op.ID == opID {
			return op, i
		}
	}
	return nil, -1
}

// ============================================================================
// COLUMN HELPERS
// ============================================================================

func emptyColumns() columns {
	cols := make(columns, len(models.Statuses()))
	for _, st := range models.Statuses() {
		cols[st] = []*models.Task{}
	}
	return cols
}

func (c columns) clone() columns {
	out := make(columns, len(c))
	for st, tasks := range c {
		out[st] = cloneTasks(tasks)
	}
	return out
}

func (c columns) locate(taskID int) (models.Status, int, bool) {
	for _, st := range models.Statuses() {
		for i, t := range c[st] {
			if t.ID == taskID {
				return st, i, true
			}
		}
	}
	return "", -1, false
}

func (c columns) remove(taskID int) (*models.Task, bool) {
	st, i, ok := c.locate(taskID)
	if !ok {
		return nil, false
	}
	t := c[st][i]
	c[st] = append(c[st][:i], c[st][i+1:]...)
	return t, true
}

func (c columns) insert(t *models.Task, index int) {
	dest := c[t.Status]
	if index > len(dest) {
		index = len(dest)
	}
	dest = append(dest, nil)
	copy(dest[index+1:], dest[index:])
	dest[index] = t
	c[t.Status] = dest
}

// apply replays op against c. Tasks are located by ID, so an op whose task
// has since disappeared is skipped.
func (c columns) apply(op *Op) {
	switch op.Kind {
	case OpMove:
		t, ok := c.remove(op.TaskID)
		if !ok {
			return
		}
		t.Status = op.To
		c.insert(t, op.ToIndex)
	case OpUpdate:
		st, i, ok := c.locate(op.TaskID)
		if !ok {
			return
		}
		updated := op.Task.Clone()
		if updated.Status == st {
			c[st][i] = updated
			return
		}
		c[st] = append(c[st][:i], c[st][i+1:]...)
		c[updated.Status] = append(c[updated.Status], updated)
	case OpDelete:
		c.remove(op.TaskID)
	}
}

// patch replaces a task's data with saved while keeping its column and position
func (c columns) patch(saved *models.Task) {
	st, i, ok := c.locate(saved.ID)
	if !ok {
		return
	}
	t := saved.Clone()
	t.Status = st
	c[st][i] = t
}

func cloneTasks(tasks []*models.Task) []*models.Task {
	out := make([]*models.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Clone())
	}
	return out
}
