package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trackmaster/trackmaster/internal/models"
)

// ============================================================================
// UI STATE
// ============================================================================

func TestUIState_Defaults(t *testing.T) {
	s := NewUIState()
	assert.Equal(t, NormalMode, s.Mode())
	assert.Zero(t, s.SelectedColumn())
	assert.Zero(t, s.SelectedTask())
	assert.Zero(t, s.TaskScrollOffset(1))
}

func TestUIState_ClampSelection(t *testing.T) {
	s := NewUIState()
	s.Select(1, 5)

	s.ClampSelection(3)
	assert.Equal(t, 2, s.SelectedTask())

	s.ClampSelection(0)
	assert.Equal(t, 0, s.SelectedTask())
}

func TestUIState_EnsureTaskVisible(t *testing.T) {
	s := NewUIState()

	s.EnsureTaskVisible(0, 4, 3)
	assert.Equal(t, 2, s.TaskScrollOffset(0))

	s.EnsureTaskVisible(0, 1, 3)
	assert.Equal(t, 1, s.TaskScrollOffset(0))

	s.EnsureTaskVisible(0, 2, 3)
	assert.Equal(t, 1, s.TaskScrollOffset(0), "already visible")
}

func TestUIState_ToggleExpanded(t *testing.T) {
	s := NewUIState()
	assert.True(t, s.ToggleExpanded(7))
	assert.True(t, s.IsExpanded(7))
	assert.False(t, s.ToggleExpanded(7))
	assert.False(t, s.IsExpanded(7))

	s.ToggleExpanded(8)
	s.Select(2, 1)
	s.SetTaskScrollOffset(2, 3)
	s.ResetBoard()
	assert.False(t, s.IsExpanded(8))
	assert.Zero(t, s.SelectedColumn())
	assert.Zero(t, s.TaskScrollOffset(2))
}

// ============================================================================
// NOTIFICATIONS
// ============================================================================

func TestNotificationState_RemoveByID(t *testing.T) {
	s := NewNotificationState()
	first := s.Add(LevelInfo, "saved")
	second := s.Add(LevelError, "failed")
	assert.NotEqual(t, first, second)

	s.Remove(first)
	all := s.All()
	if assert.Len(t, all, 1) {
		assert.Equal(t, "failed", all[0].Message)
	}

	s.Remove(999)
	assert.True(t, s.HasAny())
	s.Clear()
	assert.False(t, s.HasAny())
}

func TestNotificationState_Layers(t *testing.T) {
	s := NewNotificationState()
	s.Add(LevelInfo, "one")
	render := func(n Notification) string { return n.Message }

	assert.Empty(t, s.GetLayers(render), "no layers before the window size is known")

	s.SetWindowSize(80, 24)
	assert.Len(t, s.GetLayers(render), 1)
}

// ============================================================================
// DRAG STATE
// ============================================================================

func TestDragState_TargetBounds(t *testing.T) {
	lengths := map[models.Status]int{
		models.StatusTodo:       2,
		models.StatusInProgress: 0,
		models.StatusDone:       3,
	}
	d := NewDragState()
	assert.False(t, d.Active())

	d.Grab(10, models.StatusTodo, 1)
	assert.True(t, d.Active())
	assert.Equal(t, 10, d.TaskID())

	d.MoveIndex(5, lengths)
	to, idx := d.Target()
	assert.Equal(t, models.StatusTodo, to)
	assert.Equal(t, 1, idx, "source column has no extra slot")

	d.MoveColumn(1, lengths)
	to, idx = d.Target()
	assert.Equal(t, models.StatusInProgress, to)
	assert.Equal(t, 0, idx, "clamped to the empty column's only slot")

	d.MoveColumn(1, lengths)
	d.MoveIndex(10, lengths)
	to, idx = d.Target()
	assert.Equal(t, models.StatusDone, to)
	assert.Equal(t, 3, idx, "append slot after the last card")

	d.MoveColumn(1, lengths)
	to, _ = d.Target()
	assert.Equal(t, models.StatusDone, to, "no column past done")

	from, fromIdx := d.Source()
	assert.Equal(t, models.StatusTodo, from)
	assert.Equal(t, 1, fromIdx)

	d.Cancel()
	assert.False(t, d.Active())
}
