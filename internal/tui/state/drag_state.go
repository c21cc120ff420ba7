package state

import "github.com/trackmaster/trackmaster/internal/models"

// DragState tracks a keyboard drag: the grabbed card's origin and the
// current drop target. The board is not touched until the card is dropped.
type DragState struct {
	active    bool
	taskID    int
	from      models.Status
	fromIndex int
	to        models.Status
	toIndex   int
}

// NewDragState creates an idle drag state
func NewDragState() *DragState {
	return &DragState{}
}

// Grab picks up a card. The drop target starts at the card's own slot.
func (d *DragState) Grab(taskID int, from models.Status, fromIndex int) {
	d.active = true
	d.taskID = taskID
	d.from, d.fromIndex = from, fromIndex
	d.to, d.toIndex = from, fromIndex
}

// Cancel drops the gesture without moving anything
func (d *DragState) Cancel() {
	*d = DragState{}
}

// Active reports whether a card is being dragged
func (d *DragState) Active() bool {
	return d.active
}

// TaskID returns the grabbed card
func (d *DragState) TaskID() int {
	return d.taskID
}

// Source returns where the card was picked up
func (d *DragState) Source() (models.Status, int) {
	return d.from, d.fromIndex
}

// Target returns the current drop target
func (d *DragState) Target() (models.Status, int) {
	return d.to, d.toIndex
}

// MoveColumn shifts the target column by delta. lengths gives each column's size;
// the target index is clamped to the slots available in the new column.
func (d *DragState) MoveColumn(delta int, lengths map[models.Status]int) {
	statuses := models.Statuses()
	next := d.to.Index() + delta
	if next < 0 || next >= len(statuses) {
		return
	}
	d.to = statuses[next]
	d.toIndex = min(d.toIndex, d.maxIndex(lengths))
}

// MoveIndex shifts the target slot by delta within the target column
func (d *DragState) MoveIndex(delta int, lengths map[models.Status]int) {
	d.toIndex = max(0, min(d.toIndex+delta, d.maxIndex(lengths)))
}

// maxIndex is the last slot in the target column. Another column gains a
// slot for appending; the source column does not, since the card leaves it.
func (d *DragState) maxIndex(lengths map[models.Status]int) int {
	n := lengths[d.to]
	if d.to == d.from {
		return max(n-1, 0)
	}
	return n
}
