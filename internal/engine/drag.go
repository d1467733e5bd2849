package engine

import "github.com/yukikurage/taskboard/internal/models"

// DragTracker remembers which task was picked up when a drag started, so that drops
// carrying a different task id can be ignored.
type DragTracker struct {
	taskID string
}

// Start records the dragged task.
func (d *DragTracker) Start(taskID string) {
	d.taskID = taskID
}

// End forgets the dragged task.
func (d *DragTracker) End() {
	d.taskID = ""
}

// Dragging returns the task id recorded at drag start.
func (d *DragTracker) Dragging() (string, bool) {
	return d.taskID, d.taskID != ""
}

// Drop appends the dragged task to targetColumnID. A drop whose task id differs from
// the one recorded at drag start, or one without a drag in progress, leaves the state
// unchanged and reports moved=false. The drag ends in every case.
func (d *DragTracker) Drop(e *Engine, s models.AppState, carriedTaskID, targetColumnID string) (models.AppState, bool, error) {
	return d.DropAt(e, s, carriedTaskID, targetColumnID, -1)
}

// DropAt is Drop with an explicit position; a negative position appends.
func (d *DragTracker) DropAt(e *Engine, s models.AppState, carriedTaskID, targetColumnID string, position int) (models.AppState, bool, error) {
	defer d.End()

	if d.taskID == "" || carriedTaskID != d.taskID {
		return s, false, nil
	}
	if position < 0 {
		position = len(orderedTaskIDs(s, targetColumnID))
	}

	next, err := e.MoveTask(s, carriedTaskID, targetColumnID, position)
	if err != nil {
		return s, false, err
	}
	return next, true, nil
}
