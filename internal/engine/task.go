package engine

import (
	"fmt"
	"slices"

	"cloud.google.com/go/civil"

	"github.com/yukikurage/taskboard/internal/models"
)

// NewTask carries the caller-supplied fields of a task. Id, CreatedAt and Order are
// assigned by the engine.
type NewTask struct {
	Title       string
	Description string
	CreatedBy   string
	Priority    models.Priority
	DueDate     civil.Date
	ColumnID    string
}

// TaskUpdate lists the fields to change; nil fields are left untouched.
// Column and position changes go through MoveTask and ReorderTask.
type TaskUpdate struct {
	Title       *string
	Description *string
	CreatedBy   *string
	Priority    *models.Priority
	DueDate     *civil.Date
}

// CreateTask appends a task to the end of its column.
func (e *Engine) CreateTask(s models.AppState, in NewTask) (models.AppState, models.Task, error) {
	if columnIndex(s, in.ColumnID) < 0 {
		return s, models.Task{}, fmt.Errorf("%w: %s", ErrColumnNotFound, in.ColumnID)
	}
	if !in.Priority.Valid() {
		return s, models.Task{}, fmt.Errorf("%w: %q", ErrInvalidPriority, in.Priority)
	}
	if !in.DueDate.IsValid() {
		return s, models.Task{}, fmt.Errorf("%w: %s", ErrInvalidDueDate, in.DueDate)
	}

	ids := orderedTaskIDs(s, in.ColumnID)
	task := models.Task{
		ID:          e.newID(),
		Title:       in.Title,
		Description: in.Description,
		CreatedBy:   in.CreatedBy,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		CreatedAt:   e.timestamp(),
		ColumnID:    in.ColumnID,
		Order:       len(ids),
	}

	next := clone(s)
	next.Tasks = append(next.Tasks, task)
	applyTaskOrder(&next, in.ColumnID, append(ids, task.ID))
	return next, task, nil
}

// UpdateTask merges the provided fields into a task.
func (e *Engine) UpdateTask(s models.AppState, taskID string, upd TaskUpdate) (models.AppState, error) {
	i := taskIndex(s, taskID)
	if i < 0 {
		return s, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	if upd.Priority != nil && !upd.Priority.Valid() {
		return s, fmt.Errorf("%w: %q", ErrInvalidPriority, *upd.Priority)
	}
	if upd.DueDate != nil && !upd.DueDate.IsValid() {
		return s, fmt.Errorf("%w: %s", ErrInvalidDueDate, *upd.DueDate)
	}

	next := clone(s)
	t := &next.Tasks[i]
	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.Description != nil {
		t.Description = *upd.Description
	}
	if upd.CreatedBy != nil {
		t.CreatedBy = *upd.CreatedBy
	}
	if upd.Priority != nil {
		t.Priority = *upd.Priority
	}
	if upd.DueDate != nil {
		t.DueDate = *upd.DueDate
	}
	return next, nil
}

// DeleteTask removes a task and closes the gap in its column.
func (e *Engine) DeleteTask(s models.AppState, taskID string) (models.AppState, error) {
	task, ok := s.FindTask(taskID)
	if !ok {
		return s, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}

	next := clone(s)
	next.Tasks = slices.DeleteFunc(next.Tasks, func(t models.Task) bool { return t.ID == taskID })
	applyTaskOrder(&next, task.ColumnID, removeID(orderedTaskIDs(s, task.ColumnID), taskID))
	return next, nil
}

// MoveTask relocates a task to position newOrder of another column. Both columns are
// renumbered afterwards. Moving within the task's own column is a reorder.
func (e *Engine) MoveTask(s models.AppState, taskID, newColumnID string, newOrder int) (models.AppState, error) {
	task, ok := s.FindTask(taskID)
	if !ok {
		return s, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	if columnIndex(s, newColumnID) < 0 {
		return s, fmt.Errorf("%w: %s", ErrColumnNotFound, newColumnID)
	}
	if task.ColumnID == newColumnID {
		return e.ReorderTask(s, taskID, newOrder)
	}

	next := clone(s)
	next.Tasks[taskIndex(next, taskID)].ColumnID = newColumnID
	applyTaskOrder(&next, task.ColumnID, removeID(orderedTaskIDs(s, task.ColumnID), taskID))
	applyTaskOrder(&next, newColumnID, insertAt(orderedTaskIDs(s, newColumnID), taskID, newOrder))
	return next, nil
}

// ReorderTask moves a task to position newOrder within its column.
func (e *Engine) ReorderTask(s models.AppState, taskID string, newOrder int) (models.AppState, error) {
	task, ok := s.FindTask(taskID)
	if !ok {
		return s, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}

	ids := removeID(orderedTaskIDs(s, task.ColumnID), taskID)
	next := clone(s)
	applyTaskOrder(&next, task.ColumnID, insertAt(ids, taskID, newOrder))
	return next, nil
}
