package engine

import (
	"fmt"
	"slices"

	"github.com/yukikurage/taskboard/internal/models"
)

// CreateColumn appends a column to the end of a board.
func (e *Engine) CreateColumn(s models.AppState, title, boardID string) (models.AppState, models.Column, error) {
	if boardIndex(s, boardID) < 0 {
		return s, models.Column{}, fmt.Errorf("%w: %s", ErrBoardNotFound, boardID)
	}

	ids := orderedColumnIDs(s, boardID)
	column := models.Column{
		ID:      e.newID(),
		Title:   title,
		BoardID: boardID,
		Order:   len(ids),
		TaskIDs: []string{},
	}

	next := clone(s)
	next.Columns = append(next.Columns, column)
	applyColumnOrder(&next, boardID, append(ids, column.ID))
	return next, column, nil
}

// UpdateColumn renames a column.
func (e *Engine) UpdateColumn(s models.AppState, columnID, title string) (models.AppState, error) {
	i := columnIndex(s, columnID)
	if i < 0 {
		return s, fmt.Errorf("%w: %s", ErrColumnNotFound, columnID)
	}

	next := clone(s)
	next.Columns[i].Title = title
	return next, nil
}

// DeleteColumn removes a column and its tasks, then closes the gap among the
// remaining columns of the board.
func (e *Engine) DeleteColumn(s models.AppState, columnID string) (models.AppState, error) {
	column, ok := s.FindColumn(columnID)
	if !ok {
		return s, fmt.Errorf("%w: %s", ErrColumnNotFound, columnID)
	}

	next := clone(s)
	next.Columns = slices.DeleteFunc(next.Columns, func(c models.Column) bool { return c.ID == columnID })
	next.Tasks = slices.DeleteFunc(next.Tasks, func(t models.Task) bool { return t.ColumnID == columnID })
	applyColumnOrder(&next, column.BoardID, removeID(orderedColumnIDs(s, column.BoardID), columnID))
	return next, nil
}
