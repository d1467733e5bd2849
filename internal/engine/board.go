package engine

import (
	"fmt"
	"slices"

	"github.com/yukikurage/taskboard/internal/models"
)

// CreateBoard appends a new board with no columns.
func (e *Engine) CreateBoard(s models.AppState, title, description, createdBy string) (models.AppState, models.Board, error) {
	board := models.Board{
		ID:          e.newID(),
		Title:       title,
		Description: description,
		CreatedBy:   createdBy,
		CreatedAt:   e.timestamp(),
		ColumnIDs:   []string{},
	}

	next := clone(s)
	next.Boards = append(next.Boards, board)
	return next, board, nil
}

// DeleteBoard removes a board together with its columns and their tasks, and clears the
// current selection when it pointed at the board.
func (e *Engine) DeleteBoard(s models.AppState, boardID string) (models.AppState, error) {
	if boardIndex(s, boardID) < 0 {
		return s, fmt.Errorf("%w: %s", ErrBoardNotFound, boardID)
	}

	removed := make(map[string]struct{})
	for _, c := range s.Columns {
		if c.BoardID == boardID {
			removed[c.ID] = struct{}{}
		}
	}

	next := clone(s)
	next.Boards = slices.DeleteFunc(next.Boards, func(b models.Board) bool { return b.ID == boardID })
	next.Columns = slices.DeleteFunc(next.Columns, func(c models.Column) bool { return c.BoardID == boardID })
	next.Tasks = slices.DeleteFunc(next.Tasks, func(t models.Task) bool {
		_, gone := removed[t.ColumnID]
		return gone
	})
	if next.CurrentBoardID != nil && *next.CurrentBoardID == boardID {
		next.CurrentBoardID = nil
	}
	return next, nil
}

// SetCurrentBoard selects a board, or clears the selection when boardID is nil.
func (e *Engine) SetCurrentBoard(s models.AppState, boardID *string) (models.AppState, error) {
	next := clone(s)
	if boardID == nil {
		next.CurrentBoardID = nil
		return next, nil
	}
	if boardIndex(s, *boardID) < 0 {
		return s, fmt.Errorf("%w: %s", ErrBoardNotFound, *boardID)
	}
	id := *boardID
	next.CurrentBoardID = &id
	return next, nil
}
