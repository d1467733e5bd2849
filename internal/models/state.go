package models

import "slices"

// AppState is the aggregate root holding every board, column and task.
// Position within the slices carries no meaning; ordering lives in the Order fields.
type AppState struct {
	Boards         []Board  `json:"boards"`
	Columns        []Column `json:"columns"`
	Tasks          []Task   `json:"tasks"`
	CurrentBoardID *string  `json:"currentBoardId"`
}

// NewAppState returns the empty initial state.
func NewAppState() AppState {
	return AppState{
		Boards:  []Board{},
		Columns: []Column{},
		Tasks:   []Task{},
	}
}

// FindBoard returns the board with the given id.
func (s AppState) FindBoard(id string) (Board, bool) {
	for _, b := range s.Boards {
		if b.ID == id {
			return b, true
		}
	}
	return Board{}, false
}

// FindColumn returns the column with the given id.
func (s AppState) FindColumn(id string) (Column, bool) {
	for _, c := range s.Columns {
		if c.ID == id {
			return c, true
		}
	}
	return Column{}, false
}

// FindTask returns the task with the given id.
func (s AppState) FindTask(id string) (Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Clone returns a deep copy of s that shares no slices with it.
func (s AppState) Clone() AppState {
	next := AppState{
		Boards:  make([]Board, len(s.Boards)),
		Columns: make([]Column, len(s.Columns)),
		Tasks:   make([]Task, len(s.Tasks)),
	}
	for i, b := range s.Boards {
		b.ColumnIDs = slices.Clone(b.ColumnIDs)
		next.Boards[i] = b
	}
	for i, c := range s.Columns {
		c.TaskIDs = slices.Clone(c.TaskIDs)
		next.Columns[i] = c
	}
	copy(next.Tasks, s.Tasks)
	if s.CurrentBoardID != nil {
		id := *s.CurrentBoardID
		next.CurrentBoardID = &id
	}
	return next
}
