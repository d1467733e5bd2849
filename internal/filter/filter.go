// Package filter builds read-only views of a board: its columns in order and the tasks
// that match a set of SearchFilters.
package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/yukikurage/taskboard/internal/models"
)

// ColumnView is a column with its visible tasks in order.
type ColumnView struct {
	Column models.Column `json:"column"`
	Tasks  []models.Task `json:"tasks"`
}

// BoardView groups the filtered tasks of a board by column.
type BoardView struct {
	Board   models.Board         `json:"board"`
	Columns []ColumnView         `json:"columns"`
	Filters models.SearchFilters `json:"filters"`
}

// Columns returns the board's columns sorted by order.
func Columns(s models.AppState, boardID string) []models.Column {
	cols := make([]models.Column, 0)
	for _, c := range s.Columns {
		if c.BoardID == boardID {
			cols = append(cols, c)
		}
	}
	sort.SliceStable(cols, func(i, j int) bool { return cols[i].Order < cols[j].Order })
	return cols
}

func columnTasks(s models.AppState, columnID string) []models.Task {
	tasks := make([]models.Task, 0)
	for _, t := range s.Tasks {
		if t.ColumnID == columnID {
			tasks = append(tasks, t)
		}
	}
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Order < tasks[j].Order })
	return tasks
}

// Tasks returns the board's tasks that pass every active filter, sorted by column order
// and then task order.
func Tasks(s models.AppState, boardID string, f models.SearchFilters, now time.Time) []models.Task {
	m := newMatcher(f, now)
	out := make([]models.Task, 0)
	for _, c := range Columns(s, boardID) {
		for _, t := range columnTasks(s, c.ID) {
			if m.match(t) {
				out = append(out, t)
			}
		}
	}
	return out
}

// Board returns the view of one board, or false when the board does not exist.
func Board(s models.AppState, boardID string, f models.SearchFilters, now time.Time) (BoardView, bool) {
	b, ok := s.FindBoard(boardID)
	if !ok {
		return BoardView{}, false
	}

	m := newMatcher(f, now)
	view := BoardView{Board: b, Columns: make([]ColumnView, 0), Filters: f}
	for _, c := range Columns(s, boardID) {
		cv := ColumnView{Column: c, Tasks: make([]models.Task, 0)}
		for _, t := range columnTasks(s, c.ID) {
			if m.match(t) {
				cv.Tasks = append(cv.Tasks, t)
			}
		}
		view.Columns = append(view.Columns, cv)
	}
	return view, true
}

// Matches reports whether a single task passes the filters. The search term is trimmed
// first, so a blank term matches every task.
func Matches(t models.Task, f models.SearchFilters, now time.Time) bool {
	return newMatcher(f, now).match(t)
}

type matcher struct {
	term     string
	priority models.PriorityFilter
	due      models.DueDateFilter
	now      time.Time
}

func newMatcher(f models.SearchFilters, now time.Time) matcher {
	return matcher{
		term:     strings.ToLower(strings.TrimSpace(f.SearchTerm)),
		priority: f.Priority,
		due:      f.DueDateFilter,
		now:      now,
	}
}

func (m matcher) match(t models.Task) bool {
	if m.term != "" &&
		!strings.Contains(strings.ToLower(t.Title), m.term) &&
		!strings.Contains(strings.ToLower(t.Description), m.term) {
		return false
	}
	if m.priority != "" && m.priority != models.PriorityAll && models.Priority(m.priority) != t.Priority {
		return false
	}

	switch m.due {
	case models.DueOverdue:
		return IsOverdue(t.DueDate, m.now)
	case models.DueToday:
		return IsToday(t.DueDate, m.now)
	case models.DueWeek:
		return IsThisWeek(t.DueDate, m.now)
	}
	return true
}
