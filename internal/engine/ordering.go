package engine

import (
	"slices"
	"sort"

	"github.com/yukikurage/taskboard/internal/models"
)

// orderedTaskIDs lists the tasks of a column sorted by Order.
func orderedTaskIDs(s models.AppState, columnID string) []string {
	var tasks []models.Task
	for _, t := range s.Tasks {
		if t.ColumnID == columnID {
			tasks = append(tasks, t)
		}
	}
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Order < tasks[j].Order })

	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

// orderedColumnIDs lists the columns of a board sorted by Order.
func orderedColumnIDs(s models.AppState, boardID string) []string {
	var columns []models.Column
	for _, c := range s.Columns {
		if c.BoardID == boardID {
			columns = append(columns, c)
		}
	}
	sort.SliceStable(columns, func(i, j int) bool { return columns[i].Order < columns[j].Order })

	ids := make([]string, 0, len(columns))
	for _, c := range columns {
		ids = append(ids, c.ID)
	}
	return ids
}

// applyTaskOrder renumbers the listed tasks to 0..n-1 and stores the list as the
// column's TaskIDs.
func applyTaskOrder(s *models.AppState, columnID string, ids []string) {
	rank := make(map[string]int, len(ids))
	for i, id := range ids {
		rank[id] = i
	}
	for i := range s.Tasks {
		if r, ok := rank[s.Tasks[i].ID]; ok {
			s.Tasks[i].Order = r
		}
	}
	if i := columnIndex(*s, columnID); i >= 0 {
		s.Columns[i].TaskIDs = slices.Clone(ids)
	}
}

// applyColumnOrder renumbers the listed columns to 0..n-1 and stores the list as the
// board's ColumnIDs.
func applyColumnOrder(s *models.AppState, boardID string, ids []string) {
	rank := make(map[string]int, len(ids))
	for i, id := range ids {
		rank[id] = i
	}
	for i := range s.Columns {
		if r, ok := rank[s.Columns[i].ID]; ok {
			s.Columns[i].Order = r
		}
	}
	if i := boardIndex(*s, boardID); i >= 0 {
		s.Boards[i].ColumnIDs = slices.Clone(ids)
	}
}

func removeID(ids []string, id string) []string {
	return slices.DeleteFunc(slices.Clone(ids), func(v string) bool { return v == id })
}

// insertAt places id at pos, clamped to the bounds of ids.
func insertAt(ids []string, id string, pos int) []string {
	pos = max(0, min(pos, len(ids)))
	return slices.Insert(slices.Clone(ids), pos, id)
}
