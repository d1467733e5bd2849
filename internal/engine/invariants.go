package engine

import (
	"fmt"
	"slices"

	"github.com/yukikurage/taskboard/internal/models"
)

// CheckInvariants reports the first broken rule among: references between boards,
// columns and tasks; the id arrays matching the Order fields; contiguous orders; and a
// current board that exists.
func CheckInvariants(s models.AppState) error {
	boards := make(map[string]struct{}, len(s.Boards))
	for _, b := range s.Boards {
		if _, dup := boards[b.ID]; dup {
			return fmt.Errorf("%w: duplicate board %s", ErrInvariantViolated, b.ID)
		}
		boards[b.ID] = struct{}{}
	}

	columns := make(map[string]struct{}, len(s.Columns))
	for _, c := range s.Columns {
		if _, dup := columns[c.ID]; dup {
			return fmt.Errorf("%w: duplicate column %s", ErrInvariantViolated, c.ID)
		}
		if _, ok := boards[c.BoardID]; !ok {
			return fmt.Errorf("%w: column %s references missing board %s", ErrInvariantViolated, c.ID, c.BoardID)
		}
		columns[c.ID] = struct{}{}
	}

	seenTasks := make(map[string]struct{}, len(s.Tasks))
	for _, t := range s.Tasks {
		if _, dup := seenTasks[t.ID]; dup {
			return fmt.Errorf("%w: duplicate task %s", ErrInvariantViolated, t.ID)
		}
		if _, ok := columns[t.ColumnID]; !ok {
			return fmt.Errorf("%w: task %s references missing column %s", ErrInvariantViolated, t.ID, t.ColumnID)
		}
		seenTasks[t.ID] = struct{}{}
	}

	for _, b := range s.Boards {
		want := orderedColumnIDs(s, b.ID)
		if !slices.Equal(b.ColumnIDs, want) {
			return fmt.Errorf("%w: board %s columnIds %v, want %v", ErrInvariantViolated, b.ID, b.ColumnIDs, want)
		}
		for i, id := range want {
			if c, _ := s.FindColumn(id); c.Order != i {
				return fmt.Errorf("%w: column %s has order %d, want %d", ErrInvariantViolated, id, c.Order, i)
			}
		}
	}

	for _, c := range s.Columns {
		want := orderedTaskIDs(s, c.ID)
		if !slices.Equal(c.TaskIDs, want) {
			return fmt.Errorf("%w: column %s taskIds %v, want %v", ErrInvariantViolated, c.ID, c.TaskIDs, want)
		}
		for i, id := range want {
			if t, _ := s.FindTask(id); t.Order != i {
				return fmt.Errorf("%w: task %s has order %d, want %d", ErrInvariantViolated, id, t.Order, i)
			}
		}
	}

	if s.CurrentBoardID != nil {
		if _, ok := boards[*s.CurrentBoardID]; !ok {
			return fmt.Errorf("%w: current board %s does not exist", ErrInvariantViolated, *s.CurrentBoardID)
		}
	}
	return nil
}
