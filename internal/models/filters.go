package models

import "fmt"

// PriorityFilter is a Priority or "all".
type PriorityFilter string

// PriorityAll disables priority filtering.
const PriorityAll PriorityFilter = "all"

// DueDateFilter selects tasks by due-date bucket.
type DueDateFilter string

const (
	DueAll     DueDateFilter = "all"
	DueOverdue DueDateFilter = "overdue"
	DueToday   DueDateFilter = "today"
	DueWeek    DueDateFilter = "week"
)

// SearchFilters narrows the tasks shown for a board. It is never persisted with AppState.
type SearchFilters struct {
	SearchTerm    string         `json:"searchTerm"`
	Priority      PriorityFilter `json:"priority"`
	DueDateFilter DueDateFilter  `json:"dueDateFilter"`
}

// DefaultSearchFilters matches every task.
func DefaultSearchFilters() SearchFilters {
	return SearchFilters{Priority: PriorityAll, DueDateFilter: DueAll}
}

// ParsePriorityFilter accepts "all", a priority, or "" (treated as "all").
func ParsePriorityFilter(v string) (PriorityFilter, error) {
	switch {
	case v == "" || PriorityFilter(v) == PriorityAll:
		return PriorityAll, nil
	case Priority(v).Valid():
		return PriorityFilter(v), nil
	}
	return "", fmt.Errorf("unknown priority filter %q", v)
}

// ParseDueDateFilter accepts all/overdue/today/week, or "" (treated as "all").
func ParseDueDateFilter(v string) (DueDateFilter, error) {
	switch DueDateFilter(v) {
	case "", DueAll:
		return DueAll, nil
	case DueOverdue, DueToday, DueWeek:
		return DueDateFilter(v), nil
	}
	return "", fmt.Errorf("unknown due date filter %q", v)
}
