package filter

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yukikurage/taskboard/internal/engine"
	"github.com/yukikurage/taskboard/internal/models"
)

// Wednesday; the week runs Oct 11 to Oct 17.
var now = time.Date(2026, time.October, 14, 10, 0, 0, 0, time.UTC)

var today = civil.DateOf(now)

type fixture struct {
	state     models.AppState
	board     models.Board
	todo      models.Column
	done      models.Column
	yesterday models.Task
	today     models.Task
	soon      models.Task
	later     models.Task
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	e := engine.New()
	var f fixture
	var err error

	f.state, f.board, err = e.CreateBoard(models.NewAppState(), "Work", "", "alice")
	require.NoError(t, err)
	f.state, f.todo, err = e.CreateColumn(f.state, "Todo", f.board.ID)
	require.NoError(t, err)
	f.state, f.done, err = e.CreateColumn(f.state, "Done", f.board.ID)
	require.NoError(t, err)

	add := func(col, title, desc string, p models.Priority, due civil.Date) models.Task {
		var tk models.Task
		f.state, tk, err = e.CreateTask(f.state, engine.NewTask{
			Title: title, Description: desc, Priority: p, DueDate: due, ColumnID: col,
		})
		require.NoError(t, err)
		return tk
	}
	f.later = add(f.done.ID, "Archive logs", "", models.PriorityLow, today.AddDays(10))
	f.yesterday = add(f.todo.ID, "Write Report", "quarterly numbers", models.PriorityHigh, today.AddDays(-1))
	f.today = add(f.todo.ID, "Call vendor", "about the report template", models.PriorityMedium, today)
	f.soon = add(f.todo.ID, "Plan offsite", "", models.PriorityHigh, today.AddDays(3))

	// a task on another board never shows up
	var other models.Board
	f.state, other, err = e.CreateBoard(f.state, "Other", "", "bob")
	require.NoError(t, err)
	var otherCol models.Column
	f.state, otherCol, err = e.CreateColumn(f.state, "Todo", other.ID)
	require.NoError(t, err)
	add(otherCol.ID, "Write report for other board", "", models.PriorityHigh, today)

	return f
}

func titles(tasks []models.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func TestTasks_NoFiltersSortedByColumnThenOrder(t *testing.T) {
	f := newFixture(t)

	got := Tasks(f.state, f.board.ID, models.DefaultSearchFilters(), now)

	assert.Equal(t, []string{"Write Report", "Call vendor", "Plan offsite", "Archive logs"}, titles(got))
}

func TestTasks_SearchIsCaseInsensitiveOnTitleOrDescription(t *testing.T) {
	f := newFixture(t)
	filters := models.DefaultSearchFilters()
	filters.SearchTerm = "  report "

	got := Tasks(f.state, f.board.ID, filters, now)

	assert.Equal(t, []string{"Write Report", "Call vendor"}, titles(got))
}

func TestTasks_PriorityFilter(t *testing.T) {
	f := newFixture(t)
	filters := models.DefaultSearchFilters()
	filters.Priority = models.PriorityFilter(models.PriorityHigh)

	got := Tasks(f.state, f.board.ID, filters, now)

	assert.Equal(t, []string{"Write Report", "Plan offsite"}, titles(got))
}

func TestTasks_DueBuckets(t *testing.T) {
	f := newFixture(t)

	cases := []struct {
		due  models.DueDateFilter
		want []string
	}{
		{models.DueAll, []string{"Write Report", "Call vendor", "Plan offsite", "Archive logs"}},
		{models.DueOverdue, []string{"Write Report"}},
		{models.DueToday, []string{"Call vendor"}},
		{models.DueWeek, []string{"Write Report", "Call vendor", "Plan offsite"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.due), func(t *testing.T) {
			filters := models.DefaultSearchFilters()
			filters.DueDateFilter = tc.due
			assert.Equal(t, tc.want, titles(Tasks(f.state, f.board.ID, filters, now)))
		})
	}
}

func TestTasks_FiltersCombine(t *testing.T) {
	f := newFixture(t)
	filters := models.SearchFilters{
		SearchTerm:    "report",
		Priority:      models.PriorityFilter(models.PriorityMedium),
		DueDateFilter: models.DueToday,
	}

	assert.Equal(t, []string{"Call vendor"}, titles(Tasks(f.state, f.board.ID, filters, now)))

	filters.DueDateFilter = models.DueOverdue
	assert.Empty(t, Tasks(f.state, f.board.ID, filters, now))
}

func TestTasks_UnknownBoard(t *testing.T) {
	f := newFixture(t)

	got := Tasks(f.state, "missing", models.DefaultSearchFilters(), now)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBoard_GroupsByColumn(t *testing.T) {
	f := newFixture(t)
	filters := models.DefaultSearchFilters()
	filters.DueDateFilter = models.DueWeek

	view, ok := Board(f.state, f.board.ID, filters, now)
	require.True(t, ok)

	assert.Equal(t, f.board.ID, view.Board.ID)
	require.Len(t, view.Columns, 2)
	assert.Equal(t, f.todo.ID, view.Columns[0].Column.ID)
	assert.Equal(t, []string{"Write Report", "Call vendor", "Plan offsite"}, titles(view.Columns[0].Tasks))
	assert.Equal(t, f.done.ID, view.Columns[1].Column.ID)
	assert.Empty(t, view.Columns[1].Tasks)
	assert.Equal(t, filters, view.Filters)

	_, ok = Board(f.state, "missing", filters, now)
	assert.False(t, ok)
}

func TestMatches(t *testing.T) {
	f := newFixture(t)

	assert.True(t, Matches(f.yesterday, models.DefaultSearchFilters(), now))
	assert.True(t, Matches(f.today, models.SearchFilters{SearchTerm: "  REPORT "}, now))
	assert.False(t, Matches(f.later, models.SearchFilters{DueDateFilter: models.DueWeek}, now))
	assert.False(t, Matches(f.soon, models.SearchFilters{Priority: models.PriorityFilter(models.PriorityLow)}, now))
}

func TestTasks_BlankSearchTermMatchesAll(t *testing.T) {
	f := newFixture(t)

	all := Tasks(f.state, f.board.ID, models.DefaultSearchFilters(), now)
	blank := Tasks(f.state, f.board.ID, models.SearchFilters{SearchTerm: " \t "}, now)
	assert.Equal(t, all, blank)
	assert.Len(t, blank, 4)
}

func TestColumns(t *testing.T) {
	f := newFixture(t)

	cols := Columns(f.state, f.board.ID)
	require.Len(t, cols, 2)
	assert.Equal(t, "Todo", cols[0].Title)
	assert.Equal(t, "Done", cols[1].Title)
}
