package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/civil"

	"github.com/yukikurage/taskboard/internal/engine"
	"github.com/yukikurage/taskboard/internal/filter"
	"github.com/yukikurage/taskboard/internal/models"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrTitleEmpty    = errors.New("title cannot be empty")
)

// StateStore persists the whole AppState. Save is best effort and reports nothing.
type StateStore interface {
	Save(ctx context.Context, s models.AppState)
	Load(ctx context.Context) (models.AppState, bool)
}

// BoardService owns one AppState and applies commands to it one at a time.
// After every successful command the new state is handed to the store.
type BoardService struct {
	mu     sync.RWMutex
	engine *engine.Engine
	store  StateStore
	state  models.AppState
	now    func() time.Time
}

// Option configures a BoardService.
type Option func(*BoardService)

// WithClock sets the clock used to evaluate due-date filters.
func WithClock(now func() time.Time) Option {
	return func(s *BoardService) {
		s.now = now
	}
}

// NewBoardService creates a BoardService starting from an empty state.
// A nil store keeps the state in memory only.
func NewBoardService(eng *engine.Engine, store StateStore, opts ...Option) *BoardService {
	s := &BoardService{
		engine: eng,
		store:  store,
		state:  models.NewAppState(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateBoardInput represents input for creating a board
type CreateBoardInput struct {
	Title       string
	Description string
	CreatedBy   string
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string
	Description string
	CreatedBy   string
	Priority    models.Priority
	DueDate     civil.Date
	ColumnID    string
}

// Load replaces the owned state with the stored one, or an empty state when nothing
// usable is stored. It reports whether a stored state was found.
func (s *BoardService) Load(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return false
	}
	state, ok := s.store.Load(ctx)
	if !ok {
		state = models.NewAppState()
	}
	s.state = state
	return ok
}

// Snapshot returns a copy of the current state.
func (s *BoardService) Snapshot() models.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

func (s *BoardService) apply(ctx context.Context, cmd func(models.AppState) (models.AppState, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := cmd(s.state)
	if err != nil {
		return err
	}
	s.state = next
	if s.store != nil {
		s.store.Save(ctx, next)
	}
	return nil
}

func (s *BoardService) read(fn func(models.AppState)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.state)
}

func requireTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrTitleRequired
	}
	return title, nil
}

// ListBoards returns every board.
func (s *BoardService) ListBoards() []models.Board {
	return s.Snapshot().Boards
}

// GetBoard returns a board by id
func (s *BoardService) GetBoard(id string) (models.Board, error) {
	var (
		b  models.Board
		ok bool
	)
	s.read(func(st models.AppState) { b, ok = st.FindBoard(id) })
	if !ok {
		return models.Board{}, fmt.Errorf("%w: %s", engine.ErrBoardNotFound, id)
	}
	b.ColumnIDs = append([]string{}, b.ColumnIDs...)
	return b, nil
}

// CurrentBoardID returns the selected board, if any.
func (s *BoardService) CurrentBoardID() (string, bool) {
	var id *string
	s.read(func(st models.AppState) { id = st.CurrentBoardID })
	if id == nil {
		return "", false
	}
	return *id, true
}

func (s *BoardService) CreateBoard(ctx context.Context, input CreateBoardInput) (models.Board, error) {
	title, err := requireTitle(input.Title)
	if err != nil {
		return models.Board{}, err
	}

	var board models.Board
	err = s.apply(ctx, func(st models.AppState) (models.AppState, error) {
		next, b, err := s.engine.CreateBoard(st, title, strings.TrimSpace(input.Description), input.CreatedBy)
		board = b
		return next, err
	})
	return board, err
}

func (s *BoardService) DeleteBoard(ctx context.Context, id string) error {
	return s.apply(ctx, func(st models.AppState) (models.AppState, error) {
		return s.engine.DeleteBoard(st, id)
	})
}

// SetCurrentBoard selects a board; nil clears the selection.
func (s *BoardService) SetCurrentBoard(ctx context.Context, id *string) error {
	return s.apply(ctx, func(st models.AppState) (models.AppState, error) {
		return s.engine.SetCurrentBoard(st, id)
	})
}

// GetColumn returns a column by id
func (s *BoardService) GetColumn(id string) (models.Column, error) {
	var (
		c  models.Column
		ok bool
	)
	s.read(func(st models.AppState) { c, ok = st.FindColumn(id) })
	if !ok {
		return models.Column{}, fmt.Errorf("%w: %s", engine.ErrColumnNotFound, id)
	}
	c.TaskIDs = append([]string{}, c.TaskIDs...)
	return c, nil
}

// ListColumns returns the board's columns in order.
func (s *BoardService) ListColumns(boardID string) ([]models.Column, error) {
	var cols []models.Column
	var ok bool
	s.read(func(st models.AppState) {
		_, ok = st.FindBoard(boardID)
		cols = filter.Columns(st.Clone(), boardID)
	})
	if !ok {
		return nil, fmt.Errorf("%w: %s", engine.ErrBoardNotFound, boardID)
	}
	return cols, nil
}

func (s *BoardService) CreateColumn(ctx context.Context, boardID, title string) (models.Column, error) {
	title, err := requireTitle(title)
	if err != nil {
		return models.Column{}, err
	}

	var column models.Column
	err = s.apply(ctx, func(st models.AppState) (models.AppState, error) {
		next, c, err := s.engine.CreateColumn(st, title, boardID)
		column = c
		return next, err
	})
	return column, err
}

// RenameColumn changes a column's title and returns the updated column.
func (s *BoardService) RenameColumn(ctx context.Context, id, title string) (models.Column, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Column{}, ErrTitleEmpty
	}
	if err := s.apply(ctx, func(st models.AppState) (models.AppState, error) {
		return s.engine.UpdateColumn(st, id, title)
	}); err != nil {
		return models.Column{}, err
	}
	return s.GetColumn(id)
}

func (s *BoardService) DeleteColumn(ctx context.Context, id string) error {
	return s.apply(ctx, func(st models.AppState) (models.AppState, error) {
		return s.engine.DeleteColumn(st, id)
	})
}

// GetTask returns a task by id
func (s *BoardService) GetTask(id string) (models.Task, error) {
	var (
		t  models.Task
		ok bool
	)
	s.read(func(st models.AppState) { t, ok = st.FindTask(id) })
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %s", engine.ErrTaskNotFound, id)
	}
	return t, nil
}

// BoardIDForTask resolves the board a task belongs to.
func (s *BoardService) BoardIDForTask(id string) (string, error) {
	t, err := s.GetTask(id)
	if err != nil {
		return "", err
	}
	c, err := s.GetColumn(t.ColumnID)
	if err != nil {
		return "", err
	}
	return c.BoardID, nil
}

func (s *BoardService) CreateTask(ctx context.Context, input CreateTaskInput) (models.Task, error) {
	title, err := requireTitle(input.Title)
	if err != nil {
		return models.Task{}, err
	}

	var task models.Task
	err = s.apply(ctx, func(st models.AppState) (models.AppState, error) {
		next, t, err := s.engine.CreateTask(st, engine.NewTask{
			Title:       title,
			Description: strings.TrimSpace(input.Description),
			CreatedBy:   input.CreatedBy,
			Priority:    input.Priority,
			DueDate:     input.DueDate,
			ColumnID:    input.ColumnID,
		})
		task = t
		return next, err
	})
	return task, err
}

// UpdateTask merges the provided fields and returns the updated task.
func (s *BoardService) UpdateTask(ctx context.Context, id string, upd engine.TaskUpdate) (models.Task, error) {
	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		if title == "" {
			return models.Task{}, ErrTitleEmpty
		}
		upd.Title = &title
	}
	if err := s.apply(ctx, func(st models.AppState) (models.AppState, error) {
		return s.engine.UpdateTask(st, id, upd)
	}); err != nil {
		return models.Task{}, err
	}
	return s.GetTask(id)
}

func (s *BoardService) DeleteTask(ctx context.Context, id string) error {
	return s.apply(ctx, func(st models.AppState) (models.AppState, error) {
		return s.engine.DeleteTask(st, id)
	})
}

// MoveTask relocates a task to position order of columnID.
func (s *BoardService) MoveTask(ctx context.Context, id, columnID string, order int) (models.Task, error) {
	if err := s.apply(ctx, func(st models.AppState) (models.AppState, error) {
		return s.engine.MoveTask(st, id, columnID, order)
	}); err != nil {
		return models.Task{}, err
	}
	return s.GetTask(id)
}

// ReorderTask repositions a task inside its column.
func (s *BoardService) ReorderTask(ctx context.Context, id string, order int) (models.Task, error) {
	if err := s.apply(ctx, func(st models.AppState) (models.AppState, error) {
		return s.engine.ReorderTask(st, id, order)
	}); err != nil {
		return models.Task{}, err
	}
	return s.GetTask(id)
}

// Drop completes a drag started on tracker. It reports whether the task moved; stale
// drops are ignored without error.
func (s *BoardService) Drop(ctx context.Context, tracker *engine.DragTracker, carriedTaskID, targetColumnID string) (bool, error) {
	var moved bool
	err := s.apply(ctx, func(st models.AppState) (models.AppState, error) {
		next, ok, err := tracker.Drop(s.engine, st, carriedTaskID, targetColumnID)
		moved = ok
		return next, err
	})
	return moved, err
}

// DropAt is Drop with an explicit position in the target column.
func (s *BoardService) DropAt(ctx context.Context, tracker *engine.DragTracker, carriedTaskID, targetColumnID string, position int) (bool, error) {
	var moved bool
	err := s.apply(ctx, func(st models.AppState) (models.AppState, error) {
		next, ok, err := tracker.DropAt(s.engine, st, carriedTaskID, targetColumnID, position)
		moved = ok
		return next, err
	})
	return moved, err
}

// BoardView returns the board with its columns and the tasks that pass filters.
func (s *BoardService) BoardView(boardID string, filters models.SearchFilters) (filter.BoardView, error) {
	var (
		view filter.BoardView
		ok   bool
	)
	s.read(func(st models.AppState) { view, ok = filter.Board(st.Clone(), boardID, filters, s.now()) })
	if !ok {
		return filter.BoardView{}, fmt.Errorf("%w: %s", engine.ErrBoardNotFound, boardID)
	}
	return view, nil
}

// FilteredTasks returns the board's matching tasks in display order.
func (s *BoardService) FilteredTasks(boardID string, filters models.SearchFilters) ([]models.Task, error) {
	var (
		tasks []models.Task
		ok    bool
	)
	s.read(func(st models.AppState) {
		_, ok = st.FindBoard(boardID)
		tasks = filter.Tasks(st, boardID, filters, s.now())
	})
	if !ok {
		return nil, fmt.Errorf("%w: %s", engine.ErrBoardNotFound, boardID)
	}
	return tasks, nil
}

// Check verifies the structural invariants of the owned state.
func (s *BoardService) Check() error {
	return engine.CheckInvariants(s.Snapshot())
}

// Now returns the service clock's current time.
func (s *BoardService) Now() time.Time {
	return s.now()
}
