// Package engine applies commands to an AppState. Every command is pure: it reads the
// given state, never modifies it, and returns the next state. A command that fails
// returns the input state together with the error.
//
// The denormalized id arrays (Board.ColumnIDs, Column.TaskIDs) are written only here.
package engine

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/yukikurage/taskboard/internal/models"
)

// Engine holds the clock and id source used when creating entities.
type Engine struct {
	now   func() time.Time
	newID func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the clock used for CreatedAt timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithIDGenerator overrides the id source.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) {
		e.newID = newID
	}
}

// New creates an Engine using the wall clock and random UUIDs.
func New(opts ...Option) *Engine {
	e := &Engine{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) timestamp() time.Time {
	return e.now().UTC()
}

func clone(s models.AppState) models.AppState {
	return s.Clone()
}

func boardIndex(s models.AppState, id string) int {
	return slices.IndexFunc(s.Boards, func(b models.Board) bool { return b.ID == id })
}

func columnIndex(s models.AppState, id string) int {
	return slices.IndexFunc(s.Columns, func(c models.Column) bool { return c.ID == id })
}

func taskIndex(s models.AppState, id string) int {
	return slices.IndexFunc(s.Tasks, func(t models.Task) bool { return t.ID == id })
}
