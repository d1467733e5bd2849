package engine

import "errors"

var (
	ErrBoardNotFound     = errors.New("board not found")
	ErrColumnNotFound    = errors.New("column not found")
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidPriority   = errors.New("invalid task priority")
	ErrInvalidDueDate    = errors.New("invalid task due date")
	ErrInvariantViolated = errors.New("state invariant violated")
)
