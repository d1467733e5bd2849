package models

import "time"

// Board is the top-level container of columns.
type Board struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`

	// ColumnIDs mirrors the board's columns ordered by Column.Order.
	ColumnIDs []string `json:"columnIds"`
}

// Column is an ordered lane within a board.
type Column struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	BoardID string `json:"boardId"`
	Order   int    `json:"order"`

	// TaskIDs mirrors the column's tasks ordered by Task.Order.
	TaskIDs []string `json:"taskIds"`
}
