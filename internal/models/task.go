package models

import (
	"time"

	"cloud.google.com/go/civil"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CreatedBy   string     `json:"createdBy"`
	Priority    Priority   `json:"priority"`
	DueDate     civil.Date `json:"dueDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	ColumnID    string     `json:"columnId"`
	Order       int        `json:"order"`
}
