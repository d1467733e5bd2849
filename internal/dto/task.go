package dto

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/yukikurage/taskboard/internal/filter"
	"github.com/yukikurage/taskboard/internal/models"
	"github.com/yukikurage/taskboard/internal/utils"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	CreatedBy   string          `json:"createdBy"`
	Priority    models.Priority `json:"priority"`
	DueDate     civil.Date      `json:"dueDate"`
	DueLabel    string          `json:"dueLabel"`
	Overdue     bool            `json:"overdue"`
	CreatedAt   time.Time       `json:"createdAt"`
	ColumnID    string          `json:"columnId"`
	Order       int             `json:"order"`
}

// TaskListResponse represents a paginated list of tasks
type TaskListResponse struct {
	Tasks      []TaskDTO                `json:"tasks"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// CreateTaskRequest is the body of POST /api/columns/:id/tasks
type CreateTaskRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	CreatedBy   string          `json:"createdBy"`
	Priority    models.Priority `json:"priority" binding:"required,oneof=high medium low"`
	DueDate     *civil.Date     `json:"dueDate" binding:"required"`
}

// UpdateTaskRequest is the body of PATCH /api/tasks/:id; omitted fields are unchanged
type UpdateTaskRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	CreatedBy   *string          `json:"createdBy"`
	Priority    *models.Priority `json:"priority" binding:"omitempty,oneof=high medium low"`
	DueDate     *civil.Date      `json:"dueDate"`
}

// MoveTaskRequest is the body of POST /api/tasks/:id/move
type MoveTaskRequest struct {
	ColumnID string `json:"columnId" binding:"required"`
	Order    *int   `json:"order" binding:"required"`
}

// ReorderTaskRequest is the body of POST /api/tasks/:id/reorder
type ReorderTaskRequest struct {
	Order *int `json:"order" binding:"required"`
}

// NewTaskDTO converts a task, computing its due label against now
func NewTaskDTO(t models.Task, now time.Time) TaskDTO {
	return TaskDTO{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		CreatedBy:   t.CreatedBy,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		DueLabel:    filter.FormatDate(t.DueDate),
		Overdue:     filter.IsOverdue(t.DueDate, now),
		CreatedAt:   t.CreatedAt,
		ColumnID:    t.ColumnID,
		Order:       t.Order,
	}
}

func NewTaskDTOs(tasks []models.Task, now time.Time) []TaskDTO {
	out := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, NewTaskDTO(t, now))
	}
	return out
}
