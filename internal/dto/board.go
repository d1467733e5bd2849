package dto

import (
	"time"

	"github.com/yukikurage/taskboard/internal/filter"
	"github.com/yukikurage/taskboard/internal/models"
)

// CreateBoardRequest is the body of POST /api/boards
type CreateBoardRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	CreatedBy   string `json:"createdBy"`
}

// SetCurrentBoardRequest is the body of PUT /api/state/current-board; a null id clears it
type SetCurrentBoardRequest struct {
	BoardID *string `json:"boardId"`
}

// ColumnRequest is the body for creating or renaming a column
type ColumnRequest struct {
	Title string `json:"title" binding:"required"`
}

// FiltersRequest is the body of PUT /api/filters
type FiltersRequest struct {
	SearchTerm    string `json:"searchTerm"`
	Priority      string `json:"priority"`
	DueDateFilter string `json:"dueDateFilter"`
}

// DragStartRequest is the body of POST /api/drag/start
type DragStartRequest struct {
	TaskID string `json:"taskId" binding:"required"`
}

// DragDropRequest is the body of POST /api/drag/drop
type DragDropRequest struct {
	TaskID   string `json:"taskId" binding:"required"`
	ColumnID string `json:"columnId" binding:"required"`
	Position *int   `json:"position" binding:"omitempty,min=0"`
}

// DragDropResponse reports whether the drop moved the task
type DragDropResponse struct {
	Moved bool     `json:"moved"`
	Task  *TaskDTO `json:"task,omitempty"`
}

// ColumnViewDTO is a column with its visible tasks
type ColumnViewDTO struct {
	models.Column
	Tasks []TaskDTO `json:"tasks"`
}

// BoardViewDTO represents a filtered board in API responses
type BoardViewDTO struct {
	Board   models.Board         `json:"board"`
	Columns []ColumnViewDTO      `json:"columns"`
	Filters models.SearchFilters `json:"filters"`
}

func NewBoardViewDTO(v filter.BoardView, now time.Time) BoardViewDTO {
	out := BoardViewDTO{
		Board:   v.Board,
		Columns: make([]ColumnViewDTO, 0, len(v.Columns)),
		Filters: v.Filters,
	}
	for _, cv := range v.Columns {
		out.Columns = append(out.Columns, ColumnViewDTO{
			Column: cv.Column,
			Tasks:  NewTaskDTOs(cv.Tasks, now),
		})
	}
	return out
}
