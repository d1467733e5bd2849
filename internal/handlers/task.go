package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard/internal/dto"
	"github.com/yukikurage/taskboard/internal/engine"
	apierrors "github.com/yukikurage/taskboard/internal/errors"
	"github.com/yukikurage/taskboard/internal/middleware"
	"github.com/yukikurage/taskboard/internal/services"
)

type TaskHandler struct {
	service *services.BoardService
}

func NewTaskHandler(service *services.BoardService) *TaskHandler {
	return &TaskHandler{service: service}
}

// CreateTask appends a task to the column loaded by RequireColumn
func (h *TaskHandler) CreateTask(c *gin.Context) {
	column, ok := middleware.GetColumn(c)
	if !ok {
		apierrors.InternalError(c, "Column not found in context")
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	task, err := h.service.CreateTask(c.Request.Context(), services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   req.CreatedBy,
		Priority:    req.Priority,
		DueDate:     *req.DueDate,
		ColumnID:    column.ID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTaskDTO(task, h.service.Now()))
}

// GetTask returns a specific task
// Task is already loaded by RequireTask middleware
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	c.JSON(http.StatusOK, dto.NewTaskDTO(task, h.service.Now()))
}

// UpdateTask changes the fields present in the body
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateTask(c.Request.Context(), task.ID, engine.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   req.CreatedBy,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTaskDTO(updated, h.service.Now()))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	if err := h.service.DeleteTask(c.Request.Context(), task.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// MoveTask relocates a task to a position in another (or the same) column
func (h *TaskHandler) MoveTask(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	var req dto.MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	moved, err := h.service.MoveTask(c.Request.Context(), task.ID, req.ColumnID, *req.Order)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTaskDTO(moved, h.service.Now()))
}

// ReorderTask repositions a task within its column
func (h *TaskHandler) ReorderTask(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	var req dto.ReorderTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	reordered, err := h.service.ReorderTask(c.Request.Context(), task.ID, *req.Order)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTaskDTO(reordered, h.service.Now()))
}
