package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard/internal/dto"
	apierrors "github.com/yukikurage/taskboard/internal/errors"
	"github.com/yukikurage/taskboard/internal/middleware"
	"github.com/yukikurage/taskboard/internal/services"
)

type ColumnHandler struct {
	service *services.BoardService
}

func NewColumnHandler(service *services.BoardService) *ColumnHandler {
	return &ColumnHandler{service: service}
}

// CreateColumn appends a column to the board loaded by RequireBoard
func (h *ColumnHandler) CreateColumn(c *gin.Context) {
	board, ok := middleware.GetBoard(c)
	if !ok {
		apierrors.InternalError(c, "Board not found in context")
		return
	}

	var req dto.ColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	column, err := h.service.CreateColumn(c.Request.Context(), board.ID, req.Title)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, column)
}

// UpdateColumn renames a column
func (h *ColumnHandler) UpdateColumn(c *gin.Context) {
	column, ok := middleware.GetColumn(c)
	if !ok {
		apierrors.InternalError(c, "Column not found in context")
		return
	}

	var req dto.ColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.RenameColumn(c.Request.Context(), column.ID, req.Title)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteColumn deletes a column and its tasks
func (h *ColumnHandler) DeleteColumn(c *gin.Context) {
	column, ok := middleware.GetColumn(c)
	if !ok {
		apierrors.InternalError(c, "Column not found in context")
		return
	}

	if err := h.service.DeleteColumn(c.Request.Context(), column.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Column deleted successfully"})
}
