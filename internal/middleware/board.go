package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard/internal/constants"
	apierrors "github.com/yukikurage/taskboard/internal/errors"
	"github.com/yukikurage/taskboard/internal/models"
	"github.com/yukikurage/taskboard/internal/services"
)

// RequireBoard loads the board named by the :id parameter into the context
func RequireBoard(svc *services.BoardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		board, err := svc.GetBoard(c.Param("id"))
		if err != nil {
			apierrors.NotFound(c, "Board not found")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyBoard, board)
		c.Next()
	}
}

// RequireColumn loads the column named by the :id parameter into the context
func RequireColumn(svc *services.BoardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		column, err := svc.GetColumn(c.Param("id"))
		if err != nil {
			apierrors.NotFound(c, "Column not found")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyColumn, column)
		c.Next()
	}
}

// RequireTask loads the task named by the :id parameter into the context
func RequireTask(svc *services.BoardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		task, err := svc.GetTask(c.Param("id"))
		if err != nil {
			apierrors.NotFound(c, "Task not found")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyTask, task)
		c.Next()
	}
}

// GetBoard retrieves the board set by RequireBoard
func GetBoard(c *gin.Context) (models.Board, bool) {
	v, exists := c.Get(constants.ContextKeyBoard)
	if !exists {
		return models.Board{}, false
	}
	board, ok := v.(models.Board)
	return board, ok
}

// GetColumn retrieves the column set by RequireColumn
func GetColumn(c *gin.Context) (models.Column, bool) {
	v, exists := c.Get(constants.ContextKeyColumn)
	if !exists {
		return models.Column{}, false
	}
	column, ok := v.(models.Column)
	return column, ok
}

// GetTask retrieves the task set by RequireTask
func GetTask(c *gin.Context) (models.Task, bool) {
	v, exists := c.Get(constants.ContextKeyTask)
	if !exists {
		return models.Task{}, false
	}
	task, ok := v.(models.Task)
	return task, ok
}
