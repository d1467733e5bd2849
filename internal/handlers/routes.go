package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard/internal/middleware"
	"github.com/yukikurage/taskboard/internal/services"
)

// RegisterRoutes wires every endpoint onto r. Session middleware must already be installed.
func RegisterRoutes(r gin.IRouter, svc *services.BoardService) {
	boardHandler := NewBoardHandler(svc)
	columnHandler := NewColumnHandler(svc)
	taskHandler := NewTaskHandler(svc)
	filterHandler := NewFilterHandler()
	dragHandler := NewDragHandler(svc)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Taskboard API is running",
		})
	})

	api := r.Group("/api")
	{
		api.GET("/state", boardHandler.GetState)
		api.PUT("/state/current-board", boardHandler.SetCurrentBoard)

		boards := api.Group("/boards")
		{
			boards.GET("", boardHandler.ListBoards)
			boards.POST("", boardHandler.CreateBoard)
			boards.GET("/:id", middleware.RequireBoard(svc), boardHandler.GetBoard)
			boards.DELETE("/:id", middleware.RequireBoard(svc), boardHandler.DeleteBoard)
			boards.GET("/:id/view", middleware.RequireBoard(svc), boardHandler.GetBoardView)
			boards.GET("/:id/tasks", middleware.RequireBoard(svc), boardHandler.ListBoardTasks)
			boards.POST("/:id/columns", middleware.RequireBoard(svc), columnHandler.CreateColumn)
		}

		columns := api.Group("/columns")
		columns.Use(middleware.RequireColumn(svc))
		{
			columns.PATCH("/:id", columnHandler.UpdateColumn)
			columns.DELETE("/:id", columnHandler.DeleteColumn)
			columns.POST("/:id/tasks", taskHandler.CreateTask)
		}

		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireTask(svc))
		{
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PATCH("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.POST("/:id/move", taskHandler.MoveTask)
			tasks.POST("/:id/reorder", taskHandler.ReorderTask)
		}

		filters := api.Group("/filters")
		{
			filters.GET("", filterHandler.GetFilters)
			filters.PUT("", filterHandler.UpdateFilters)
			filters.DELETE("", filterHandler.ClearFilters)
		}

		drag := api.Group("/drag")
		{
			drag.POST("/start", dragHandler.StartDrag)
			drag.POST("/drop", dragHandler.Drop)
			drag.DELETE("", dragHandler.CancelDrag)
		}
	}
}
