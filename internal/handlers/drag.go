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

// DragHandler tracks a drag per client session and applies the drop
type DragHandler struct {
	service *services.BoardService
}

func NewDragHandler(service *services.BoardService) *DragHandler {
	return &DragHandler{service: service}
}

// StartDrag records the task being dragged
func (h *DragHandler) StartDrag(c *gin.Context) {
	var req dto.DragStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if _, err := h.service.GetTask(req.TaskID); err != nil {
		respondError(c, err)
		return
	}
	if err := middleware.SetDragTaskID(c, req.TaskID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"taskId": req.TaskID})
}

// Drop moves the dragged task to the end of the target column, or to position when
// given. A drop carrying a different task than the one recorded at drag start is ignored.
func (h *DragHandler) Drop(c *gin.Context) {
	var req dto.DragDropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	var tracker engine.DragTracker
	if id, ok := middleware.GetDragTaskID(c); ok {
		tracker.Start(id)
	}

	var (
		moved bool
		err   error
	)
	if req.Position != nil {
		moved, err = h.service.DropAt(c.Request.Context(), &tracker, req.TaskID, req.ColumnID, *req.Position)
	} else {
		moved, err = h.service.Drop(c.Request.Context(), &tracker, req.TaskID, req.ColumnID)
	}
	if clearErr := middleware.ClearDrag(c); clearErr != nil && err == nil {
		err = clearErr
	}
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.DragDropResponse{Moved: moved}
	if moved {
		task, err := h.service.GetTask(req.TaskID)
		if err != nil {
			respondError(c, err)
			return
		}
		t := dto.NewTaskDTO(task, h.service.Now())
		resp.Task = &t
	}
	c.JSON(http.StatusOK, resp)
}

// CancelDrag forgets the session's drag
func (h *DragHandler) CancelDrag(c *gin.Context) {
	if err := middleware.ClearDrag(c); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Drag cancelled"})
}
