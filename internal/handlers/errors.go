package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/yukikurage/taskboard/internal/engine"
	apierrors "github.com/yukikurage/taskboard/internal/errors"
	"github.com/yukikurage/taskboard/internal/services"
)

// respondError maps service and engine errors to API responses
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, engine.ErrBoardNotFound):
		apierrors.NotFound(c, "Board not found")
	case errors.Is(err, engine.ErrColumnNotFound):
		apierrors.NotFound(c, "Column not found")
	case errors.Is(err, engine.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	case errors.Is(err, engine.ErrInvalidPriority),
		errors.Is(err, engine.ErrInvalidDueDate),
		errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrTitleEmpty):
		apierrors.BadRequest(c, err.Error())
	default:
		log.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		apierrors.InternalError(c, "")
	}
}
