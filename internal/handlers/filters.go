package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard/internal/dto"
	apierrors "github.com/yukikurage/taskboard/internal/errors"
	"github.com/yukikurage/taskboard/internal/middleware"
	"github.com/yukikurage/taskboard/internal/models"
)

// FilterHandler manages the search filters kept in the client session
type FilterHandler struct{}

func NewFilterHandler() *FilterHandler {
	return &FilterHandler{}
}

func (h *FilterHandler) GetFilters(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.GetFilters(c))
}

func (h *FilterHandler) UpdateFilters(c *gin.Context) {
	var req dto.FiltersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	priority, err := models.ParsePriorityFilter(strings.TrimSpace(req.Priority))
	if err != nil {
		apierrors.InvalidFormat(c, err.Error())
		return
	}
	due, err := models.ParseDueDateFilter(strings.TrimSpace(req.DueDateFilter))
	if err != nil {
		apierrors.InvalidFormat(c, err.Error())
		return
	}

	filters := models.SearchFilters{
		SearchTerm:    req.SearchTerm,
		Priority:      priority,
		DueDateFilter: due,
	}
	if err := middleware.SaveFilters(c, filters); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, filters)
}

func (h *FilterHandler) ClearFilters(c *gin.Context) {
	if err := middleware.ClearFilters(c); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.DefaultSearchFilters())
}
