package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard/internal/dto"
	apierrors "github.com/yukikurage/taskboard/internal/errors"
	"github.com/yukikurage/taskboard/internal/middleware"
	"github.com/yukikurage/taskboard/internal/models"
	"github.com/yukikurage/taskboard/internal/services"
	"github.com/yukikurage/taskboard/internal/utils"
)

type BoardHandler struct {
	service *services.BoardService
}

func NewBoardHandler(service *services.BoardService) *BoardHandler {
	return &BoardHandler{service: service}
}

// GetState returns the whole application state
func (h *BoardHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Snapshot())
}

// SetCurrentBoard selects the current board, or clears it when boardId is null
func (h *BoardHandler) SetCurrentBoard(c *gin.Context) {
	var req dto.SetCurrentBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.SetCurrentBoard(c.Request.Context(), req.BoardID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"currentBoardId": req.BoardID})
}

func (h *BoardHandler) ListBoards(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"boards": h.service.ListBoards()})
}

func (h *BoardHandler) CreateBoard(c *gin.Context) {
	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	board, err := h.service.CreateBoard(c.Request.Context(), services.CreateBoardInput{
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, board)
}

// GetBoard returns a board with its columns in order
// Board is already loaded by RequireBoard middleware
func (h *BoardHandler) GetBoard(c *gin.Context) {
	board, ok := middleware.GetBoard(c)
	if !ok {
		apierrors.InternalError(c, "Board not found in context")
		return
	}

	columns, err := h.service.ListColumns(board.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"board": board, "columns": columns})
}

func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	board, ok := middleware.GetBoard(c)
	if !ok {
		apierrors.InternalError(c, "Board not found in context")
		return
	}

	if err := h.service.DeleteBoard(c.Request.Context(), board.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Board deleted successfully"})
}

// GetBoardView returns the board's columns with the tasks matching the filters.
// Query parameters override the session's filters and are remembered for later requests.
func (h *BoardHandler) GetBoardView(c *gin.Context) {
	board, ok := middleware.GetBoard(c)
	if !ok {
		apierrors.InternalError(c, "Board not found in context")
		return
	}

	filters, changed, err := resolveFilters(c)
	if err != nil {
		apierrors.InvalidFormat(c, err.Error())
		return
	}
	if changed {
		if err := middleware.SaveFilters(c, filters); err != nil {
			respondError(c, err)
			return
		}
	}

	view, err := h.service.BoardView(board.ID, filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBoardViewDTO(view, h.service.Now()))
}

// ListBoardTasks returns the matching tasks of a board as one paginated list
func (h *BoardHandler) ListBoardTasks(c *gin.Context) {
	board, ok := middleware.GetBoard(c)
	if !ok {
		apierrors.InternalError(c, "Board not found in context")
		return
	}

	filters, _, err := resolveFilters(c)
	if err != nil {
		apierrors.InvalidFormat(c, err.Error())
		return
	}

	tasks, err := h.service.FilteredTasks(board.ID, filters)
	if err != nil {
		respondError(c, err)
		return
	}

	page, meta := utils.Paginate(tasks, utils.GetPaginationParams(c))
	c.JSON(http.StatusOK, dto.TaskListResponse{
		Tasks:      dto.NewTaskDTOs(page, h.service.Now()),
		Pagination: meta,
	})
}

// resolveFilters starts from the session's filters and applies the search, priority
// and due query parameters that are present.
func resolveFilters(c *gin.Context) (models.SearchFilters, bool, error) {
	filters := middleware.GetFilters(c)
	changed := false

	if v, ok := c.GetQuery("search"); ok {
		filters.SearchTerm = v
		changed = true
	}
	if v, ok := c.GetQuery("priority"); ok {
		p, err := models.ParsePriorityFilter(v)
		if err != nil {
			return filters, false, err
		}
		filters.Priority = p
		changed = true
	}
	if v, ok := c.GetQuery("due"); ok {
		d, err := models.ParseDueDateFilter(v)
		if err != nil {
			return filters, false, err
		}
		filters.DueDateFilter = d
		changed = true
	}
	return filters, changed, nil
}
