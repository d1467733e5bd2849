package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard/internal/constants"
	"github.com/yukikurage/taskboard/internal/models"
)

// GetFilters reads the search filters remembered in the session
func GetFilters(c *gin.Context) models.SearchFilters {
	session := sessions.Default(c)
	f := models.DefaultSearchFilters()

	if v, ok := session.Get(constants.SessionKeySearchTerm).(string); ok {
		f.SearchTerm = v
	}
	if v, ok := session.Get(constants.SessionKeyPriority).(string); ok {
		if p, err := models.ParsePriorityFilter(v); err == nil {
			f.Priority = p
		}
	}
	if v, ok := session.Get(constants.SessionKeyDueDate).(string); ok {
		if d, err := models.ParseDueDateFilter(v); err == nil {
			f.DueDateFilter = d
		}
	}
	return f
}

// SaveFilters remembers the search filters in the session
func SaveFilters(c *gin.Context, f models.SearchFilters) error {
	session := sessions.Default(c)
	session.Set(constants.SessionKeySearchTerm, f.SearchTerm)
	session.Set(constants.SessionKeyPriority, string(f.Priority))
	session.Set(constants.SessionKeyDueDate, string(f.DueDateFilter))
	return session.Save()
}

// ClearFilters resets the session's search filters
func ClearFilters(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(constants.SessionKeySearchTerm)
	session.Delete(constants.SessionKeyPriority)
	session.Delete(constants.SessionKeyDueDate)
	return session.Save()
}

// GetDragTaskID returns the task recorded when the session's drag started
func GetDragTaskID(c *gin.Context) (string, bool) {
	id, ok := sessions.Default(c).Get(constants.SessionKeyDragTaskID).(string)
	return id, ok && id != ""
}

// SetDragTaskID records the dragged task in the session
func SetDragTaskID(c *gin.Context, taskID string) error {
	session := sessions.Default(c)
	session.Set(constants.SessionKeyDragTaskID, taskID)
	return session.Save()
}

// ClearDrag ends the session's drag
func ClearDrag(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(constants.SessionKeyDragTaskID)
	return session.Save()
}
