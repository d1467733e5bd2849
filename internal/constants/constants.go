package constants

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Session
const (
	SessionCookieName = "taskboard_session"

	SessionKeySearchTerm = "filter_search"
	SessionKeyPriority   = "filter_priority"
	SessionKeyDueDate    = "filter_due"
	SessionKeyDragTaskID = "drag_task_id"
)

// Gin context keys set by middleware
const (
	ContextKeyBoard  = "board"
	ContextKeyColumn = "column"
	ContextKeyTask   = "task"
)
