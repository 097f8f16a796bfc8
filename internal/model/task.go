package model

// TaskStatus tracks a task through its lifecycle.
type TaskStatus string

// Task status constants.
const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

// ValidTaskStatus reports whether s is one of the known task statuses.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskDone:
		return true
	}
	return false
}

// Task represents an actionable item extracted from a message.
// DueDate is a canonical YYYY-MM-DD string or empty, never free-form:
// the store's date-window queries compare these strings lexicographically.
type Task struct {
	ID              string     `json:"task_id"`
	Title           string     `json:"title"`
	DueDate         string     `json:"due_date,omitempty"`
	SourceMessageID string     `json:"source_message_id"`
	Status          TaskStatus `json:"status"`
	Notes           string     `json:"notes,omitempty"`
	Priority        string     `json:"priority,omitempty"`
}
