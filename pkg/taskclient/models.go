package taskclient

// TaskWriteRequest is the body of CreateTask and UpdateTask. Nil fields are
// omitted from the JSON so the server reports them as missing.
type TaskWriteRequest struct {
	TaskName    *string `json:"taskName,omitempty"`
	IsCompleted *bool   `json:"isCompleted,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
}

// NewTaskWriteRequest fills every field of a write request.
func NewTaskWriteRequest(name string, isCompleted bool, dueDate string) TaskWriteRequest {
	return TaskWriteRequest{TaskName: &name, IsCompleted: &isCompleted, DueDate: &dueDate}
}

type Task struct {
	ID          uint64 `json:"id"`
	TaskName    string `json:"taskName"`
	IsCompleted bool   `json:"isCompleted"`
	DueDate     string `json:"dueDate"`
}

type SortOrder string

const (
	OrderAsc  SortOrder = "Asc"
	OrderDesc SortOrder = "Desc"
)

type TaskStatus string

const (
	StatusAll          TaskStatus = "All"
	StatusCompleted    TaskStatus = "Completed"
	StatusNotCompleted TaskStatus = "NotCompleted"
)

// ListOptions narrows ListTasks. Zero values are left out of the query string.
type ListOptions struct {
	OrderByDate SortOrder
	TaskStatus  TaskStatus
}
