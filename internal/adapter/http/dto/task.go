package dto

type TaskResponse struct {
	ID          uint64 `json:"id"`
	TaskName    string `json:"taskName"`
	IsCompleted bool   `json:"isCompleted"`
	DueDate     string `json:"dueDate"`
}

// TaskWriteRequest is the body of create and update. Pointers tell an absent
// field apart from a zero value.
type TaskWriteRequest struct {
	TaskName    *string `json:"taskName" validate:"required,filled,max=100"`
	IsCompleted *bool   `json:"isCompleted" validate:"required"`
	DueDate     *string `json:"dueDate" validate:"required,filled,min=10,taskdate"`
}
