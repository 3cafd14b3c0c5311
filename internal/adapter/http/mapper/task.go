package mapper

import (
	"taskmanager/internal/adapter/http/dto"
	"taskmanager/internal/core/domain"
)

func ToTaskResponses(tasks []domain.Task) []dto.TaskResponse {
	items := make([]dto.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskResponse(task))
	}
	return items
}

func ToTaskResponse(task domain.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:          task.ID,
		TaskName:    task.Name,
		IsCompleted: task.IsCompleted,
		DueDate:     task.DueDate.Format(domain.DateLayout),
	}
}
