package ports

import (
	"context"

	"taskmanager/internal/core/domain"
)

type TaskRepository interface {
	// Insert stores task and sets its ID.
	Insert(ctx context.Context, task *domain.Task) error
	FindByID(ctx context.Context, id uint64) (domain.Task, error)
	FindByName(ctx context.Context, name string) (domain.Task, error)
	Update(ctx context.Context, task domain.Task) error
	Delete(ctx context.Context, id uint64) error
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, query domain.ListTasksQuery) ([]domain.Task, error)
	// WithinTx runs fn against a repository bound to a single transaction.
	WithinTx(ctx context.Context, fn func(repo TaskRepository) error) error
}

type TaskService interface {
	CreateTask(ctx context.Context, input domain.TaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id uint64, input domain.TaskInput) error
	DeleteTask(ctx context.Context, id uint64) error
	GetTask(ctx context.Context, id uint64) (domain.Task, error)
	ListTasks(ctx context.Context, query domain.ListTasksQuery) ([]domain.Task, error)
}
