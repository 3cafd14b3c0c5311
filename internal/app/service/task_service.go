package service

import (
	"context"
	"errors"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	maxTasks       int64
}

func NewTaskService(taskRepository ports.TaskRepository, maxTasks int) *TaskService {
	return &TaskService{taskRepository: taskRepository, maxTasks: int64(maxTasks)}
}

// CreateTask rejects duplicate names before checking capacity, then inserts and
// re-reads the stored row.
func (s *TaskService) CreateTask(ctx context.Context, input domain.TaskInput) (domain.Task, error) {
	var created domain.Task
	err := s.taskRepository.WithinTx(ctx, func(repo ports.TaskRepository) error {
		if err := ensureNameAvailable(ctx, repo, input.Name, 0); err != nil {
			return err
		}

		count, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		if count >= s.maxTasks {
			return domain.ErrTaskCapacityReached
		}

		task := domain.NewTask(input)
		if err := repo.Insert(ctx, &task); err != nil {
			return err
		}

		created, err = repo.FindByID(ctx, task.ID)
		return err
	})
	if err != nil {
		return domain.Task{}, err
	}
	return created, nil
}

// UpdateTask replaces name, due date and completion of an existing task.
func (s *TaskService) UpdateTask(ctx context.Context, id uint64, input domain.TaskInput) error {
	return s.taskRepository.WithinTx(ctx, func(repo ports.TaskRepository) error {
		task, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if err := ensureNameAvailable(ctx, repo, input.Name, id); err != nil {
			return err
		}

		task.Apply(input)
		return repo.Update(ctx, task)
	})
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint64) error {
	return s.taskRepository.WithinTx(ctx, func(repo ports.TaskRepository) error {
		if _, err := repo.FindByID(ctx, id); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
}

func (s *TaskService) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	return s.taskRepository.FindByID(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context, query domain.ListTasksQuery) ([]domain.Task, error) {
	return s.taskRepository.List(ctx, query)
}

// ensureNameAvailable fails with ErrTaskAlreadyExists when another task owns name.
// ownerID is the task allowed to keep the name (0 for none).
func ensureNameAvailable(ctx context.Context, repo ports.TaskRepository, name string, ownerID uint64) error {
	existing, err := repo.FindByName(ctx, name)
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != ownerID:
		return domain.ErrTaskAlreadyExists
	default:
		return nil
	}
}

var _ ports.TaskService = (*TaskService)(nil)
