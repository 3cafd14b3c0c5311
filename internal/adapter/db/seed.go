package db

import (
	"context"
	"time"

	"go.uber.org/zap"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

// DemoTasks are inserted into an empty store at startup when seeding is enabled.
func DemoTasks() []domain.Task {
	return []domain.Task{
		{Name: "Buy Groceries", IsCompleted: false, DueDate: time.Date(2020, 2, 3, 0, 0, 0, 0, time.UTC)},
		{Name: "Workout", IsCompleted: true, DueDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "Paint fence", IsCompleted: false, DueDate: time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC)},
		{Name: "Mow Lawn", IsCompleted: false, DueDate: time.Date(2020, 6, 11, 0, 0, 0, 0, time.UTC)},
	}
}

// SeedTasks inserts tasks only when the store holds none. It reports whether it inserted anything.
func SeedTasks(ctx context.Context, repo ports.TaskRepository, tasks []domain.Task) (bool, error) {
	seeded := false
	err := repo.WithinTx(ctx, func(tx ports.TaskRepository) error {
		count, err := tx.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for i := range tasks {
			task := tasks[i]
			if err := tx.Insert(ctx, &task); err != nil {
				return err
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if seeded {
		zap.L().Info("seeded task store", zap.Int("tasks", len(tasks)))
	}
	return seeded, nil
}
