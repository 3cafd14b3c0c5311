package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskmanager/internal/app/service"
	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) Insert(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	if id, ok := args.Get(0).(uint64); ok {
		task.ID = id
	}
	return args.Error(1)
}

func (m *taskRepositoryMock) FindByID(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) FindByName(ctx context.Context, name string) (domain.Task, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, task domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *taskRepositoryMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *taskRepositoryMock) List(ctx context.Context, query domain.ListTasksQuery) ([]domain.Task, error) {
	args := m.Called(ctx, query)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) WithinTx(ctx context.Context, fn func(repo ports.TaskRepository) error) error {
	return fn(m)
}

var dueDate = time.Date(2012, 4, 23, 0, 0, 0, 0, time.UTC)

func TestTaskService_CreateTask_Success(t *testing.T) {
	ctx := context.Background()
	input := domain.TaskInput{Name: "Valid Task Name", DueDate: dueDate}
	stored := domain.Task{ID: 12, Name: input.Name, DueDate: dueDate}

	repo := new(taskRepositoryMock)
	repo.On("FindByName", ctx, input.Name).Return(domain.Task{}, domain.ErrTaskNotFound).Once()
	repo.On("Count", ctx).Return(int64(4), nil).Once()
	repo.On("Insert", ctx, mock.MatchedBy(func(task *domain.Task) bool {
		return task.Name == input.Name && task.DueDate.Equal(dueDate) && !task.IsCompleted
	})).Return(uint64(12), nil).Once()
	repo.On("FindByID", ctx, uint64(12)).Return(stored, nil).Once()

	got, err := service.NewTaskService(repo, 100).CreateTask(ctx, input)

	require.NoError(t, err)
	require.Equal(t, stored, got)
	repo.AssertExpectations(t)
}

func TestTaskService_CreateTask_DuplicateName(t *testing.T) {
	ctx := context.Background()
	input := domain.TaskInput{Name: "Workout", DueDate: dueDate}

	repo := new(taskRepositoryMock)
	repo.On("FindByName", ctx, input.Name).Return(domain.Task{ID: 2, Name: "Workout"}, nil).Once()

	_, err := service.NewTaskService(repo, 100).CreateTask(ctx, input)

	require.ErrorIs(t, err, domain.ErrTaskAlreadyExists)
	repo.AssertNotCalled(t, "Count", mock.Anything)
	repo.AssertExpectations(t)
}

func TestTaskService_CreateTask_AtCapacity(t *testing.T) {
	ctx := context.Background()
	input := domain.TaskInput{Name: "One too many", DueDate: dueDate}

	repo := new(taskRepositoryMock)
	repo.On("FindByName", ctx, input.Name).Return(domain.Task{}, domain.ErrTaskNotFound).Once()
	repo.On("Count", ctx).Return(int64(3), nil).Once()

	_, err := service.NewTaskService(repo, 3).CreateTask(ctx, input)

	require.ErrorIs(t, err, domain.ErrTaskCapacityReached)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestTaskService_CreateTask_LookupFailure(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("db is down")

	repo := new(taskRepositoryMock)
	repo.On("FindByName", ctx, "x").Return(domain.Task{}, dbErr).Once()

	_, err := service.NewTaskService(repo, 100).CreateTask(ctx, domain.TaskInput{Name: "x", DueDate: dueDate})

	require.ErrorIs(t, err, dbErr)
	repo.AssertExpectations(t)
}

func TestTaskService_UpdateTask_ReplacesAllFields(t *testing.T) {
	ctx := context.Background()
	existing := domain.Task{ID: 3, Name: "Paint fence", DueDate: time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC)}
	input := domain.TaskInput{Name: "Paint house", DueDate: dueDate, IsCompleted: true}

	repo := new(taskRepositoryMock)
	repo.On("FindByID", ctx, uint64(3)).Return(existing, nil).Once()
	repo.On("FindByName", ctx, input.Name).Return(domain.Task{}, domain.ErrTaskNotFound).Once()
	repo.On("Update", ctx, domain.Task{ID: 3, Name: "Paint house", DueDate: dueDate, IsCompleted: true}).Return(nil).Once()

	err := service.NewTaskService(repo, 100).UpdateTask(ctx, 3, input)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestTaskService_UpdateTask_KeepsOwnName(t *testing.T) {
	ctx := context.Background()
	existing := domain.Task{ID: 3, Name: "Paint fence", DueDate: dueDate}
	input := domain.TaskInput{Name: "Paint fence", DueDate: dueDate, IsCompleted: true}

	repo := new(taskRepositoryMock)
	repo.On("FindByID", ctx, uint64(3)).Return(existing, nil).Once()
	repo.On("FindByName", ctx, input.Name).Return(existing, nil).Once()
	repo.On("Update", ctx, mock.AnythingOfType("domain.Task")).Return(nil).Once()

	require.NoError(t, service.NewTaskService(repo, 100).UpdateTask(ctx, 3, input))
	repo.AssertExpectations(t)
}

func TestTaskService_UpdateTask_NameTakenByAnotherTask(t *testing.T) {
	ctx := context.Background()

	repo := new(taskRepositoryMock)
	repo.On("FindByID", ctx, uint64(3)).Return(domain.Task{ID: 3, Name: "Paint fence"}, nil).Once()
	repo.On("FindByName", ctx, "Workout").Return(domain.Task{ID: 2, Name: "Workout"}, nil).Once()

	err := service.NewTaskService(repo, 100).UpdateTask(ctx, 3, domain.TaskInput{Name: "Workout", DueDate: dueDate})

	require.ErrorIs(t, err, domain.ErrTaskAlreadyExists)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestTaskService_UpdateTask_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := new(taskRepositoryMock)
	repo.On("FindByID", ctx, uint64(999)).Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	err := service.NewTaskService(repo, 100).UpdateTask(ctx, 999, domain.TaskInput{Name: "x", DueDate: dueDate})

	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	repo.AssertExpectations(t)
}

func TestTaskService_DeleteTask(t *testing.T) {
	ctx := context.Background()

	repo := new(taskRepositoryMock)
	repo.On("FindByID", ctx, uint64(4)).Return(domain.Task{ID: 4}, nil).Once()
	repo.On("Delete", ctx, uint64(4)).Return(nil).Once()

	require.NoError(t, service.NewTaskService(repo, 100).DeleteTask(ctx, 4))
	repo.AssertExpectations(t)
}

func TestTaskService_DeleteTask_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := new(taskRepositoryMock)
	repo.On("FindByID", ctx, uint64(4)).Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	err := service.NewTaskService(repo, 100).DeleteTask(ctx, 4)

	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestTaskService_ListTasks(t *testing.T) {
	ctx := context.Background()
	query := domain.ListTasksQuery{Status: domain.TaskStatusCompleted, Order: domain.SortDesc}
	tasks := []domain.Task{{ID: 2, Name: "Workout", IsCompleted: true}}

	repo := new(taskRepositoryMock)
	repo.On("List", ctx, query).Return(tasks, nil).Once()

	got, err := service.NewTaskService(repo, 100).ListTasks(ctx, query)

	require.NoError(t, err)
	require.Equal(t, tasks, got)
	repo.AssertExpectations(t)
}
