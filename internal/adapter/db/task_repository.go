package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

const (
	findTaskByIDQuery   = `SELECT id, name, due_date, is_completed FROM tasks WHERE id = ?`
	findTaskByNameQuery = `SELECT id, name, due_date, is_completed FROM tasks WHERE name = ?`
	countTasksQuery     = `SELECT COUNT(*) FROM tasks`
	insertTaskQuery     = `INSERT INTO tasks (name, due_date, is_completed) VALUES (?, ?, ?)`
	updateTaskQuery     = `UPDATE tasks SET name = ?, due_date = ?, is_completed = ? WHERE id = ?`
	deleteTaskQuery     = `DELETE FROM tasks WHERE id = ?`

	mysqlDuplicateEntry = 1062
)

type TaskRepository struct {
	db *sqlx.DB
	// ext is db itself or the transaction the repository is bound to.
	ext  sqlx.ExtContext
	inTx bool
}

type taskRow struct {
	ID          uint64 `db:"id"`
	Name        string `db:"name"`
	DueDate     dbDate `db:"due_date"`
	IsCompleted bool   `db:"is_completed"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db, ext: db}
}

func (r *TaskRepository) Insert(ctx context.Context, task *domain.Task) error {
	result, err := r.ext.ExecContext(ctx, insertTaskQuery, task.Name, formatDate(task.DueDate), task.IsCompleted)
	if err != nil {
		return translateWriteError("insert task", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("read inserted task id: %w", err)
	}
	task.ID = uint64(id)

	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint64) (domain.Task, error) {
	return r.findOne(ctx, findTaskByIDQuery, id)
}

func (r *TaskRepository) FindByName(ctx context.Context, name string) (domain.Task, error) {
	return r.findOne(ctx, findTaskByNameQuery, name)
}

func (r *TaskRepository) Update(ctx context.Context, task domain.Task) error {
	// MySQL reports zero affected rows for an unchanged row, so existence is
	// checked by the caller rather than from the result.
	if _, err := r.ext.ExecContext(ctx, updateTaskQuery, task.Name, formatDate(task.DueDate), task.IsCompleted, task.ID); err != nil {
		return translateWriteError("update task", err)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.ext.ExecContext(ctx, deleteTaskQuery, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return requireAffected(result)
}

func (r *TaskRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := sqlx.GetContext(ctx, r.ext, &count, countTasksQuery); err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return count, nil
}

func (r *TaskRepository) List(ctx context.Context, query domain.ListTasksQuery) ([]domain.Task, error) {
	statement, args, err := buildListTasksQuery(query).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []taskRow
	if err := sqlx.SelectContext(ctx, r.ext, &rows, statement, args...); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

// WithinTx commits when fn returns nil and rolls back otherwise. Calls on a
// repository already bound to a transaction reuse it.
func (r *TaskRepository) WithinTx(ctx context.Context, fn func(repo ports.TaskRepository) error) (err error) {
	if r.inTx {
		return fn(r)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&TaskRepository{db: r.db, ext: tx, inTx: true}); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("rollback transaction: %v (original error: %w)", rollbackErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return translateWriteError("commit transaction", err)
	}
	return nil
}

func (r *TaskRepository) findOne(ctx context.Context, query string, arg any) (domain.Task, error) {
	var row taskRow
	if err := sqlx.GetContext(ctx, r.ext, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, fmt.Errorf("find task: %w", err)
	}
	return mapTaskRowToDomainTask(row), nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	return domain.Task{
		ID:          row.ID,
		Name:        row.Name,
		DueDate:     row.DueDate.Time,
		IsCompleted: row.IsCompleted,
	}
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// translateWriteError maps unique-index violations on tasks.name to ErrTaskAlreadyExists.
func translateWriteError(op string, err error) error {
	if isUniqueViolation(err) {
		return domain.ErrTaskAlreadyExists
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isUniqueViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			(sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "UNIQUE"))
	}

	return false
}

func formatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}
