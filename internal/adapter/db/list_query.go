package db

import (
	sq "github.com/Masterminds/squirrel"

	"taskmanager/internal/core/domain"
)

// buildListTasksQuery turns a validated list query into SQL. Only the fixed
// column names below reach the statement text; the status value is bound.
func buildListTasksQuery(query domain.ListTasksQuery) sq.SelectBuilder {
	builder := sq.Select("id", "name", "due_date", "is_completed").From("tasks")

	if completed := query.Status.CompletedValue(); completed != nil {
		builder = builder.Where(sq.Eq{"is_completed": *completed})
	}

	if query.Order == domain.SortDesc {
		return builder.OrderBy("due_date DESC", "id DESC")
	}
	return builder.OrderBy("due_date ASC", "id ASC")
}
