package domain

type SortDirection string

const (
	SortAsc  SortDirection = "Asc"
	SortDesc SortDirection = "Desc"
)

type TaskStatusFilter string

const (
	TaskStatusAll          TaskStatusFilter = "All"
	TaskStatusCompleted    TaskStatusFilter = "Completed"
	TaskStatusNotCompleted TaskStatusFilter = "NotCompleted"
)

// ListTasksQuery selects and orders tasks by due date.
type ListTasksQuery struct {
	Status TaskStatusFilter
	Order  SortDirection
}

// DefaultListTasksQuery returns every task in ascending due-date order.
func DefaultListTasksQuery() ListTasksQuery {
	return ListTasksQuery{Status: TaskStatusAll, Order: SortAsc}
}

// ParseSortDirection accepts "", "Asc" and "Desc"; the empty value means ascending.
func ParseSortDirection(value string) (SortDirection, bool) {
	switch value {
	case "", string(SortAsc):
		return SortAsc, true
	case string(SortDesc):
		return SortDesc, true
	default:
		return "", false
	}
}

// ParseTaskStatusFilter accepts "", "All", "Completed" and "NotCompleted"; the empty value means all.
func ParseTaskStatusFilter(value string) (TaskStatusFilter, bool) {
	switch value {
	case "", string(TaskStatusAll):
		return TaskStatusAll, true
	case string(TaskStatusCompleted):
		return TaskStatusCompleted, true
	case string(TaskStatusNotCompleted):
		return TaskStatusNotCompleted, true
	default:
		return "", false
	}
}

// CompletedValue reports the is-completed value the filter selects, or nil when it selects everything.
func (f TaskStatusFilter) CompletedValue() *bool {
	var value bool
	switch f {
	case TaskStatusCompleted:
		value = true
	case TaskStatusNotCompleted:
		value = false
	default:
		return nil
	}
	return &value
}
