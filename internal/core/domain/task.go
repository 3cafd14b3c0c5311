package domain

import "time"

// DateLayout is the canonical calendar-date format used on the wire and in storage.
const DateLayout = "2006-01-02"

const MaxTaskNameLength = 100

type Task struct {
	ID          uint64
	Name        string
	DueDate     time.Time
	IsCompleted bool
}

// TaskInput carries the fields of a create or full-replace update.
type TaskInput struct {
	Name        string
	DueDate     time.Time
	IsCompleted bool
}

// NewTask builds an unsaved task from input; the store assigns the ID.
func NewTask(input TaskInput) Task {
	return Task{
		Name:        input.Name,
		DueDate:     DateOnly(input.DueDate),
		IsCompleted: input.IsCompleted,
	}
}

// Apply overwrites every mutable field of t.
func (t *Task) Apply(input TaskInput) {
	t.Name = input.Name
	t.DueDate = DateOnly(input.DueDate)
	t.IsCompleted = input.IsCompleted
}

// DateOnly drops the clock part and pins the date to UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
