package domain

import "errors"

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrTaskAlreadyExists   = errors.New("task already exists")
	ErrTaskCapacityReached = errors.New("task capacity reached")
)
