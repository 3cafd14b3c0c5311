package validation

import (
	"taskmanager/internal/core/domain"
	"taskmanager/pkg/apierrors"
)

// BuildListTasksQuery validates orderByDate before taskStatus and reports the first invalid one.
func BuildListTasksQuery(orderByDate, taskStatus string) (domain.ListTasksQuery, error) {
	order, ok := domain.ParseSortDirection(orderByDate)
	if !ok {
		return domain.ListTasksQuery{}, &Violation{Number: apierrors.NotValid, Parameter: apierrors.ParamOrderByDate, Value: &orderByDate}
	}

	status, ok := domain.ParseTaskStatusFilter(taskStatus)
	if !ok {
		return domain.ListTasksQuery{}, &Violation{Number: apierrors.NotValid, Parameter: apierrors.ParamTaskStatus, Value: &taskStatus}
	}

	return domain.ListTasksQuery{Status: status, Order: order}, nil
}
