package taskclient

import (
	"errors"
	"fmt"

	"taskmanager/pkg/apierrors"
)

// APIError is returned for every non-2xx answer. Response is zero when the
// server sent no ErrorResponse body (unexpected 5xx).
type APIError struct {
	StatusCode int
	Response   apierrors.ErrorResponse
}

func (e *APIError) Error() string {
	if e.Response.ErrorNumber == 0 {
		return fmt.Sprintf("taskclient: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("taskclient: status %d: %s", e.StatusCode, e.Response.Error())
}

// ErrorNumber extracts the error number carried by err, or 0.
func ErrorNumber(err error) apierrors.ErrorNumber {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Response.ErrorNumber
	}
	return 0
}
