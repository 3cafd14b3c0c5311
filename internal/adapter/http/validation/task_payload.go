package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
	"github.com/go-playground/validator/v10"

	"taskmanager/internal/adapter/http/dto"
	"taskmanager/internal/core/domain"
	"taskmanager/pkg/apierrors"
)

// Violation is the first rule a request broke.
type Violation struct {
	Number apierrors.ErrorNumber
	// Parameter is empty when the failure is not tied to a parameter.
	Parameter string
	Value     *string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("violation %d on %q", v.Number, v.Parameter)
}

var validate = newValidator()

// Tag to error number. Fields are checked in declaration order and each field
// stops at its first failing tag, so the first reported error is the one to surface.
var tagNumbers = map[string]apierrors.ErrorNumber{
	"required": apierrors.IsRequired,
	"filled":   apierrors.IsRequired,
	"max":      apierrors.TooLarge,
	"min":      apierrors.TooSmall,
	"taskdate": apierrors.NotValid,
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "filled", func(fl validator.FieldLevel) bool {
		return fl.Field().Kind() == reflect.String && fl.Field().Len() > 0
	})
	mustRegister(v, "taskdate", func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		_, err := ParseDueDate(fl.Field().String())
		return err == nil
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

var errNotADate = errors.New("not a calendar date")

// Words dateparse understands. Any other letters in a due date are text it
// would silently skip.
var dateWords = map[string]struct{}{
	"jan": {}, "january": {}, "feb": {}, "february": {}, "mar": {}, "march": {},
	"apr": {}, "april": {}, "may": {}, "jun": {}, "june": {}, "jul": {}, "july": {},
	"aug": {}, "august": {}, "sep": {}, "sept": {}, "september": {}, "oct": {}, "october": {},
	"nov": {}, "november": {}, "dec": {}, "december": {},
	"mon": {}, "monday": {}, "tue": {}, "tuesday": {}, "wed": {}, "wednesday": {},
	"thu": {}, "thursday": {}, "fri": {}, "friday": {}, "sat": {}, "saturday": {},
	"sun": {}, "sunday": {},
	"st": {}, "nd": {}, "rd": {}, "th": {},
	"t": {}, "z": {}, "am": {}, "pm": {}, "utc": {}, "gmt": {},
}

// ParseDueDate accepts the date layouts dateparse understands and keeps the
// calendar date. Bare digit runs (read as Unix timestamps) and trailing text
// are rejected.
func ParseDueDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if isDigits(value) || hasUnknownWords(value) {
		return time.Time{}, errNotADate
	}

	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return domain.DateOnly(t), nil
}

func isDigits(value string) bool {
	return value != "" && strings.IndexFunc(value, func(r rune) bool { return !unicode.IsDigit(r) }) == -1
}

func hasUnknownWords(value string) bool {
	words := strings.FieldsFunc(strings.ToLower(value), func(r rune) bool { return !unicode.IsLetter(r) })
	for _, word := range words {
		if _, ok := dateWords[word]; !ok {
			return true
		}
	}
	return false
}

// BuildTaskInput validates a create/update body and converts it to domain input.
// It returns a *Violation for the first broken rule.
func BuildTaskInput(req dto.TaskWriteRequest) (domain.TaskInput, error) {
	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
			return domain.TaskInput{}, err
		}
		return domain.TaskInput{}, violationFor(req, fieldErrs[0])
	}

	dueDate, err := ParseDueDate(*req.DueDate)
	if err != nil {
		return domain.TaskInput{}, &Violation{Number: apierrors.NotValid, Parameter: apierrors.ParamDueDate, Value: req.DueDate}
	}

	return domain.TaskInput{
		Name:        *req.TaskName,
		DueDate:     dueDate,
		IsCompleted: *req.IsCompleted,
	}, nil
}

func violationFor(req dto.TaskWriteRequest, fieldErr validator.FieldError) *Violation {
	number, ok := tagNumbers[fieldErr.Tag()]
	if !ok {
		number = apierrors.NotValid
	}

	violation := &Violation{Number: number, Parameter: fieldErr.Field()}
	switch fieldErr.StructField() {
	case "TaskName":
		violation.Value = req.TaskName
	case "DueDate":
		violation.Value = req.DueDate
	}
	return violation
}

// DecodeViolation converts a body decoding error. An empty body is not a
// violation: the caller validates it as a request with every field absent.
func DecodeViolation(err error) *Violation {
	if errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &Violation{Number: apierrors.NotValid, Parameter: typeErr.Field}
	}

	return &Violation{Number: apierrors.NotValid}
}

// ParseTaskID parses the {id} path segment. Integers that cannot name a task
// (zero, negative) map to id 0, which no task has, so they end as not found.
func ParseTaskID(raw string) (uint64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		value := raw
		return 0, &Violation{Number: apierrors.NotValid, Parameter: apierrors.ParamID, Value: &value}
	}
	if id < 0 {
		return 0, nil
	}
	return uint64(id), nil
}
