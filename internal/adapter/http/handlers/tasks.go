package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"taskmanager/internal/adapter/http/dto"
	"taskmanager/internal/adapter/http/mapper"
	"taskmanager/internal/adapter/http/middleware"
	"taskmanager/internal/adapter/http/validation"
	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
	"taskmanager/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	req, input, ok := h.bindTaskInput(c)
	if !ok {
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		lang := middleware.GetLang(c)
		switch {
		case errors.Is(err, domain.ErrTaskAlreadyExists):
			c.JSON(http.StatusConflict, apierrors.CreateParamError(apierrors.AlreadyExists, lang, apierrors.ParamTaskName, req.TaskName))
		case errors.Is(err, domain.ErrTaskCapacityReached):
			c.JSON(http.StatusForbidden, apierrors.CreateError(apierrors.AtCapacity, lang))
		default:
			internalError(c, "failed to create task", err)
		}
		return
	}

	c.Header("Location", fmt.Sprintf("/tasks/%d", task.ID))
	c.JSON(http.StatusCreated, mapper.ToTaskResponse(task))
}

// UpdateTask replaces every field of the task. A missing task is reported
// against taskName, as existing clients expect.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	req, input, ok := h.bindTaskInput(c)
	if !ok {
		return
	}

	if err := h.taskService.UpdateTask(c.Request.Context(), id, input); err != nil {
		lang := middleware.GetLang(c)
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, apierrors.CreateParamError(apierrors.NotFound, lang, apierrors.ParamTaskName, req.TaskName))
		case errors.Is(err, domain.ErrTaskAlreadyExists):
			c.JSON(http.StatusConflict, apierrors.CreateParamError(apierrors.AlreadyExists, lang, apierrors.ParamTaskName, req.TaskName))
		default:
			internalError(c, "failed to update task", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			notFoundByID(c)
			return
		}
		internalError(c, "failed to delete task", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			notFoundByID(c)
			return
		}
		internalError(c, "failed to get task", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskResponse(task))
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	query, err := validation.BuildListTasksQuery(c.Query("orderByDate"), c.Query("taskStatus"))
	if err != nil {
		writeViolation(c, err)
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), query)
	if err != nil {
		internalError(c, "failed to list tasks", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskResponses(tasks))
}

// bindTaskInput decodes and validates the write payload, answering 400 itself
// when the payload is rejected.
func (h *TaskHandler) bindTaskInput(c *gin.Context) (dto.TaskWriteRequest, domain.TaskInput, bool) {
	var req dto.TaskWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if violation := validation.DecodeViolation(err); violation != nil {
			writeViolation(c, violation)
			return req, domain.TaskInput{}, false
		}
		req = dto.TaskWriteRequest{}
	}

	input, err := validation.BuildTaskInput(req)
	if err != nil {
		writeViolation(c, err)
		return req, domain.TaskInput{}, false
	}

	return req, input, true
}

func taskID(c *gin.Context) (uint64, bool) {
	id, err := validation.ParseTaskID(c.Param("id"))
	if err != nil {
		writeViolation(c, err)
		return 0, false
	}
	return id, true
}

// notFoundByID reports the id in canonical form, so "007" comes back as "7".
func notFoundByID(c *gin.Context) {
	id := c.Param("id")
	if n, err := strconv.ParseInt(id, 10, 64); err == nil {
		id = strconv.FormatInt(n, 10)
	}
	c.JSON(http.StatusNotFound, apierrors.CreateParamError(apierrors.NotFound, middleware.GetLang(c), apierrors.ParamID, &id))
}

// writeViolation answers 400 with the violation, or 500 for any other error.
func writeViolation(c *gin.Context, err error) {
	var violation *validation.Violation
	if !errors.As(err, &violation) {
		internalError(c, "failed to validate request", err)
		return
	}

	lang := middleware.GetLang(c)
	if violation.Parameter == "" {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(violation.Number, lang))
		return
	}
	c.JSON(http.StatusBadRequest, apierrors.CreateParamError(violation.Number, lang, violation.Parameter, violation.Value))
}

// internalError answers a bare 500; unexpected failures are not part of the numbered error contract.
func internalError(c *gin.Context, msg string, err error) {
	zap.L().Error(msg, zap.String("request_id", middleware.GetRequestID(c)), zap.Error(err))
	_ = c.Error(err)
	c.Status(http.StatusInternalServerError)
}
