package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/form-platform/internal/application"
	"github.com/linskybing/form-platform/internal/domain/form"
	"github.com/linskybing/form-platform/internal/domain/task"
	"github.com/linskybing/form-platform/internal/repository"
	"github.com/linskybing/form-platform/pkg/response"
	"github.com/linskybing/form-platform/pkg/utils"
)

type TaskHandler struct {
	tasks       *application.TaskService
	assignments *application.AssignmentService
	audit       repository.AuditRepo
}

func NewTaskHandler(tasks *application.TaskService, assignments *application.AssignmentService, audit repository.AuditRepo) *TaskHandler {
	return &TaskHandler{tasks: tasks, assignments: assignments, audit: audit}
}

// CreateTask godoc
// @Summary Create a task with its requirements
// @Tags tasks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body task.CreateTaskDTO true "Task"
// @Success 200 {object} response.Envelope{data=task.TaskView}
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	var input task.CreateTaskDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	created, err := h.tasks.CreateTask(c.Request.Context(), rc, input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.LogAuditWithConsole(c, utils.ActionCreate, "task", strconv.FormatUint(uint64(created.ID), 10), nil, created, "task created", h.audit)
	response.OK(c, created)
}

// ListTasks godoc
// @Summary List tasks visible to the caller
// @Tags tasks
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status"
// @Param search query string false "Title search"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope{data=[]task.TaskView}
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	page, limit := utils.ParsePagination(c)
	items, total, err := h.tasks.ListTasks(rc, form.ListQuery{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Paged(c, items, total, page, limit)
}

// GetTask godoc
// @Summary Get a task
// @Tags tasks
// @Security BearerAuth
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} response.Envelope{data=task.TaskView}
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "task")
	if !ok {
		return
	}
	v, err := h.tasks.GetTask(rc, id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, v)
}

// UpdateTask godoc
// @Summary Update a task; requirements are diffed by id
// @Tags tasks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param input body task.UpdateTaskDTO true "Changes"
// @Success 200 {object} response.Envelope{data=task.TaskView}
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id} [patch]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "task")
	if !ok {
		return
	}
	var input task.UpdateTaskDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	v, err := h.tasks.UpdateTask(c.Request.Context(), rc, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.LogAuditWithConsole(c, utils.ActionUpdate, "task", c.Param("id"), nil, v, "task updated", h.audit)
	response.OK(c, v)
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Security BearerAuth
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} response.Envelope{data=response.MessageResponse}
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "task")
	if !ok {
		return
	}
	deleted, err := h.tasks.DeleteTask(rc, id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.LogAuditWithConsole(c, utils.ActionDelete, "task", c.Param("id"), deleted, nil, "task deleted", h.audit)
	response.OK(c, response.MessageResponse{Message: "Task deleted"})
}

// AssignUsers godoc
// @Summary Assign users to a task, optionally emailing the new assignees
// @Tags tasks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param input body task.AssignDTO true "Users"
// @Success 200 {object} response.Envelope{data=task.AssignResult}
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id}/assign [post]
func (h *TaskHandler) AssignUsers(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "task")
	if !ok {
		return
	}
	var input task.AssignDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	res, err := h.assignments.AssignUsers(c.Request.Context(), rc, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.LogAuditWithConsole(c, utils.ActionAssign, "task", c.Param("id"), nil, res, "users assigned", h.audit)
	response.OK(c, res)
}

// UnassignUsers godoc
// @Summary Remove users from a task
// @Tags tasks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param input body task.UnassignDTO true "Users"
// @Success 200 {object} response.Envelope{data=task.UnassignResult}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id}/assign [delete]
func (h *TaskHandler) UnassignUsers(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "task")
	if !ok {
		return
	}
	var input task.UnassignDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	res, err := h.assignments.UnassignUsers(rc, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.LogAuditWithConsole(c, utils.ActionUnassign, "task", c.Param("id"), input, res, "users unassigned", h.audit)
	response.OK(c, res)
}

// ListAssignments godoc
// @Summary List a task's assignees with their response status
// @Tags tasks
// @Security BearerAuth
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} response.Envelope{data=[]task.Assignment}
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id}/assignments [get]
func (h *TaskHandler) ListAssignments(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "task")
	if !ok {
		return
	}
	items, err := h.assignments.ListAssignments(rc, id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, items)
}

// NotifyAssigned godoc
// @Summary Email the task's assignees
// @Tags tasks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param input body task.NotifyDTO false "Recipients and message"
// @Success 200 {object} response.Envelope{data=task.NotifyResult}
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id}/notify [post]
func (h *TaskHandler) NotifyAssigned(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "task")
	if !ok {
		return
	}
	var input task.NotifyDTO
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			respondBindError(c, err)
			return
		}
	}
	res, err := h.assignments.NotifyAssigned(c.Request.Context(), rc, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.LogAuditWithConsole(c, utils.ActionNotify, "task", c.Param("id"), nil, res, "assignees notified", h.audit)
	response.OK(c, res)
}
