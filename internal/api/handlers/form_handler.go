package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/form-platform/internal/application"
	"github.com/linskybing/form-platform/internal/domain/form"
	"github.com/linskybing/form-platform/internal/repository"
	"github.com/linskybing/form-platform/pkg/response"
	"github.com/linskybing/form-platform/pkg/utils"
)

type FormHandler struct {
	svc    *application.FormService
	report *application.ReportService
	audit  repository.AuditRepo
}

func NewFormHandler(svc *application.FormService, report *application.ReportService, audit repository.AuditRepo) *FormHandler {
	return &FormHandler{svc: svc, report: report, audit: audit}
}

// CreateForm godoc
// @Summary Create a form with its sections, fields and options
// @Tags forms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body form.CreateFormDTO true "Form definition"
// @Success 200 {object} response.Envelope{data=form.AccessDetail}
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /forms [post]
func (h *FormHandler) CreateForm(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	var input form.CreateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := h.svc.CreateForm(rc, input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.LogAuditWithConsole(c, utils.ActionCreate, "form", strconv.FormatUint(uint64(created.ID), 10), nil, created.Form, "form created", h.audit)
	response.OK(c, created)
}

// ListForms godoc
// @Summary List forms visible to the caller
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Param form_type query string false "Form type"
// @Param status query string false "Status"
// @Param search query string false "Title search"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope{data=[]form.AccessDetail}
// @Failure 500 {object} response.ErrorResponse
// @Router /forms [get]
func (h *FormHandler) ListForms(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	page, limit := utils.ParsePagination(c)
	forms, total, err := h.svc.ListForms(rc, form.ListQuery{
		FormType: c.Query("form_type"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Paged(c, forms, total, page, limit)
}

// GetForm godoc
// @Summary Get a form with its definition and the caller's access level
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {object} response.Envelope{data=form.AccessDetail}
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /forms/{id} [get]
func (h *FormHandler) GetForm(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "form")
	if !ok {
		return
	}
	detail, err := h.svc.GetForm(rc, id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, detail)
}

// UpdateForm godoc
// @Summary Update a form; a fields list is reconciled by id
// @Tags forms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Form ID"
// @Param input body form.UpdateFormDTO true "Changes"
// @Success 200 {object} response.Envelope{data=form.AccessDetail}
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /forms/{id} [put]
func (h *FormHandler) UpdateForm(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "form")
	if !ok {
		return
	}
	var input form.UpdateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := h.svc.UpdateForm(rc, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.LogAuditWithConsole(c, utils.ActionUpdate, "form", c.Param("id"), nil, updated.Form, "form updated", h.audit)
	response.OK(c, updated)
}

// DeleteForm godoc
// @Summary Delete a form and everything under it
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {object} response.Envelope{data=response.MessageResponse}
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /forms/{id} [delete]
func (h *FormHandler) DeleteForm(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "form")
	if !ok {
		return
	}
	deleted, err := h.svc.DeleteForm(rc, id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.LogAuditWithConsole(c, utils.ActionDelete, "form", c.Param("id"), deleted, nil, "form deleted", h.audit)
	response.OK(c, response.MessageResponse{Message: "Form deleted"})
}

// Overview godoc
// @Summary Answers grouped by field
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {object} response.Envelope{data=report.Overview}
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /forms/{id}/overview [get]
func (h *FormHandler) Overview(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "form")
	if !ok {
		return
	}
	out, err := h.report.Overview(rc, id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, out)
}

// IndividualResponses godoc
// @Summary One entry per response with its answers
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param id path int true "Form ID"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope{data=[]report.IndividualResponse}
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /forms/{id}/responses [get]
func (h *FormHandler) IndividualResponses(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "form")
	if !ok {
		return
	}
	page, limit := utils.ParsePagination(c)
	items, total, err := h.report.IndividualResponses(rc, id, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Paged(c, items, total, page, limit)
}
