package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/form-platform/internal/application"
	"github.com/linskybing/form-platform/internal/domain/form"
	"github.com/linskybing/form-platform/internal/repository"
	"github.com/linskybing/form-platform/pkg/response"
	"github.com/linskybing/form-platform/pkg/utils"
)

type ResponseHandler struct {
	svc   *application.ResponseService
	audit repository.AuditRepo
}

func NewResponseHandler(svc *application.ResponseService, audit repository.AuditRepo) *ResponseHandler {
	return &ResponseHandler{svc: svc, audit: audit}
}

// CreateResponse godoc
// @Summary Start or submit a response to an active form
// @Tags responses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body form.CreateResponseDTO true "Response"
// @Success 200 {object} response.Envelope{data=form.FormResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /form-responses [post]
func (h *ResponseHandler) CreateResponse(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	var input form.CreateResponseDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	created, err := h.svc.CreateResponse(rc, input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.LogAuditWithConsole(c, utils.ActionCreate, "form_response", strconv.FormatUint(uint64(created.ID), 10), nil, created, "response created", h.audit)
	response.OK(c, created)
}

// ListResponses godoc
// @Summary List responses; non-reviewers only see their own
// @Tags responses
// @Security BearerAuth
// @Produce json
// @Param form_id query int false "Form ID"
// @Param respondent_id query int false "Respondent ID"
// @Param respondent_type query string false "Respondent type"
// @Param submission_status query string false "Submission status"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope{data=[]form.FormResponse}
// @Failure 400 {object} response.ErrorResponse
// @Router /form-responses [get]
func (h *ResponseHandler) ListResponses(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	formID, err := utils.OptionalQueryUint(c, "form_id")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid form_id")
		return
	}
	respondentID, err := utils.OptionalQueryUint(c, "respondent_id")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid respondent_id")
		return
	}
	page, limit := utils.ParsePagination(c)
	items, total, err := h.svc.ListResponses(rc, form.ResponseQuery{
		FormID:           formID,
		RespondentID:     respondentID,
		RespondentType:   c.Query("respondent_type"),
		SubmissionStatus: c.Query("submission_status"),
		Page:             page,
		Limit:            limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Paged(c, items, total, page, limit)
}

// GetResponse godoc
// @Summary Get a response with its answers
// @Tags responses
// @Security BearerAuth
// @Produce json
// @Param id path int true "Response ID"
// @Success 200 {object} response.Envelope{data=form.FormResponse}
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /form-responses/{id} [get]
func (h *ResponseHandler) GetResponse(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "response")
	if !ok {
		return
	}
	resp, err := h.svc.GetResponse(rc, id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, resp)
}

// UpdateResponse godoc
// @Summary Update answers, status or review notes of a response
// @Tags responses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Response ID"
// @Param input body form.UpdateResponseDTO true "Changes"
// @Success 200 {object} response.Envelope{data=form.FormResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /form-responses/{id} [put]
func (h *ResponseHandler) UpdateResponse(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "response")
	if !ok {
		return
	}
	var input form.UpdateResponseDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	updated, err := h.svc.UpdateResponse(rc, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.LogAuditWithConsole(c, utils.ActionUpdate, "form_response", c.Param("id"), nil, updated, "response updated", h.audit)
	response.OK(c, updated)
}

// DeleteResponse godoc
// @Summary Delete a response
// @Tags responses
// @Security BearerAuth
// @Produce json
// @Param id path int true "Response ID"
// @Success 200 {object} response.Envelope{data=response.MessageResponse}
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /form-responses/{id} [delete]
func (h *ResponseHandler) DeleteResponse(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "response")
	if !ok {
		return
	}
	deleted, err := h.svc.DeleteResponse(rc, id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.LogAuditWithConsole(c, utils.ActionDelete, "form_response", c.Param("id"), deleted, nil, "response deleted", h.audit)
	response.OK(c, response.MessageResponse{Message: "Response deleted"})
}
