package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/form-platform/internal/application"
	"github.com/linskybing/form-platform/internal/repository"
	"github.com/linskybing/form-platform/pkg/response"
	"github.com/linskybing/form-platform/pkg/utils"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

func optionalString(c *gin.Context, key string) *string {
	if v := c.Query(key); v != "" {
		return &v
	}
	return nil
}

func optionalTime(c *gin.Context, key string) (*time.Time, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetAuditLogs godoc
// @Summary Query the audit trail
// @Tags audit
// @Security BearerAuth
// @Produce json
// @Param user_id query int false "Actor user ID"
// @Param resource_type query string false "Resource type"
// @Param resource_id query string false "Resource ID"
// @Param action query string false "Action"
// @Param start_time query string false "RFC3339 lower bound"
// @Param end_time query string false "RFC3339 upper bound"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope{data=[]audit.AuditLog}
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	userID, err := utils.OptionalQueryUint(c, "user_id")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid user_id")
		return
	}
	start, err := optionalTime(c, "start_time")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid start_time, expected RFC3339")
		return
	}
	end, err := optionalTime(c, "end_time")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid end_time, expected RFC3339")
		return
	}
	page, limit := utils.ParsePagination(c)

	logs, total, err := h.svc.QueryAuditLogs(repository.AuditQueryParams{
		UserID:       userID,
		ResourceType: optionalString(c, "resource_type"),
		ResourceID:   optionalString(c, "resource_id"),
		Action:       optionalString(c, "action"),
		StartTime:    start,
		EndTime:      end,
		Limit:        limit,
		Offset:       utils.Offset(page, limit),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Paged(c, logs, total, page, limit)
}
