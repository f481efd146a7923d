package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/form-platform/internal/application"
	"github.com/linskybing/form-platform/pkg/response"
	"github.com/linskybing/form-platform/pkg/types"
	"github.com/linskybing/form-platform/pkg/utils"
	"github.com/linskybing/form-platform/pkg/validation"
)

func statusFor(kind application.Kind) int {
	switch kind {
	case application.KindValidation:
		return http.StatusBadRequest
	case application.KindNotFound:
		return http.StatusNotFound
	case application.KindForbidden:
		return http.StatusForbidden
	case application.KindUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	response.Fail(c, statusFor(application.KindOf(err)), application.PublicMessage(err))
}

func respondBindError(c *gin.Context, err error) {
	response.Fail(c, http.StatusBadRequest, validation.Message(err))
}

// requestContext returns the caller or writes a 401 and reports false.
func requestContext(c *gin.Context) (types.RequestContext, bool) {
	rc, err := utils.GetRequestContext(c)
	if err != nil {
		respondError(c, application.ErrUnauthenticated)
		return types.RequestContext{}, false
	}
	return rc, true
}

func idParam(c *gin.Context, what string) (uint, bool) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid "+what+" id")
		return 0, false
	}
	return id, true
}
