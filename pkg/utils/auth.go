package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/form-platform/pkg/types"
)

const ContextKey = "request_context"

var ErrNoSession = errors.New("user claims not found in context")

var GetClaims = func(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, ErrNoSession
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}
	return claims, nil
}

// GetRequestContext returns the caller identity stored by the auth middleware.
var GetRequestContext = func(c *gin.Context) (types.RequestContext, error) {
	if v, ok := c.Get(ContextKey); ok {
		if rc, ok := v.(types.RequestContext); ok {
			return rc, nil
		}
	}
	claims, err := GetClaims(c)
	if err != nil {
		return types.RequestContext{}, err
	}
	return claims.RequestContext(), nil
}

var GetUserIDFromContext = func(c *gin.Context) (uint, error) {
	rc, err := GetRequestContext(c)
	if err != nil {
		return 0, err
	}
	return rc.UserID, nil
}
