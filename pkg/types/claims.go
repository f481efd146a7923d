package types

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	RoleID   *uint  `json:"role_id,omitempty"`
	jwt.RegisteredClaims
}

// RequestContext is the caller identity resolved once per request by the auth middleware.
type RequestContext struct {
	UserID   uint
	Username string
	Role     string
	RoleID   *uint
}

func (rc RequestContext) HasRole(roles ...string) bool {
	return slices.Contains(roles, rc.Role)
}

func (c *Claims) RequestContext() RequestContext {
	return RequestContext{
		UserID:   c.UserID,
		Username: c.Username,
		Role:     c.Role,
		RoleID:   c.RoleID,
	}
}
