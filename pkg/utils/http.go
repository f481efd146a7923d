package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

var (
	ErrEmptyParameter = errors.New("empty parameter")
	ErrInvalidID      = errors.New("invalid id")
)

func ParseIDParam(c *gin.Context, param string) (uint, error) {
	idStr := c.Param(param)
	idUint64, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || idUint64 == 0 {
		return 0, ErrInvalidID
	}
	return uint(idUint64), nil
}

func ParseQueryUintParam(c *gin.Context, param string) (uint, error) {
	valStr := c.Query(param)
	if valStr == "" {
		return 0, ErrEmptyParameter
	}
	valUint64, err := strconv.ParseUint(valStr, 10, 64)
	return uint(valUint64), err
}

// OptionalQueryUint returns nil when the parameter is absent.
func OptionalQueryUint(c *gin.Context, param string) (*uint, error) {
	v, err := ParseQueryUintParam(c, param)
	if errors.Is(err, ErrEmptyParameter) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ParsePagination reads page and limit; page defaults to 1, limit to 20 and is capped at 100.
func ParsePagination(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

func Offset(page, limit int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * limit
}
