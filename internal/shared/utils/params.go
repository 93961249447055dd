package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tjcichra/tira-backend/internal/shared/errors"
)

// ParseIDParam parses a numeric ID from a URL path parameter.
// entityName is used in error messages (e.g., "ticket", "user").
func ParseIDParam(c *gin.Context, paramName, entityName string) (int64, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}

	return id, nil
}

// ParseOptionalIntQuery parses an optional numeric query parameter,
// returning nil when it was not supplied.
func ParseOptionalIntQuery(c *gin.Context, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errors.NewValidationError("query parameter '" + name + "' must be a number")
	}

	return &v, nil
}

// ParseOptionalBoolQuery parses an optional boolean query parameter,
// returning nil when it was not supplied.
func ParseOptionalBoolQuery(c *gin.Context, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.NewValidationError("query parameter '" + name + "' must be a boolean")
	}

	return &v, nil
}
