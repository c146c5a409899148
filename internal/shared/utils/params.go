package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"fixtrack/internal/shared/errors"
)

// ParseIDParam parses a positive integer ID from a URL path parameter.
// entityName is used in error messages (e.g. "repair", "technician").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError(
			fmt.Sprintf("invalid %s ID %q", entityName, raw),
		)
	}

	return uint(id), nil
}

// ActorID extracts the authenticated user ID placed in the context by the
// auth middleware.
func ActorID(c *gin.Context) (uint, error) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, errors.NewUnauthorizedError("User not authenticated")
	}

	id, ok := value.(uint)
	if !ok || id == 0 {
		return 0, errors.NewInternalError("invalid user identity in context")
	}

	return id, nil
}
