package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sneha-510/smart-coalmine-system/internal/api/middleware"
	"github.com/sneha-510/smart-coalmine-system/pkg/response"
)

// MustGetUserID extracts the authenticated user id from the context.
// Writes a 401 and returns false when the auth middleware did not run.
// Callers should return immediately on ok=false.
func MustGetUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(middleware.CtxUserID)
	if !exists {
		response.Unauthorized(c, "Not authenticated")
		return 0, false
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		response.Unauthorized(c, "Not authenticated")
		return 0, false
	}
	return id, true
}

// MustGetRole extracts the authenticated role from the context.
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.CtxRole)
	if !exists {
		response.Unauthorized(c, "Not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, "Not authenticated")
		return "", false
	}
	return s, true
}

// ParseIDParam parses the :id path parameter.
func ParseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
