// Package response implements the API envelope:
// success responses are {"success": true, ...payload},
// failures are {"success": false, "error": "..."}.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response merging the payload into the envelope.
func OK(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusOK, envelope(payload))
}

// Created writes a 201 response merging the payload into the envelope.
func Created(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusCreated, envelope(payload))
}

func envelope(payload gin.H) gin.H {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return body
}

// Error writes a failure envelope with the given status code.
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{"success": false, "error": message})
}

// ── shortcuts ──

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden 403
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}
