package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sneha-510/smart-coalmine-system/internal/dto"
	"github.com/sneha-510/smart-coalmine-system/internal/service"
	"github.com/sneha-510/smart-coalmine-system/pkg/response"
)

// ShiftHandler serves the shift registry.
type ShiftHandler struct {
	shiftSvc service.ShiftService
}

// NewShiftHandler creates a ShiftHandler.
func NewShiftHandler(shiftSvc service.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftSvc: shiftSvc}
}

// List returns all shifts with assignee names.
// GET /api/v1/shifts
func (h *ShiftHandler) List(c *gin.Context) {
	shifts, err := h.shiftSvc.ListAll(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"shifts": shifts})
}

// ListMine returns the calling worker's shifts.
// GET /api/v1/shifts/my
func (h *ShiftHandler) ListMine(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	shifts, err := h.shiftSvc.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"shifts": shifts})
}

// Create inserts a new shift.
// POST /api/v1/shifts
func (h *ShiftHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	shift, err := h.shiftSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		h.writeShiftError(c, err)
		return
	}

	response.Created(c, gin.H{"shift": shift})
}

// Update replaces a shift record.
// PUT /api/v1/shifts/:id
func (h *ShiftHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	shift, err := h.shiftSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.writeShiftError(c, err)
		return
	}

	response.OK(c, gin.H{"shift": shift})
}

// Delete hard-deletes a shift.
// DELETE /api/v1/shifts/:id
func (h *ShiftHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.shiftSvc.Delete(c.Request.Context(), id); err != nil {
		h.writeShiftError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *ShiftHandler) writeShiftError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShiftNotFound):
		response.NotFound(c, "Shift not found")
	case errors.Is(err, service.ErrInvalidShiftTime):
		response.BadRequest(c, "Invalid date or time format")
	case errors.Is(err, service.ErrAssigneeNotWorker):
		response.BadRequest(c, "Assignee must be a worker")
	default:
		response.InternalError(c)
	}
}
