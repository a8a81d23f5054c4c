package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sneha-510/smart-coalmine-system/internal/dto"
	"github.com/sneha-510/smart-coalmine-system/internal/service"
	"github.com/sneha-510/smart-coalmine-system/pkg/response"
)

// AttendanceHandler serves the attendance log.
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

// NewAttendanceHandler creates an AttendanceHandler.
func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

// List returns attendance records scoped to the caller's role.
// GET /api/v1/attendance
func (h *AttendanceHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	records, err := h.attendanceSvc.List(c.Request.Context(), userID, role)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"attendance": records})
}

// Check records a check-in or check-out for the calling worker.
// POST /api/v1/attendance
func (h *AttendanceHandler) Check(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Action is required")
		return
	}

	switch req.Action {
	case dto.AttendanceActionCheckIn:
		if req.ShiftID == 0 {
			response.BadRequest(c, "shift_id is required for check-in")
			return
		}
		record, err := h.attendanceSvc.CheckIn(c.Request.Context(), userID, req.ShiftID)
		if err != nil {
			h.writeAttendanceError(c, err)
			return
		}
		response.Created(c, gin.H{"attendance": record})
	case dto.AttendanceActionCheckOut:
		if req.AttendanceID == 0 {
			response.BadRequest(c, "attendance_id is required for check-out")
			return
		}
		record, err := h.attendanceSvc.CheckOut(c.Request.Context(), req.AttendanceID, userID)
		if err != nil {
			h.writeAttendanceError(c, err)
			return
		}
		response.OK(c, gin.H{"attendance": record})
	default:
		response.BadRequest(c, "Invalid action")
	}
}

// AdminCheck records a check-in or check-out on behalf of any worker.
// POST /api/v1/attendance/admin
func (h *AttendanceHandler) AdminCheck(c *gin.Context) {
	var req dto.AdminCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Action is required")
		return
	}

	switch req.Action {
	case dto.AttendanceActionCheckIn:
		if req.UserID == 0 || req.ShiftID == 0 {
			response.BadRequest(c, "user_id and shift_id are required for check-in")
			return
		}
		record, err := h.attendanceSvc.CheckIn(c.Request.Context(), req.UserID, req.ShiftID)
		if err != nil {
			h.writeAttendanceError(c, err)
			return
		}
		response.Created(c, gin.H{"attendance": record})
	case dto.AttendanceActionCheckOut:
		if req.AttendanceID == 0 {
			response.BadRequest(c, "attendance_id is required for check-out")
			return
		}
		// actorID 0 skips the ownership check.
		record, err := h.attendanceSvc.CheckOut(c.Request.Context(), req.AttendanceID, 0)
		if err != nil {
			h.writeAttendanceError(c, err)
			return
		}
		response.OK(c, gin.H{"attendance": record})
	default:
		response.BadRequest(c, "Invalid action")
	}
}

func (h *AttendanceHandler) writeAttendanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAlreadyCheckedIn):
		response.BadRequest(c, "Already checked in for this shift")
	case errors.Is(err, service.ErrNotCheckedIn):
		response.BadRequest(c, "Not checked in")
	case errors.Is(err, service.ErrNotRecordOwner):
		response.Forbidden(c, "Unauthorized")
	case errors.Is(err, service.ErrAttendanceNotFound):
		response.NotFound(c, "Attendance record not found")
	case errors.Is(err, service.ErrShiftNotFound):
		response.NotFound(c, "Shift not found")
	default:
		response.InternalError(c)
	}
}
