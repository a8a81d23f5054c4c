package dto

// Attendance actions carried in the request body.
const (
	AttendanceActionCheckIn  = "check-in"
	AttendanceActionCheckOut = "check-out"
)

// CheckRequest POST /attendance, the worker acting on their own shift.
// ShiftID is required for check-in, AttendanceID for check-out.
type CheckRequest struct {
	Action       string `json:"action"        binding:"required"`
	ShiftID      uint   `json:"shift_id"`
	AttendanceID uint   `json:"attendance_id"`
}

// AdminCheckRequest POST /attendance/admin, an admin acting on behalf of
// a worker. UserID+ShiftID for check-in, AttendanceID for check-out.
type AdminCheckRequest struct {
	Action       string `json:"action"        binding:"required"`
	UserID       uint   `json:"user_id"`
	ShiftID      uint   `json:"shift_id"`
	AttendanceID uint   `json:"attendance_id"`
}
