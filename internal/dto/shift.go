package dto

// ── shift module DTOs ──

// CreateShiftRequest POST /shifts
type CreateShiftRequest struct {
	Date       string `json:"date"        binding:"required"` // 2006-01-02
	StartTime  string `json:"start_time"  binding:"required"` // 15:04
	EndTime    string `json:"end_time"    binding:"required"` // 15:04
	AssignedTo uint   `json:"assigned_to" binding:"required"`
}

// UpdateShiftRequest PUT /shifts/:id, a full-record update.
type UpdateShiftRequest struct {
	Date       string `json:"date"        binding:"required"`
	StartTime  string `json:"start_time"  binding:"required"`
	EndTime    string `json:"end_time"    binding:"required"`
	AssignedTo uint   `json:"assigned_to" binding:"required"`
}
