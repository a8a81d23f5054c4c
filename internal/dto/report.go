package dto

// ── report module DTOs ──

// CreateReportRequest POST /reports
type CreateReportRequest struct {
	ShiftID  uint   `json:"shift_id" binding:"required"`
	Findings string `json:"findings" binding:"required"`
}
