package dto

// ── alert module DTOs ──

// CreateAlertRequest POST /alerts
type CreateAlertRequest struct {
	ShiftID uint   `json:"shift_id" binding:"required"`
	Message string `json:"message"  binding:"required"`
}

// UpdateAlertStatusRequest PUT /alerts/:id
type UpdateAlertStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
