package dto

import "time"

// ── auth/user responses ──

// UserResponse is the public view of a user row.
type UserResponse struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// TokenResponse is returned on login and refresh.
type TokenResponse struct {
	SessionToken string       `json:"session_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // seconds
	User         UserResponse `json:"user"`
}

// ── shift responses ──

// ShiftResponse is a shift together with its assignee's name.
type ShiftResponse struct {
	ID         uint   `json:"id"`
	Date       string `json:"date"` // 2006-01-02
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	AssignedTo uint   `json:"assigned_to"`
	FullName   string `json:"full_name,omitempty"`
	CreatedBy  uint   `json:"created_by"`
}

// ── attendance responses ──

// AttendanceResponse is an attendance row with derived status and the
// joined shift window / worker name where the caller may see them.
type AttendanceResponse struct {
	ID        uint       `json:"id"`
	UserID    uint       `json:"user_id"`
	ShiftID   uint       `json:"shift_id"`
	CheckIn   *time.Time `json:"check_in"`
	CheckOut  *time.Time `json:"check_out"`
	Status    string     `json:"status"`
	FullName  string     `json:"full_name,omitempty"`
	Date      string     `json:"date,omitempty"`
	StartTime string     `json:"start_time,omitempty"`
	EndTime   string     `json:"end_time,omitempty"`
}

// ── alert responses ──

// AlertResponse is an alert row with the raising worker's name when
// listed by admin/auditor.
type AlertResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	ShiftID   uint      `json:"shift_id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	FullName  string    `json:"full_name,omitempty"`
}

// ── report responses ──

// ReportResponse is a report row with the authoring auditor's name.
type ReportResponse struct {
	ID        uint      `json:"id"`
	AuditorID uint      `json:"auditor_id"`
	ShiftID   uint      `json:"shift_id"`
	Findings  string    `json:"findings"`
	Timestamp time.Time `json:"timestamp"`
	FullName  string    `json:"full_name,omitempty"`
}
