package model

import "time"

// Attendance status values, derived from the two timestamps and never stored.
const (
	AttendanceStatusAbsent    = "Absent"
	AttendanceStatusOnShift   = "On Shift"
	AttendanceStatusCompleted = "Completed"
)

// Attendance records a worker's actual check-in/out against a shift,
// table attendance. CheckOut is only ever set after CheckIn exists.
type Attendance struct {
	ID       uint       `gorm:"primaryKey"     json:"id"`
	UserID   uint       `gorm:"not null;index" json:"user_id"`
	ShiftID  uint       `gorm:"not null;index" json:"shift_id"`
	CheckIn  *time.Time `json:"check_in"`
	CheckOut *time.Time `json:"check_out"`

	User  *User  `gorm:"foreignKey:UserID"  json:"user,omitempty"`
	Shift *Shift `gorm:"foreignKey:ShiftID" json:"shift,omitempty"`
}

// TableName sets the table name.
func (Attendance) TableName() string { return "attendance" }

// Status derives the attendance state from the timestamps.
func (a *Attendance) Status() string {
	switch {
	case a.CheckIn == nil:
		return AttendanceStatusAbsent
	case a.CheckOut == nil:
		return AttendanceStatusOnShift
	default:
		return AttendanceStatusCompleted
	}
}
