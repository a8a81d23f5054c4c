package model

import "time"

// Report is an auditor-submitted findings document tied to a shift,
// table reports. Append-only: there is no edit or delete path.
type Report struct {
	ID        uint      `gorm:"primaryKey"                         json:"id"`
	AuditorID uint      `gorm:"not null;index"                     json:"auditor_id"`
	ShiftID   uint      `gorm:"not null"                           json:"shift_id"`
	Findings  string    `gorm:"type:text;not null"                 json:"findings"`
	Timestamp time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"timestamp"`

	Auditor *User `gorm:"foreignKey:AuditorID" json:"auditor,omitempty"`
}

// TableName sets the table name.
func (Report) TableName() string { return "reports" }
