package model

import "time"

// Shift is a scheduled work interval assigned to one worker, backed by the shifts table.
// StartTime/EndTime are wall-clock "HH:MM" strings; Date carries the day.
type Shift struct {
	ID         uint      `gorm:"primaryKey"                         json:"id"`
	Date       time.Time `gorm:"type:date;not null"                 json:"date"`
	StartTime  string    `gorm:"type:varchar(5);not null"           json:"start_time"`
	EndTime    string    `gorm:"type:varchar(5);not null"           json:"end_time"`
	AssignedTo uint      `gorm:"not null;index"                     json:"assigned_to"`
	CreatedBy  uint      `gorm:"not null"                           json:"created_by"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Assignee *User `gorm:"foreignKey:AssignedTo" json:"assignee,omitempty"`
}

// TableName sets the table name.
func (Shift) TableName() string { return "shifts" }
