package model

import "time"

// Alert status values. An alert is created Open and may transition to
// Resolved or Escalated exactly once; both are terminal.
const (
	AlertStatusOpen      = "Open"
	AlertStatusResolved  = "Resolved"
	AlertStatusEscalated = "Escalated"
)

// Alert is a worker-submitted safety concern, backed by the alerts table.
type Alert struct {
	ID        uint      `gorm:"primaryKey"                                json:"id"`
	UserID    uint      `gorm:"not null;index"                            json:"user_id"`
	ShiftID   uint      `gorm:"not null"                                  json:"shift_id"`
	Message   string    `gorm:"type:text;not null"                        json:"message"`
	Timestamp time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"        json:"timestamp"`
	Status    string    `gorm:"type:varchar(20);not null;default:'Open'"  json:"status"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName sets the table name.
func (Alert) TableName() string { return "alerts" }

// ValidAlertStatus reports whether s is one of the three alert states.
func ValidAlertStatus(s string) bool {
	return s == AlertStatusOpen || s == AlertStatusResolved || s == AlertStatusEscalated
}
