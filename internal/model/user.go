package model

import "time"

// User account row, backed by the users table.
type User struct {
	ID           uint      `gorm:"primaryKey"                          json:"id"`
	FullName     string    `gorm:"type:varchar(100);not null"          json:"full_name"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"          json:"-"`
	Role         string    `gorm:"type:varchar(20);not null"           json:"role"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"  json:"created_at"`
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
