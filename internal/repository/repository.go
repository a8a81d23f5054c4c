package repository

import "gorm.io/gorm"

// Repository aggregates every entity repository.
type Repository struct {
	User       UserRepository
	Shift      ShiftRepository
	Attendance AttendanceRepository
	Alert      AlertRepository
	Report     ReportRepository
}

// NewRepository creates the repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:       NewUserRepo(db),
		Shift:      NewShiftRepo(db),
		Attendance: NewAttendanceRepo(db),
		Alert:      NewAlertRepo(db),
		Report:     NewReportRepo(db),
	}
}
