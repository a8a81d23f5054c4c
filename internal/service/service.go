package service

import (
	"go.uber.org/zap"

	"github.com/sneha-510/smart-coalmine-system/config"
	"github.com/sneha-510/smart-coalmine-system/internal/repository"
	"github.com/sneha-510/smart-coalmine-system/pkg/redis"
	"github.com/sneha-510/smart-coalmine-system/pkg/session"
)

// Service aggregates every business service.
type Service struct {
	Auth       AuthService
	User       UserService
	Shift      ShiftService
	Attendance AttendanceService
	Alert      AlertService
	Report     ReportService
	Chatbot    ChatbotService
	Export     ExportService
}

// NewService creates the service aggregate.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	sessions *session.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(cfg, repo, sessions, rdb, logger),
		User:       NewUserService(repo, logger),
		Shift:      NewShiftService(repo, logger),
		Attendance: NewAttendanceService(repo, logger),
		Alert:      NewAlertService(repo, logger),
		Report:     NewReportService(repo, logger),
		Chatbot:    NewChatbotService(repo, logger),
		Export:     NewExportService(repo, logger),
	}
}
