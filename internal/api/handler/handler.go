package handler

import (
	"github.com/sneha-510/smart-coalmine-system/config"
	"github.com/sneha-510/smart-coalmine-system/internal/service"
)

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	Shift      *ShiftHandler
	Attendance *AttendanceHandler
	Alert      *AlertHandler
	Report     *ReportHandler
	Chatbot    *ChatbotHandler
	Export     *ExportHandler
}

// NewHandler creates the handler aggregate.
func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(cfg, svc.Auth),
		User:       NewUserHandler(svc.User),
		Shift:      NewShiftHandler(svc.Shift),
		Attendance: NewAttendanceHandler(svc.Attendance),
		Alert:      NewAlertHandler(svc.Alert),
		Report:     NewReportHandler(svc.Report),
		Chatbot:    NewChatbotHandler(svc.Chatbot),
		Export:     NewExportHandler(svc.Export),
	}
}
