package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/sneha-510/smart-coalmine-system/internal/dto"
	"github.com/sneha-510/smart-coalmine-system/internal/model"
	"github.com/sneha-510/smart-coalmine-system/internal/permission"
	"github.com/sneha-510/smart-coalmine-system/internal/repository"
)

// ChatbotService answers free-text questions with canned templates
// computed from the caller's alert and report collections. Stateless
// keyword matching in English and Hindi; no inference of any kind.
type ChatbotService interface {
	Reply(ctx context.Context, callerID uint, callerRole string, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatbotService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewChatbotService creates a ChatbotService instance.
func NewChatbotService(repo *repository.Repository, logger *zap.Logger) ChatbotService {
	return &chatbotService{repo: repo, logger: logger}
}

var genericReplies = []string{
	"I'm here to help with safety concerns and provide recommendations based on historical data. Could you ask me about safety, alerts, or reports?",
	"I can analyze safety data and provide recommendations. Try asking about current safety status, alerts, or reports.",
	"I'm your safety assistant. I can help with information about safety protocols, current alerts, and historical reports.",
	"I'm designed to help improve mine safety. Ask me about safety recommendations, current alerts, or safety reports.",
}

func (s *chatbotService) Reply(ctx context.Context, callerID uint, callerRole string, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	alerts, reports, err := s.collections(ctx, callerID, callerRole)
	if err != nil {
		return nil, err
	}

	input := strings.ToLower(req.Message)

	var reply string
	switch {
	case containsAny(input, "safety", "सुरक्षा"):
		reply = safetyReply(alerts)
	case containsAny(input, "alert", "अलर्ट"):
		reply = alertReply(alerts)
	case containsAny(input, "report", "रिपोर्ट"):
		reply = reportReply(reports)
	default:
		reply = genericReplies[utf8.RuneCountInString(req.Message)%len(genericReplies)]
	}

	return &dto.ChatResponse{Reply: reply}, nil
}

// collections loads the alert/report sets the caller is allowed to see.
// Workers see their own alerts and no reports.
func (s *chatbotService) collections(ctx context.Context, callerID uint, callerRole string) ([]model.Alert, []model.Report, error) {
	var (
		alerts []model.Alert
		err    error
	)
	if permission.RoleHas(callerRole, permission.AlertReadAll) {
		alerts, err = s.repo.Alert.ListAll(ctx)
	} else {
		alerts, err = s.repo.Alert.ListByUser(ctx, callerID)
	}
	if err != nil {
		s.logger.Error("load alerts for chatbot failed", zap.Error(err))
		return nil, nil, err
	}

	var reports []model.Report
	if permission.RoleHas(callerRole, permission.ReportRead) {
		reports, err = s.repo.Report.ListAll(ctx)
		if err != nil {
			s.logger.Error("load reports for chatbot failed", zap.Error(err))
			return nil, nil, err
		}
	}

	return alerts, reports, nil
}

func safetyReply(alerts []model.Alert) string {
	var open []model.Alert
	for _, a := range alerts {
		if a.Status == model.AlertStatusOpen {
			open = append(open, a)
		}
	}

	if len(open) == 0 {
		return "Based on our records, there are no open safety concerns at the moment. However, always remember to follow standard safety protocols:\n\n" +
			"1. Always wear proper safety equipment\n" +
			"2. Check equipment before use\n" +
			"3. Report any concerns immediately\n" +
			"4. Follow evacuation procedures during emergencies"
	}

	lines := make([]string, 0, len(open))
	for i, a := range open {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, recommendation(a.Message)))
	}
	return fmt.Sprintf(
		"I've analyzed the current safety situation and found %d open safety concerns. Here are some recommendations:\n\n%s",
		len(open), strings.Join(lines, "\n\n"))
}

func alertReply(alerts []model.Alert) string {
	if len(alerts) == 0 {
		return "There are no alerts in the system currently. This is good news for safety!"
	}

	var open, resolved, escalated int
	for _, a := range alerts {
		switch a.Status {
		case model.AlertStatusOpen:
			open++
		case model.AlertStatusResolved:
			resolved++
		case model.AlertStatusEscalated:
			escalated++
		}
	}

	return fmt.Sprintf(
		"Alert Status Summary:\n\n- Open Alerts: %d\n- Resolved Alerts: %d\n- Escalated Alerts: %d\n\nMost recent alert: %q",
		open, resolved, escalated, alerts[0].Message)
}

func reportReply(reports []model.Report) string {
	if len(reports) == 0 {
		return "There are no safety reports in the system currently."
	}
	return fmt.Sprintf(
		"There are %d safety reports in the system. The most recent report findings: %q",
		len(reports), reports[0].Findings)
}

// recommendation maps an alert message to standard guidance for its
// hazard class, again by keyword.
func recommendation(message string) string {
	msg := strings.ToLower(message)
	switch {
	case containsAny(msg, "gas", "गैस"):
		return "Ensure proper ventilation and gas monitoring equipment is functioning. All workers should carry personal gas detectors and know evacuation routes."
	case containsAny(msg, "roof", "ceiling", "छत"):
		return "Inspect roof support systems regularly. Use proper scaling techniques and never work under unsupported roof areas."
	case containsAny(msg, "water", "flood", "पानी"):
		return "Monitor water levels and ensure pumping systems are operational. Keep emergency evacuation routes clear and practice water emergency drills."
	case containsAny(msg, "equipment", "machine", "उपकरण"):
		return "Implement regular equipment maintenance checks. Ensure all operators are properly trained and follow lockout/tagout procedures."
	default:
		return "Follow standard safety protocols and report any changes in conditions immediately. Regular safety training and awareness are key to preventing incidents."
	}
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
