package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sneha-510/smart-coalmine-system/internal/dto"
	"github.com/sneha-510/smart-coalmine-system/internal/model"
	"github.com/sneha-510/smart-coalmine-system/internal/permission"
	"github.com/sneha-510/smart-coalmine-system/internal/repository"
)

var (
	ErrAlertNotFound      = errors.New("alert not found")
	ErrInvalidAlertStatus = errors.New("invalid status")
	ErrAlertNotOpen       = errors.New("only an open alert can change status")
)

// AlertService covers the safety alert lifecycle:
// created Open, resolved or escalated exactly once.
type AlertService interface {
	List(ctx context.Context, callerID uint, callerRole string) ([]dto.AlertResponse, error)
	Create(ctx context.Context, userID uint, req *dto.CreateAlertRequest) (*dto.AlertResponse, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*dto.AlertResponse, error)
}

type alertService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAlertService creates an AlertService instance.
func NewAlertService(repo *repository.Repository, logger *zap.Logger) AlertService {
	return &alertService{repo: repo, logger: logger}
}

func (s *alertService) List(ctx context.Context, callerID uint, callerRole string) ([]dto.AlertResponse, error) {
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
		s.logger.Error("list alerts failed", zap.Error(err))
		return nil, err
	}

	out := make([]dto.AlertResponse, 0, len(alerts))
	for i := range alerts {
		out = append(out, alertResponse(&alerts[i]))
	}
	return out, nil
}

func (s *alertService) Create(ctx context.Context, userID uint, req *dto.CreateAlertRequest) (*dto.AlertResponse, error) {
	alert := &model.Alert{
		UserID:    userID,
		ShiftID:   req.ShiftID,
		Message:   req.Message,
		Timestamp: time.Now(),
		Status:    model.AlertStatusOpen,
	}
	if err := s.repo.Alert.Create(ctx, alert); err != nil {
		s.logger.Error("create alert failed", zap.Error(err))
		return nil, err
	}

	resp := alertResponse(alert)
	return &resp, nil
}

func (s *alertService) UpdateStatus(ctx context.Context, id uint, status string) (*dto.AlertResponse, error) {
	// Open is the creation state, never a transition target.
	if !model.ValidAlertStatus(status) || status == model.AlertStatusOpen {
		return nil, ErrInvalidAlertStatus
	}

	affected, err := s.repo.Alert.UpdateStatusIfOpen(ctx, id, status)
	if err != nil {
		s.logger.Error("update alert status failed", zap.Error(err))
		return nil, err
	}
	if affected == 0 {
		// Distinguish a stale id from a terminal alert.
		if _, err := s.repo.Alert.GetByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrAlertNotFound
			}
			s.logger.Error("load alert failed", zap.Error(err))
			return nil, err
		}
		return nil, ErrAlertNotOpen
	}

	alert, err := s.repo.Alert.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("reload alert failed", zap.Error(err))
		return nil, err
	}
	resp := alertResponse(alert)
	return &resp, nil
}
