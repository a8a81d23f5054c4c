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
	ErrShiftNotFound     = errors.New("shift not found")
	ErrInvalidShiftTime  = errors.New("invalid date or time format")
	ErrAssigneeNotWorker = errors.New("assignee must be a worker")
)

// ShiftService covers the admin-authored shift registry.
type ShiftService interface {
	ListAll(ctx context.Context) ([]dto.ShiftResponse, error)
	ListMine(ctx context.Context, userID uint) ([]dto.ShiftResponse, error)
	Create(ctx context.Context, req *dto.CreateShiftRequest, creatorID uint) (*dto.ShiftResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateShiftRequest) (*dto.ShiftResponse, error)
	Delete(ctx context.Context, id uint) error
}

type shiftService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewShiftService creates a ShiftService instance.
func NewShiftService(repo *repository.Repository, logger *zap.Logger) ShiftService {
	return &shiftService{repo: repo, logger: logger}
}

func (s *shiftService) ListAll(ctx context.Context) ([]dto.ShiftResponse, error) {
	shifts, err := s.repo.Shift.ListAll(ctx)
	if err != nil {
		s.logger.Error("list shifts failed", zap.Error(err))
		return nil, err
	}
	return shiftResponses(shifts), nil
}

func (s *shiftService) ListMine(ctx context.Context, userID uint) ([]dto.ShiftResponse, error) {
	shifts, err := s.repo.Shift.ListByAssignee(ctx, userID)
	if err != nil {
		s.logger.Error("list own shifts failed", zap.Error(err))
		return nil, err
	}
	return shiftResponses(shifts), nil
}

func (s *shiftService) Create(ctx context.Context, req *dto.CreateShiftRequest, creatorID uint) (*dto.ShiftResponse, error) {
	date, err := s.validateWindow(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if err := s.validateAssignee(ctx, req.AssignedTo); err != nil {
		return nil, err
	}

	shift := &model.Shift{
		Date:       date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		AssignedTo: req.AssignedTo,
		CreatedBy:  creatorID,
	}
	if err := s.repo.Shift.Create(ctx, shift); err != nil {
		s.logger.Error("create shift failed", zap.Error(err))
		return nil, err
	}

	// Reload for the assignee name.
	created, err := s.repo.Shift.GetByID(ctx, shift.ID)
	if err != nil {
		created = shift
	}
	resp := shiftResponse(created)
	return &resp, nil
}

func (s *shiftService) Update(ctx context.Context, id uint, req *dto.UpdateShiftRequest) (*dto.ShiftResponse, error) {
	date, err := s.validateWindow(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if err := s.validateAssignee(ctx, req.AssignedTo); err != nil {
		return nil, err
	}

	shift, err := s.repo.Shift.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("load shift failed", zap.Error(err))
		return nil, err
	}

	shift.Date = date
	shift.StartTime = req.StartTime
	shift.EndTime = req.EndTime
	shift.AssignedTo = req.AssignedTo
	shift.Assignee = nil // stale after reassignment

	if err := s.repo.Shift.Update(ctx, shift); err != nil {
		s.logger.Error("update shift failed", zap.Error(err))
		return nil, err
	}

	updated, err := s.repo.Shift.GetByID(ctx, shift.ID)
	if err != nil {
		updated = shift
	}
	resp := shiftResponse(updated)
	return &resp, nil
}

func (s *shiftService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Shift.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShiftNotFound
		}
		s.logger.Error("delete shift failed", zap.Error(err))
		return err
	}
	return nil
}

// validateWindow parses the date and checks both times are HH:MM.
// No overlap check is performed across shifts.
func (s *shiftService) validateWindow(dateStr, startTime, endTime string) (time.Time, error) {
	date, err := time.Parse(shiftDateLayout, dateStr)
	if err != nil {
		return time.Time{}, ErrInvalidShiftTime
	}
	if _, err := time.Parse(shiftTimeLayout, startTime); err != nil {
		return time.Time{}, ErrInvalidShiftTime
	}
	if _, err := time.Parse(shiftTimeLayout, endTime); err != nil {
		return time.Time{}, ErrInvalidShiftTime
	}
	return date, nil
}

func (s *shiftService) validateAssignee(ctx context.Context, userID uint) error {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssigneeNotWorker
		}
		s.logger.Error("load assignee failed", zap.Error(err))
		return err
	}
	if user.Role != permission.RoleWorker {
		return ErrAssigneeNotWorker
	}
	return nil
}

func shiftResponses(shifts []model.Shift) []dto.ShiftResponse {
	out := make([]dto.ShiftResponse, 0, len(shifts))
	for i := range shifts {
		out = append(out, shiftResponse(&shifts[i]))
	}
	return out
}
