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
	apperrors "github.com/sneha-510/smart-coalmine-system/pkg/errors"
)

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyCheckedIn   = errors.New("already checked in for this shift")
	ErrNotCheckedIn       = errors.New("no open check-in for this record")
	ErrNotRecordOwner     = errors.New("attendance record belongs to another worker")
	ErrInvalidAction      = errors.New("invalid action")
)

// AttendanceService covers the attendance ledger: worker self check-in/out
// and admin check-in/out on behalf of a worker.
type AttendanceService interface {
	List(ctx context.Context, callerID uint, callerRole string) ([]dto.AttendanceResponse, error)
	CheckIn(ctx context.Context, userID, shiftID uint) (*dto.AttendanceResponse, error)
	// CheckOut closes an open record. When actorID is non-zero the
	// record must belong to that worker.
	CheckOut(ctx context.Context, attendanceID, actorID uint) (*dto.AttendanceResponse, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAttendanceService creates an AttendanceService instance.
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger}
}

func (s *attendanceService) List(ctx context.Context, callerID uint, callerRole string) ([]dto.AttendanceResponse, error) {
	var (
		records []model.Attendance
		err     error
	)
	if permission.RoleHas(callerRole, permission.AttendanceReadAll) {
		records, err = s.repo.Attendance.ListAll(ctx)
	} else {
		records, err = s.repo.Attendance.ListByUser(ctx, callerID)
	}
	if err != nil {
		s.logger.Error("list attendance failed", zap.Error(err))
		return nil, err
	}

	out := make([]dto.AttendanceResponse, 0, len(records))
	for i := range records {
		out = append(out, attendanceResponse(&records[i]))
	}
	return out, nil
}

func (s *attendanceService) CheckIn(ctx context.Context, userID, shiftID uint) (*dto.AttendanceResponse, error) {
	// The shift must exist; a stale id is a 404, not a silent insert.
	if _, err := s.repo.Shift.GetByID(ctx, shiftID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("load shift for check-in failed", zap.Error(err))
		return nil, err
	}

	record, err := s.repo.Attendance.CheckIn(ctx, userID, shiftID, time.Now())
	if err != nil {
		if errors.Is(err, apperrors.ErrOpenAttendanceExists) {
			return nil, ErrAlreadyCheckedIn
		}
		s.logger.Error("check-in failed", zap.Error(err))
		return nil, err
	}

	resp := attendanceResponse(record)
	return &resp, nil
}

func (s *attendanceService) CheckOut(ctx context.Context, attendanceID, actorID uint) (*dto.AttendanceResponse, error) {
	record, err := s.repo.Attendance.GetByID(ctx, attendanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendanceNotFound
		}
		s.logger.Error("load attendance failed", zap.Error(err))
		return nil, err
	}

	if actorID != 0 && record.UserID != actorID {
		return nil, ErrNotRecordOwner
	}

	updated, err := s.repo.Attendance.CheckOut(ctx, attendanceID, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Row exists but has no open check-in.
			return nil, ErrNotCheckedIn
		}
		s.logger.Error("check-out failed", zap.Error(err))
		return nil, err
	}

	resp := attendanceResponse(updated)
	return &resp, nil
}
