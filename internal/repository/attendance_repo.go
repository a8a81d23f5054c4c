package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sneha-510/smart-coalmine-system/internal/model"
	apperrors "github.com/sneha-510/smart-coalmine-system/pkg/errors"
)

// AttendanceRepository is the attendance ledger data access interface.
type AttendanceRepository interface {
	// CheckIn atomically verifies no open record exists for the
	// user/shift pair and inserts a new row with check_in set.
	CheckIn(ctx context.Context, userID, shiftID uint, now time.Time) (*model.Attendance, error)
	// CheckOut sets check_out on a record that has a check_in and no
	// check_out yet.
	CheckOut(ctx context.Context, id uint, now time.Time) (*model.Attendance, error)
	GetByID(ctx context.Context, id uint) (*model.Attendance, error)
	ListAll(ctx context.Context) ([]model.Attendance, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Attendance, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo creates an AttendanceRepository backed by GORM.
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) CheckIn(ctx context.Context, userID, shiftID uint, now time.Time) (*model.Attendance, error) {
	record := &model.Attendance{
		UserID:  userID,
		ShiftID: shiftID,
		CheckIn: &now,
	}

	// The row lock rejects a check-in while an open record exists.
	// When no record exists yet there is nothing to lock, and two
	// concurrent transactions would both insert; the partial unique
	// index uniq_attendance_open turns the loser into a constraint
	// violation, translated below.
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var open model.Attendance
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND shift_id = ? AND check_in IS NOT NULL AND check_out IS NULL", userID, shiftID).
			First(&open).Error
		if err == nil {
			return apperrors.ErrOpenAttendanceExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return translateOpenAttendance(tx.Create(record).Error)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// translateOpenAttendance maps the unique violation on the partial
// open-attendance index to the shared sentinel.
func translateOpenAttendance(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "uniq_attendance_open") {
		return apperrors.ErrOpenAttendanceExists
	}
	return err
}

func (r *attendanceRepo) CheckOut(ctx context.Context, id uint, now time.Time) (*model.Attendance, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Attendance{}).
		Where("id = ? AND check_in IS NOT NULL AND check_out IS NULL", id).
		Update("check_out", now)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *attendanceRepo) GetByID(ctx context.Context, id uint) (*model.Attendance, error) {
	var record model.Attendance
	err := r.db.WithContext(ctx).
		Preload("Shift").
		First(&record, id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *attendanceRepo) ListAll(ctx context.Context) ([]model.Attendance, error) {
	var records []model.Attendance
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Shift").
		Order("id DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *attendanceRepo) ListByUser(ctx context.Context, userID uint) ([]model.Attendance, error) {
	var records []model.Attendance
	err := r.db.WithContext(ctx).
		Preload("Shift").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
