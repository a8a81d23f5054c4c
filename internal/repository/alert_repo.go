package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sneha-510/smart-coalmine-system/internal/model"
)

// AlertRepository is the alert log data access interface.
type AlertRepository interface {
	Create(ctx context.Context, alert *model.Alert) error
	GetByID(ctx context.Context, id uint) (*model.Alert, error)
	// UpdateStatusIfOpen transitions the alert only when its current
	// status is Open; returns the number of rows changed.
	UpdateStatusIfOpen(ctx context.Context, id uint, status string) (int64, error)
	ListAll(ctx context.Context) ([]model.Alert, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Alert, error)
}

type alertRepo struct {
	db *gorm.DB
}

// NewAlertRepo creates an AlertRepository backed by GORM.
func NewAlertRepo(db *gorm.DB) AlertRepository {
	return &alertRepo{db: db}
}

func (r *alertRepo) Create(ctx context.Context, alert *model.Alert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *alertRepo) GetByID(ctx context.Context, id uint) (*model.Alert, error) {
	var alert model.Alert
	err := r.db.WithContext(ctx).First(&alert, id).Error
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

func (r *alertRepo) UpdateStatusIfOpen(ctx context.Context, id uint, status string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Alert{}).
		Where("id = ? AND status = ?", id, model.AlertStatusOpen).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *alertRepo) ListAll(ctx context.Context) ([]model.Alert, error) {
	var alerts []model.Alert
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("timestamp DESC").
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *alertRepo) ListByUser(ctx context.Context, userID uint) ([]model.Alert, error) {
	var alerts []model.Alert
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}
