package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sneha-510/smart-coalmine-system/internal/model"
)

// ReportRepository is the report log data access interface.
// Reports are append-only; there is no update or delete.
type ReportRepository interface {
	Create(ctx context.Context, report *model.Report) error
	ListAll(ctx context.Context) ([]model.Report, error)
	ListByAuditor(ctx context.Context, auditorID uint) ([]model.Report, error)
}

type reportRepo struct {
	db *gorm.DB
}

// NewReportRepo creates a ReportRepository backed by GORM.
func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) Create(ctx context.Context, report *model.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepo) ListAll(ctx context.Context) ([]model.Report, error) {
	var reports []model.Report
	err := r.db.WithContext(ctx).
		Preload("Auditor").
		Order("timestamp DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepo) ListByAuditor(ctx context.Context, auditorID uint) ([]model.Report, error) {
	var reports []model.Report
	err := r.db.WithContext(ctx).
		Where("auditor_id = ?", auditorID).
		Order("timestamp DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}
