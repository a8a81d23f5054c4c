package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sneha-510/smart-coalmine-system/internal/dto"
	"github.com/sneha-510/smart-coalmine-system/internal/model"
	"github.com/sneha-510/smart-coalmine-system/internal/repository"
)

// ReportService covers the append-only auditor report log.
type ReportService interface {
	ListAll(ctx context.Context) ([]dto.ReportResponse, error)
	Create(ctx context.Context, auditorID uint, req *dto.CreateReportRequest) (*dto.ReportResponse, error)
}

type reportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReportService creates a ReportService instance.
func NewReportService(repo *repository.Repository, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, logger: logger}
}

func (s *reportService) ListAll(ctx context.Context) ([]dto.ReportResponse, error) {
	reports, err := s.repo.Report.ListAll(ctx)
	if err != nil {
		s.logger.Error("list reports failed", zap.Error(err))
		return nil, err
	}

	out := make([]dto.ReportResponse, 0, len(reports))
	for i := range reports {
		out = append(out, reportResponse(&reports[i]))
	}
	return out, nil
}

func (s *reportService) Create(ctx context.Context, auditorID uint, req *dto.CreateReportRequest) (*dto.ReportResponse, error) {
	report := &model.Report{
		AuditorID: auditorID,
		ShiftID:   req.ShiftID,
		Findings:  req.Findings,
		Timestamp: time.Now(),
	}
	if err := s.repo.Report.Create(ctx, report); err != nil {
		s.logger.Error("create report failed", zap.Error(err))
		return nil, err
	}

	resp := reportResponse(report)
	return &resp, nil
}
