package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sneha-510/smart-coalmine-system/internal/dto"
	"github.com/sneha-510/smart-coalmine-system/internal/service"
	"github.com/sneha-510/smart-coalmine-system/pkg/response"
)

// ReportHandler serves audit reports.
type ReportHandler struct {
	reportSvc service.ReportService
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// List returns all audit reports.
// GET /api/v1/reports
func (h *ReportHandler) List(c *gin.Context) {
	reports, err := h.reportSvc.ListAll(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"reports": reports})
}

// Create files a new audit report by the calling auditor.
// POST /api/v1/reports
func (h *ReportHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Shift and findings are required")
		return
	}

	report, err := h.reportSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, gin.H{"report": report})
}
