package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sneha-510/smart-coalmine-system/internal/dto"
	"github.com/sneha-510/smart-coalmine-system/internal/service"
	"github.com/sneha-510/smart-coalmine-system/pkg/response"
)

// AlertHandler serves safety alerts.
type AlertHandler struct {
	alertSvc service.AlertService
}

// NewAlertHandler creates an AlertHandler.
func NewAlertHandler(alertSvc service.AlertService) *AlertHandler {
	return &AlertHandler{alertSvc: alertSvc}
}

// List returns alerts scoped to the caller's role.
// GET /api/v1/alerts
func (h *AlertHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	alerts, err := h.alertSvc.List(c.Request.Context(), userID, role)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"alerts": alerts})
}

// Create raises a new alert from the calling worker.
// POST /api/v1/alerts
func (h *AlertHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Shift and message are required")
		return
	}

	alert, err := h.alertSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, gin.H{"alert": alert})
}

// UpdateStatus resolves or escalates an open alert.
// PUT /api/v1/alerts/:id
func (h *AlertHandler) UpdateStatus(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateAlertStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Status is required")
		return
	}

	alert, err := h.alertSvc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlertNotFound):
			response.NotFound(c, "Alert not found")
		case errors.Is(err, service.ErrInvalidAlertStatus):
			response.BadRequest(c, "Invalid status")
		case errors.Is(err, service.ErrAlertNotOpen):
			response.BadRequest(c, "Alert is no longer open")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, gin.H{"alert": alert})
}
