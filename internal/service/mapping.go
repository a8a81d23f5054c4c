package service

import (
	"github.com/sneha-510/smart-coalmine-system/internal/dto"
	"github.com/sneha-510/smart-coalmine-system/internal/model"
)

// shiftDateLayout is the wire format for shift dates.
const shiftDateLayout = "2006-01-02"

// shiftTimeLayout is the wire format for shift start/end times.
const shiftTimeLayout = "15:04"

func userResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	}
}

func shiftResponse(s *model.Shift) dto.ShiftResponse {
	resp := dto.ShiftResponse{
		ID:         s.ID,
		Date:       s.Date.Format(shiftDateLayout),
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		AssignedTo: s.AssignedTo,
		CreatedBy:  s.CreatedBy,
	}
	if s.Assignee != nil {
		resp.FullName = s.Assignee.FullName
	}
	return resp
}

func attendanceResponse(a *model.Attendance) dto.AttendanceResponse {
	resp := dto.AttendanceResponse{
		ID:       a.ID,
		UserID:   a.UserID,
		ShiftID:  a.ShiftID,
		CheckIn:  a.CheckIn,
		CheckOut: a.CheckOut,
		Status:   a.Status(),
	}
	if a.User != nil {
		resp.FullName = a.User.FullName
	}
	if a.Shift != nil {
		resp.Date = a.Shift.Date.Format(shiftDateLayout)
		resp.StartTime = a.Shift.StartTime
		resp.EndTime = a.Shift.EndTime
	}
	return resp
}

func alertResponse(a *model.Alert) dto.AlertResponse {
	resp := dto.AlertResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		ShiftID:   a.ShiftID,
		Message:   a.Message,
		Timestamp: a.Timestamp,
		Status:    a.Status,
	}
	if a.User != nil {
		resp.FullName = a.User.FullName
	}
	return resp
}

func reportResponse(r *model.Report) dto.ReportResponse {
	resp := dto.ReportResponse{
		ID:        r.ID,
		AuditorID: r.AuditorID,
		ShiftID:   r.ShiftID,
		Findings:  r.Findings,
		Timestamp: r.Timestamp,
	}
	if r.Auditor != nil {
		resp.FullName = r.Auditor.FullName
	}
	return resp
}
