package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/sneha-510/smart-coalmine-system/internal/model"
	"github.com/sneha-510/smart-coalmine-system/internal/repository"
)

var (
	ErrExportNoRecords    = errors.New("nothing to export")
	ErrExportGenerateFail = errors.New("generate export file failed")
)

// ExportService produces the two export surfaces:
// the attendance sheet as Excel and a worker's shift calendar as iCalendar.
type ExportService interface {
	// ExportAttendance renders every attendance record into an .xlsx
	// workbook. Returns the file content and a suggested filename.
	ExportAttendance(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportShiftCalendar renders the worker's assigned shifts as an
	// iCalendar feed.
	ExportShiftCalendar(ctx context.Context, userID uint) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService instance.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportAttendance(ctx context.Context) (*bytes.Buffer, string, error) {
	records, err := s.repo.Attendance.ListAll(ctx)
	if err != nil {
		s.logger.Error("list attendance for export failed", zap.Error(err))
		return nil, "", err
	}
	if len(records) == 0 {
		return nil, "", ErrExportNoRecords
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Attendance"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 6)
	f.SetColWidth(sheetName, "B", "B", 24)
	f.SetColWidth(sheetName, "C", "E", 12)
	f.SetColWidth(sheetName, "F", "G", 20)
	f.SetColWidth(sheetName, "H", "H", 12)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"ID", "Worker", "Date", "Start", "End", "Check-In", "Check-Out", "Status"}
	for i, h := range headers {
		cellRef, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cellRef, h)
		f.SetCellStyle(sheetName, cellRef, cellRef, headerStyle)
	}

	const tsLayout = "2006-01-02 15:04:05"
	row := 2
	for i := range records {
		rec := &records[i]

		workerName := ""
		if rec.User != nil {
			workerName = rec.User.FullName
		}
		var date, start, end string
		if rec.Shift != nil {
			date = rec.Shift.Date.Format(shiftDateLayout)
			start = rec.Shift.StartTime
			end = rec.Shift.EndTime
		}
		checkIn := "-"
		if rec.CheckIn != nil {
			checkIn = rec.CheckIn.Format(tsLayout)
		}
		checkOut := "-"
		if rec.CheckOut != nil {
			checkOut = rec.CheckOut.Format(tsLayout)
		}

		values := []interface{}{rec.ID, workerName, date, start, end, checkIn, checkOut, rec.Status()}
		for col, v := range values {
			cellRef, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheetName, cellRef, v)
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write xlsx failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("attendance_%s.xlsx", time.Now().Format(shiftDateLayout))
	return buf, filename, nil
}

func (s *exportService) ExportShiftCalendar(ctx context.Context, userID uint) (*bytes.Buffer, string, error) {
	shifts, err := s.repo.Shift.ListByAssignee(ctx, userID)
	if err != nil {
		s.logger.Error("list shifts for calendar failed", zap.Error(err))
		return nil, "", err
	}
	if len(shifts) == 0 {
		return nil, "", ErrExportNoRecords
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//smart-coalmine-system//shift-calendar//EN")

	now := time.Now()
	for i := range shifts {
		sh := &shifts[i]

		event := cal.AddEvent(fmt.Sprintf("shift-%d@smart-coalmine-system", sh.ID))
		event.SetDtStampTime(now)
		event.SetStartAt(shiftInstant(sh, sh.StartTime))
		event.SetEndAt(shiftInstant(sh, sh.EndTime))
		event.SetSummary(fmt.Sprintf("Mine shift %s–%s", sh.StartTime, sh.EndTime))
		if sh.Assignee != nil {
			event.SetDescription(fmt.Sprintf("Assigned to %s", sh.Assignee.FullName))
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	return buf, "shifts.ics", nil
}

// shiftInstant combines a shift's date with an "HH:MM" wall-clock time.
// A malformed time collapses to midnight rather than failing the export.
func shiftInstant(sh *model.Shift, hhmm string) time.Time {
	t, err := time.Parse(shiftTimeLayout, hhmm)
	if err != nil {
		return sh.Date
	}
	return time.Date(
		sh.Date.Year(), sh.Date.Month(), sh.Date.Day(),
		t.Hour(), t.Minute(), 0, 0, time.Local,
	)
}
