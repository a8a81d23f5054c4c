package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/sneha-510/smart-coalmine-system/internal/model"
	"github.com/sneha-510/smart-coalmine-system/internal/repository"
	apperrors "github.com/sneha-510/smart-coalmine-system/pkg/errors"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return apperrors.ErrDuplicateEmail
		}
	}
	if user.ID == 0 {
		user.ID = m.nextID
		m.nextID++
	}
	if user.ID >= m.nextID {
		m.nextID = user.ID + 1
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.ID != user.ID && u.Email == user.Email {
			return apperrors.ErrDuplicateEmail
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) ListNonAdmin(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if u.Role != "admin" {
			result = append(result, *u)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockUserRepo) ListByRole(_ context.Context, role string) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if u.Role == role {
			result = append(result, *u)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ── Mock ShiftRepository ──

type mockShiftRepo struct {
	shifts map[uint]*model.Shift
	users  *mockUserRepo
	nextID uint
}

func newMockShiftRepo(users *mockUserRepo) *mockShiftRepo {
	return &mockShiftRepo{shifts: make(map[uint]*model.Shift), users: users, nextID: 1}
}

func (m *mockShiftRepo) Create(_ context.Context, shift *model.Shift) error {
	if shift.ID == 0 {
		shift.ID = m.nextID
		m.nextID++
	}
	m.shifts[shift.ID] = shift
	return nil
}

func (m *mockShiftRepo) GetByID(_ context.Context, id uint) (*model.Shift, error) {
	s, ok := m.shifts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m.withAssignee(s), nil
}

func (m *mockShiftRepo) Update(_ context.Context, shift *model.Shift) error {
	if _, ok := m.shifts[shift.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.shifts[shift.ID] = shift
	return nil
}

func (m *mockShiftRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.shifts[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.shifts, id)
	return nil
}

func (m *mockShiftRepo) ListAll(_ context.Context) ([]model.Shift, error) {
	var result []model.Shift
	for _, s := range m.shifts {
		result = append(result, *m.withAssignee(s))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockShiftRepo) ListByAssignee(_ context.Context, userID uint) ([]model.Shift, error) {
	var result []model.Shift
	for _, s := range m.shifts {
		if s.AssignedTo == userID {
			result = append(result, *m.withAssignee(s))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// withAssignee resolves the Assignee join the way the real repo preloads it.
func (m *mockShiftRepo) withAssignee(s *model.Shift) *model.Shift {
	out := *s
	if m.users != nil {
		if u, ok := m.users.users[s.AssignedTo]; ok {
			copied := *u
			out.Assignee = &copied
		}
	}
	return &out
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	records map[uint]*model.Attendance
	users   *mockUserRepo
	shifts  *mockShiftRepo
	nextID  uint
}

func newMockAttendanceRepo(users *mockUserRepo, shifts *mockShiftRepo) *mockAttendanceRepo {
	return &mockAttendanceRepo{
		records: make(map[uint]*model.Attendance),
		users:   users,
		shifts:  shifts,
		nextID:  1,
	}
}

func (m *mockAttendanceRepo) CheckIn(_ context.Context, userID, shiftID uint, now time.Time) (*model.Attendance, error) {
	for _, r := range m.records {
		if r.UserID == userID && r.ShiftID == shiftID && r.CheckOut == nil {
			return nil, apperrors.ErrOpenAttendanceExists
		}
	}
	checkIn := now
	rec := &model.Attendance{
		ID:      m.nextID,
		UserID:  userID,
		ShiftID: shiftID,
		CheckIn: &checkIn,
	}
	m.nextID++
	m.records[rec.ID] = rec
	return m.withJoins(rec), nil
}

func (m *mockAttendanceRepo) CheckOut(_ context.Context, id uint, now time.Time) (*model.Attendance, error) {
	rec, ok := m.records[id]
	if !ok || rec.CheckIn == nil || rec.CheckOut != nil {
		return nil, gorm.ErrRecordNotFound
	}
	checkOut := now
	rec.CheckOut = &checkOut
	return m.withJoins(rec), nil
}

func (m *mockAttendanceRepo) GetByID(_ context.Context, id uint) (*model.Attendance, error) {
	if r, ok := m.records[id]; ok {
		return m.withJoins(r), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) ListAll(_ context.Context) ([]model.Attendance, error) {
	var result []model.Attendance
	for _, r := range m.records {
		result = append(result, *m.withJoins(r))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockAttendanceRepo) ListByUser(_ context.Context, userID uint) ([]model.Attendance, error) {
	var result []model.Attendance
	for _, r := range m.records {
		if r.UserID == userID {
			result = append(result, *m.withJoins(r))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockAttendanceRepo) withJoins(r *model.Attendance) *model.Attendance {
	out := *r
	if m.users != nil {
		if u, ok := m.users.users[r.UserID]; ok {
			copied := *u
			out.User = &copied
		}
	}
	if m.shifts != nil {
		if s, ok := m.shifts.shifts[r.ShiftID]; ok {
			copied := *s
			out.Shift = &copied
		}
	}
	return &out
}

// ── Mock AlertRepository ──

type mockAlertRepo struct {
	alerts []*model.Alert
	nextID uint
}

func newMockAlertRepo() *mockAlertRepo {
	return &mockAlertRepo{nextID: 1}
}

func (m *mockAlertRepo) Create(_ context.Context, alert *model.Alert) error {
	if alert.ID == 0 {
		alert.ID = m.nextID
		m.nextID++
	}
	m.alerts = append(m.alerts, alert)
	return nil
}

func (m *mockAlertRepo) GetByID(_ context.Context, id uint) (*model.Alert, error) {
	for _, a := range m.alerts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAlertRepo) UpdateStatusIfOpen(_ context.Context, id uint, status string) (int64, error) {
	for _, a := range m.alerts {
		if a.ID == id && a.Status == model.AlertStatusOpen {
			a.Status = status
			return 1, nil
		}
	}
	return 0, nil
}

// ListAll returns newest first, matching the real repo's timestamp ordering.
func (m *mockAlertRepo) ListAll(_ context.Context) ([]model.Alert, error) {
	result := make([]model.Alert, 0, len(m.alerts))
	for i := len(m.alerts) - 1; i >= 0; i-- {
		result = append(result, *m.alerts[i])
	}
	return result, nil
}

func (m *mockAlertRepo) ListByUser(_ context.Context, userID uint) ([]model.Alert, error) {
	var result []model.Alert
	for i := len(m.alerts) - 1; i >= 0; i-- {
		if m.alerts[i].UserID == userID {
			result = append(result, *m.alerts[i])
		}
	}
	return result, nil
}

// ── Mock ReportRepository ──

type mockReportRepo struct {
	reports []*model.Report
	nextID  uint
}

func newMockReportRepo() *mockReportRepo {
	return &mockReportRepo{nextID: 1}
}

func (m *mockReportRepo) Create(_ context.Context, report *model.Report) error {
	if report.ID == 0 {
		report.ID = m.nextID
		m.nextID++
	}
	m.reports = append(m.reports, report)
	return nil
}

func (m *mockReportRepo) ListAll(_ context.Context) ([]model.Report, error) {
	result := make([]model.Report, 0, len(m.reports))
	for i := len(m.reports) - 1; i >= 0; i-- {
		result = append(result, *m.reports[i])
	}
	return result, nil
}

func (m *mockReportRepo) ListByAuditor(_ context.Context, auditorID uint) ([]model.Report, error) {
	var result []model.Report
	for i := len(m.reports) - 1; i >= 0; i-- {
		if m.reports[i].AuditorID == auditorID {
			result = append(result, *m.reports[i])
		}
	}
	return result, nil
}

// ── Test wiring ──

type mockRepos struct {
	users      *mockUserRepo
	shifts     *mockShiftRepo
	attendance *mockAttendanceRepo
	alerts     *mockAlertRepo
	reports    *mockReportRepo
}

// newMockRepository builds a Repository backed entirely by in-memory mocks.
func newMockRepository() (*repository.Repository, *mockRepos) {
	users := newMockUserRepo()
	shifts := newMockShiftRepo(users)
	attendance := newMockAttendanceRepo(users, shifts)
	alerts := newMockAlertRepo()
	reports := newMockReportRepo()

	repo := &repository.Repository{
		User:       users,
		Shift:      shifts,
		Attendance: attendance,
		Alert:      alerts,
		Report:     reports,
	}
	return repo, &mockRepos{
		users:      users,
		shifts:     shifts,
		attendance: attendance,
		alerts:     alerts,
		reports:    reports,
	}
}
