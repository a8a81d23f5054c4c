package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/sneha-510/smart-coalmine-system/internal/model"
)

func setupTestAttendanceService() (AttendanceService, *mockRepos) {
	repo, mocks := newMockRepository()
	return NewAttendanceService(repo, zap.NewNop()), mocks
}

func TestCheckIn_Success(t *testing.T) {
	svc, mocks := setupTestAttendanceService()
	worker := seedUser(mocks, "ravi@mine.com", "secret123", "worker")
	shift := seedShift(mocks, worker.ID, "2026-09-01", "06:00", "14:00")

	result, err := svc.CheckIn(context.Background(), worker.ID, shift.ID)
	if err != nil {
		t.Fatalf("CheckIn should succeed: %v", err)
	}
	if result.CheckIn == nil {
		t.Fatal("check_in timestamp should be set")
	}
	if result.CheckOut != nil {
		t.Error("check_out should not be set yet")
	}
	if result.Status != model.AttendanceStatusOnShift {
		t.Errorf("expected status %q, got %q", model.AttendanceStatusOnShift, result.Status)
	}
}

func TestCheckIn_ShiftMissing(t *testing.T) {
	svc, mocks := setupTestAttendanceService()
	worker := seedUser(mocks, "ravi@mine.com", "secret123", "worker")

	_, err := svc.CheckIn(context.Background(), worker.ID, 999)
	if !errors.Is(err, ErrShiftNotFound) {
		t.Errorf("expected ErrShiftNotFound, got: %v", err)
	}
}

func TestCheckIn_DuplicateOpenRecord(t *testing.T) {
	svc, mocks := setupTestAttendanceService()
	worker := seedUser(mocks, "ravi@mine.com", "secret123", "worker")
	shift := seedShift(mocks, worker.ID, "2026-09-01", "06:00", "14:00")

	if _, err := svc.CheckIn(context.Background(), worker.ID, shift.ID); err != nil {
		t.Fatalf("first CheckIn should succeed: %v", err)
	}

	_, err := svc.CheckIn(context.Background(), worker.ID, shift.ID)
	if !errors.Is(err, ErrAlreadyCheckedIn) {
		t.Errorf("expected ErrAlreadyCheckedIn, got: %v", err)
	}
}

func TestCheckIn_AgainAfterCheckOut(t *testing.T) {
	svc, mocks := setupTestAttendanceService()
	worker := seedUser(mocks, "ravi@mine.com", "secret123", "worker")
	shift := seedShift(mocks, worker.ID, "2026-09-01", "06:00", "14:00")

	first, err := svc.CheckIn(context.Background(), worker.ID, shift.ID)
	if err != nil {
		t.Fatalf("first CheckIn should succeed: %v", err)
	}
	if _, err := svc.CheckOut(context.Background(), first.ID, worker.ID); err != nil {
		t.Fatalf("CheckOut should succeed: %v", err)
	}

	// A completed record does not block a fresh check-in.
	if _, err := svc.CheckIn(context.Background(), worker.ID, shift.ID); err != nil {
		t.Errorf("CheckIn after check-out should succeed: %v", err)
	}
}

func TestCheckOut_Success(t *testing.T) {
	svc, mocks := setupTestAttendanceService()
	worker := seedUser(mocks, "ravi@mine.com", "secret123", "worker")
	shift := seedShift(mocks, worker.ID, "2026-09-01", "06:00", "14:00")

	record, err := svc.CheckIn(context.Background(), worker.ID, shift.ID)
	if err != nil {
		t.Fatalf("CheckIn should succeed: %v", err)
	}

	result, err := svc.CheckOut(context.Background(), record.ID, worker.ID)
	if err != nil {
		t.Fatalf("CheckOut should succeed: %v", err)
	}
	if result.CheckOut == nil {
		t.Fatal("check_out timestamp should be set")
	}
	if result.Status != model.AttendanceStatusCompleted {
		t.Errorf("expected status %q, got %q", model.AttendanceStatusCompleted, result.Status)
	}
}

func TestCheckOut_NotOwner(t *testing.T) {
	svc, mocks := setupTestAttendanceService()
	worker := seedUser(mocks, "ravi@mine.com", "secret123", "worker")
	other := seedUser(mocks, "deepak@mine.com", "secret123", "worker")
	shift := seedShift(mocks, worker.ID, "2026-09-01", "06:00", "14:00")

	record, err := svc.CheckIn(context.Background(), worker.ID, shift.ID)
	if err != nil {
		t.Fatalf("CheckIn should succeed: %v", err)
	}

	_, err = svc.CheckOut(context.Background(), record.ID, other.ID)
	if !errors.Is(err, ErrNotRecordOwner) {
		t.Errorf("expected ErrNotRecordOwner, got: %v", err)
	}
}

func TestCheckOut_AdminBypassesOwnership(t *testing.T) {
	svc, mocks := setupTestAttendanceService()
	worker := seedUser(mocks, "ravi@mine.com", "secret123", "worker")
	shift := seedShift(mocks, worker.ID, "2026-09-01", "06:00", "14:00")

	record, err := svc.CheckIn(context.Background(), worker.ID, shift.ID)
	if err != nil {
		t.Fatalf("CheckIn should succeed: %v", err)
	}

	// actorID 0 is the admin path.
	if _, err := svc.CheckOut(context.Background(), record.ID, 0); err != nil {
		t.Errorf("admin CheckOut should succeed: %v", err)
	}
}

func TestCheckOut_AlreadyClosed(t *testing.T) {
	svc, mocks := setupTestAttendanceService()
	worker := seedUser(mocks, "ravi@mine.com", "secret123", "worker")
	shift := seedShift(mocks, worker.ID, "2026-09-01", "06:00", "14:00")

	record, err := svc.CheckIn(context.Background(), worker.ID, shift.ID)
	if err != nil {
		t.Fatalf("CheckIn should succeed: %v", err)
	}
	if _, err := svc.CheckOut(context.Background(), record.ID, worker.ID); err != nil {
		t.Fatalf("first CheckOut should succeed: %v", err)
	}

	_, err = svc.CheckOut(context.Background(), record.ID, worker.ID)
	if !errors.Is(err, ErrNotCheckedIn) {
		t.Errorf("expected ErrNotCheckedIn, got: %v", err)
	}
}

func TestCheckOut_RecordMissing(t *testing.T) {
	svc, mocks := setupTestAttendanceService()
	worker := seedUser(mocks, "ravi@mine.com", "secret123", "worker")

	_, err := svc.CheckOut(context.Background(), 999, worker.ID)
	if !errors.Is(err, ErrAttendanceNotFound) {
		t.Errorf("expected ErrAttendanceNotFound, got: %v", err)
	}
}

func TestAttendanceList_WorkerSeesOwnOnly(t *testing.T) {
	svc, mocks := setupTestAttendanceService()
	worker := seedUser(mocks, "ravi@mine.com", "secret123", "worker")
	other := seedUser(mocks, "deepak@mine.com", "secret123", "worker")
	shift := seedShift(mocks, worker.ID, "2026-09-01", "06:00", "14:00")

	if _, err := svc.CheckIn(context.Background(), worker.ID, shift.ID); err != nil {
		t.Fatalf("CheckIn should succeed: %v", err)
	}
	if _, err := svc.CheckIn(context.Background(), other.ID, shift.ID); err != nil {
		t.Fatalf("CheckIn should succeed: %v", err)
	}

	records, err := svc.List(context.Background(), worker.ID, "worker")
	if err != nil {
		t.Fatalf("List should succeed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record for the worker, got %d", len(records))
	}
	if records[0].UserID != worker.ID {
		t.Errorf("expected own record only, got user %d", records[0].UserID)
	}
}

func TestAttendanceList_AdminSeesAll(t *testing.T) {
	svc, mocks := setupTestAttendanceService()
	worker := seedUser(mocks, "ravi@mine.com", "secret123", "worker")
	other := seedUser(mocks, "deepak@mine.com", "secret123", "worker")
	shift := seedShift(mocks, worker.ID, "2026-09-01", "06:00", "14:00")

	if _, err := svc.CheckIn(context.Background(), worker.ID, shift.ID); err != nil {
		t.Fatalf("CheckIn should succeed: %v", err)
	}
	if _, err := svc.CheckIn(context.Background(), other.ID, shift.ID); err != nil {
		t.Fatalf("CheckIn should succeed: %v", err)
	}

	records, err := svc.List(context.Background(), 1, "admin")
	if err != nil {
		t.Fatalf("List should succeed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records for admin, got %d", len(records))
	}
	// Joined shift window and worker name ride along for the admin view.
	if records[0].FullName == "" {
		t.Error("expected worker name in admin listing")
	}
	if records[0].Date != "2026-09-01" {
		t.Errorf("expected shift date in listing, got %q", records[0].Date)
	}
}
