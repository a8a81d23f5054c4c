package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/sneha-510/smart-coalmine-system/internal/dto"
	"github.com/sneha-510/smart-coalmine-system/internal/model"
)

func setupTestShiftService() (ShiftService, *mockRepos) {
	repo, mocks := newMockRepository()
	return NewShiftService(repo, zap.NewNop()), mocks
}

func seedShift(mocks *mockRepos, assignedTo uint, date, start, end string) *model.Shift {
	d, _ := time.Parse(shiftDateLayout, date)
	shift := &model.Shift{
		Date:       d,
		StartTime:  start,
		EndTime:    end,
		AssignedTo: assignedTo,
		CreatedBy:  1,
	}
	_ = mocks.shifts.Create(context.Background(), shift)
	return shift
}

func TestShiftCreate_Success(t *testing.T) {
	svc, mocks := setupTestShiftService()
	worker := seedUser(mocks, "ravi@mine.com", "secret123", "worker")

	result, err := svc.Create(context.Background(), &dto.CreateShiftRequest{
		Date:       "2026-09-01",
		StartTime:  "06:00",
		EndTime:    "14:00",
		AssignedTo: worker.ID,
	}, 1)

	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if result.Date != "2026-09-01" {
		t.Errorf("expected date 2026-09-01, got %s", result.Date)
	}
	if result.FullName != "Test User" {
		t.Errorf("expected assignee name in response, got %q", result.FullName)
	}
	if result.CreatedBy != 1 {
		t.Errorf("expected CreatedBy=1, got %d", result.CreatedBy)
	}
}

func TestShiftCreate_BadDate(t *testing.T) {
	svc, mocks := setupTestShiftService()
	worker := seedUser(mocks, "ravi@mine.com", "secret123", "worker")

	_, err := svc.Create(context.Background(), &dto.CreateShiftRequest{
		Date:       "01/09/2026",
		StartTime:  "06:00",
		EndTime:    "14:00",
		AssignedTo: worker.ID,
	}, 1)

	if !errors.Is(err, ErrInvalidShiftTime) {
		t.Errorf("expected ErrInvalidShiftTime, got: %v", err)
	}
}

func TestShiftCreate_BadTime(t *testing.T) {
	svc, mocks := setupTestShiftService()
	worker := seedUser(mocks, "ravi@mine.com", "secret123", "worker")

	_, err := svc.Create(context.Background(), &dto.CreateShiftRequest{
		Date:       "2026-09-01",
		StartTime:  "6am",
		EndTime:    "14:00",
		AssignedTo: worker.ID,
	}, 1)

	if !errors.Is(err, ErrInvalidShiftTime) {
		t.Errorf("expected ErrInvalidShiftTime, got: %v", err)
	}
}

func TestShiftCreate_AssigneeNotWorker(t *testing.T) {
	svc, mocks := setupTestShiftService()
	auditor := seedUser(mocks, "asha@mine.com", "secret123", "auditor")

	_, err := svc.Create(context.Background(), &dto.CreateShiftRequest{
		Date:       "2026-09-01",
		StartTime:  "06:00",
		EndTime:    "14:00",
		AssignedTo: auditor.ID,
	}, 1)

	if !errors.Is(err, ErrAssigneeNotWorker) {
		t.Errorf("expected ErrAssigneeNotWorker, got: %v", err)
	}
}

func TestShiftCreate_AssigneeMissing(t *testing.T) {
	svc, _ := setupTestShiftService()

	_, err := svc.Create(context.Background(), &dto.CreateShiftRequest{
		Date:       "2026-09-01",
		StartTime:  "06:00",
		EndTime:    "14:00",
		AssignedTo: 42,
	}, 1)

	if !errors.Is(err, ErrAssigneeNotWorker) {
		t.Errorf("expected ErrAssigneeNotWorker, got: %v", err)
	}
}

func TestShiftUpdate_Success(t *testing.T) {
	svc, mocks := setupTestShiftService()
	worker := seedUser(mocks, "ravi@mine.com", "secret123", "worker")
	other := seedUser(mocks, "deepak@mine.com", "secret123", "worker")
	shift := seedShift(mocks, worker.ID, "2026-09-01", "06:00", "14:00")

	result, err := svc.Update(context.Background(), shift.ID, &dto.UpdateShiftRequest{
		Date:       "2026-09-02",
		StartTime:  "14:00",
		EndTime:    "22:00",
		AssignedTo: other.ID,
	})

	if err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}
	if result.Date != "2026-09-02" {
		t.Errorf("expected date 2026-09-02, got %s", result.Date)
	}
	if result.AssignedTo != other.ID {
		t.Errorf("expected reassignment to %d, got %d", other.ID, result.AssignedTo)
	}
}

func TestShiftUpdate_NotFound(t *testing.T) {
	svc, mocks := setupTestShiftService()
	worker := seedUser(mocks, "ravi@mine.com", "secret123", "worker")

	_, err := svc.Update(context.Background(), 999, &dto.UpdateShiftRequest{
		Date:       "2026-09-01",
		StartTime:  "06:00",
		EndTime:    "14:00",
		AssignedTo: worker.ID,
	})

	if !errors.Is(err, ErrShiftNotFound) {
		t.Errorf("expected ErrShiftNotFound, got: %v", err)
	}
}

func TestShiftDelete_NotFound(t *testing.T) {
	svc, _ := setupTestShiftService()

	err := svc.Delete(context.Background(), 999)
	if !errors.Is(err, ErrShiftNotFound) {
		t.Errorf("expected ErrShiftNotFound, got: %v", err)
	}
}

func TestShiftListMine_OnlyOwn(t *testing.T) {
	svc, mocks := setupTestShiftService()
	worker := seedUser(mocks, "ravi@mine.com", "secret123", "worker")
	other := seedUser(mocks, "deepak@mine.com", "secret123", "worker")
	seedShift(mocks, worker.ID, "2026-09-01", "06:00", "14:00")
	seedShift(mocks, other.ID, "2026-09-01", "14:00", "22:00")

	shifts, err := svc.ListMine(context.Background(), worker.ID)
	if err != nil {
		t.Fatalf("ListMine should succeed: %v", err)
	}
	if len(shifts) != 1 {
		t.Fatalf("expected 1 shift, got %d", len(shifts))
	}
	if shifts[0].AssignedTo != worker.ID {
		t.Errorf("expected own shift only, got assignee %d", shifts[0].AssignedTo)
	}
}
