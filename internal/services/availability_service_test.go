package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/amoakoh/coachdesk/internal/models"
)

type fakeSlotsRepo struct {
	slot          *models.AvailabilitySlot
	getErr        error
	conflicts     int64
	conflictCalls int
	blockFields   map[string]interface{}
}

func (f *fakeSlotsRepo) GetSlotByID(ctx context.Context, id uuid.UUID) (*models.AvailabilitySlot, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.slot, nil
}

func (f *fakeSlotsRepo) SetSlotBlock(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.AvailabilitySlot, error) {
	f.blockFields = fields
	return f.slot, nil
}

func (f *fakeSlotsRepo) CountBookingConflicts(ctx context.Context, serviceId uuid.UUID, sessionDate, startTime string) (int64, error) {
	f.conflictCalls++
	return f.conflicts, nil
}

func scheduledSlot() *models.AvailabilitySlot {
	return &models.AvailabilitySlot{
		Id:          uuid.New(),
		ServiceId:   uuid.New(),
		SessionDate: "2026-09-14",
		StartTime:   "10:00",
		IsActive:    true,
	}
}

func TestCheckSlot(t *testing.T) {
	cases := []struct {
		name          string
		mutate        func(*models.AvailabilitySlot)
		conflicts     int64
		wantAvailable bool
		wantConflictQ bool
	}{
		{"free slot", func(s *models.AvailabilitySlot) {}, 0, true, true},
		{"booked slot", func(s *models.AvailabilitySlot) {}, 1, false, true},
		{"admin blocked", func(s *models.AvailabilitySlot) { s.IsBlockedByAdmin = true; s.IsActive = false }, 0, false, false},
		{"inactive", func(s *models.AvailabilitySlot) { s.IsActive = false }, 0, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slot := scheduledSlot()
			tc.mutate(slot)
			repo := &fakeSlotsRepo{slot: slot, conflicts: tc.conflicts}
			svc := NewAvailabilityService(repo)

			result, err := svc.CheckSlot(context.Background(), slot.Id)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Available != tc.wantAvailable {
				t.Errorf("Available = %v, want %v", result.Available, tc.wantAvailable)
			}
			if tc.wantConflictQ && repo.conflictCalls != 1 {
				t.Errorf("expected a conflict lookup, got %d calls", repo.conflictCalls)
			}
			if !tc.wantConflictQ && repo.conflictCalls != 0 {
				t.Errorf("expected no conflict lookup for a blocked/inactive slot, got %d calls", repo.conflictCalls)
			}
		})
	}
}

func TestCheckSlotUnscheduled(t *testing.T) {
	slot := scheduledSlot()
	slot.SessionDate = ""
	svc := NewAvailabilityService(&fakeSlotsRepo{slot: slot})

	_, err := svc.CheckSlot(context.Background(), slot.Id)
	if !errors.Is(err, ErrSlotUnscheduled) {
		t.Errorf("err = %v, want ErrSlotUnscheduled", err)
	}
}

func TestCheckSlotNotFound(t *testing.T) {
	svc := NewAvailabilityService(&fakeSlotsRepo{getErr: models.ErrNotFound})

	_, err := svc.CheckSlot(context.Background(), uuid.New())
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestBlockFieldsPairing(t *testing.T) {
	adminId := uuid.New()
	now := time.Now()

	blocked := BlockFields(adminId, true, "personal leave", now)
	if blocked["is_blocked_by_admin"] != true || blocked["is_active"] != false {
		t.Errorf("block must set is_blocked_by_admin=true and is_active=false, got %v", blocked)
	}
	if blocked["block_reason"] != "personal leave" {
		t.Errorf("block_reason = %v, want the given reason", blocked["block_reason"])
	}
	if blocked["blocked_by"] != adminId.String() {
		t.Errorf("blocked_by = %v, want %s", blocked["blocked_by"], adminId)
	}
	if blocked["blocked_at"] != now {
		t.Errorf("blocked_at = %v, want %v", blocked["blocked_at"], now)
	}

	unblocked := BlockFields(adminId, false, "ignored", now)
	if unblocked["is_blocked_by_admin"] != false || unblocked["is_active"] != true {
		t.Errorf("unblock must set is_blocked_by_admin=false and is_active=true, got %v", unblocked)
	}
	for _, key := range []string{"block_reason", "blocked_by", "blocked_at"} {
		if unblocked[key] != nil {
			t.Errorf("unblock must clear %s, got %v", key, unblocked[key])
		}
	}
}

func TestSetBlockWritesThroughRepo(t *testing.T) {
	slot := scheduledSlot()
	repo := &fakeSlotsRepo{slot: slot}
	svc := NewAvailabilityService(repo)

	if _, err := svc.SetBlock(context.Background(), slot.Id, uuid.New(), true, "travel"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.blockFields == nil {
		t.Fatal("expected the repo to receive block fields")
	}
	if repo.blockFields["block_reason"] != "travel" {
		t.Errorf("block_reason = %v, want travel", repo.blockFields["block_reason"])
	}
}
