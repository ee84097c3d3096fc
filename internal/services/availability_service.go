package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amoakoh/coachdesk/internal/models"
)

// ErrSlotUnscheduled is returned when a slot has no session date; such a slot
// cannot be checked for conflicts.
var ErrSlotUnscheduled = errors.New("slot has no scheduled date")

type AvailabilityService struct {
	slotsRepo models.SlotsRepo
}

func NewAvailabilityService(slotsRepo models.SlotsRepo) *AvailabilityService {
	return &AvailabilityService{
		slotsRepo: slotsRepo,
	}
}

// CheckSlot reports whether a slot can still be booked: it must not be
// admin-blocked, must be active, and no non-cancelled booking may occupy its
// (service, date, time) tuple.
func (as *AvailabilityService) CheckSlot(ctx context.Context, slotId uuid.UUID) (*models.AvailabilityResult, error) {
	if slotId == uuid.Nil {
		return nil, fmt.Errorf("invalid slot ID")
	}

	slot, err := as.slotsRepo.GetSlotByID(ctx, slotId)
	if err != nil {
		return nil, err
	}

	if slot.SessionDate == "" {
		return nil, ErrSlotUnscheduled
	}

	result := &models.AvailabilityResult{
		SlotId:    slot.Id,
		ServiceId: slot.ServiceId,
		Time:      slot.StartTime,
	}

	// A blocked or inactive slot is unavailable without a conflict lookup.
	if slot.IsBlockedByAdmin || !slot.IsActive {
		return result, nil
	}

	conflicts, err := as.slotsRepo.CountBookingConflicts(ctx, slot.ServiceId, slot.SessionDate, slot.StartTime)
	if err != nil {
		return nil, err
	}

	result.Available = conflicts == 0
	return result, nil
}

// SetBlock toggles the admin block on a slot. Blocking records the reason and
// the acting admin and deactivates the slot; unblocking clears all block
// fields and reactivates it.
func (as *AvailabilityService) SetBlock(ctx context.Context, slotId, adminId uuid.UUID, block bool, reason string) (*models.AvailabilitySlot, error) {
	if slotId == uuid.Nil {
		return nil, fmt.Errorf("invalid slot ID")
	}
	if adminId == uuid.Nil {
		return nil, fmt.Errorf("invalid admin ID")
	}

	fields := BlockFields(adminId, block, reason, time.Now())
	return as.slotsRepo.SetSlotBlock(ctx, slotId, fields)
}

// BlockFields builds the update set for a block/unblock. is_blocked_by_admin
// and is_active are always written together as complements; this is the only
// mutation path for the pairing.
func BlockFields(adminId uuid.UUID, block bool, reason string, now time.Time) map[string]interface{} {
	if block {
		return map[string]interface{}{
			"is_blocked_by_admin": true,
			"is_active":           false,
			"block_reason":        reason,
			"blocked_by":          adminId.String(),
			"blocked_at":          now,
			"updated_at":          now,
		}
	}
	return map[string]interface{}{
		"is_blocked_by_admin": false,
		"is_active":           true,
		"block_reason":        nil,
		"blocked_by":          nil,
		"blocked_at":          nil,
		"updated_at":          now,
	}
}
