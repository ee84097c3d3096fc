package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type SlotsRepo interface {
	GetSlotByID(ctx context.Context, id uuid.UUID) (*AvailabilitySlot, error)
	SetSlotBlock(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*AvailabilitySlot, error)
	CountBookingConflicts(ctx context.Context, serviceId uuid.UUID, sessionDate, startTime string) (int64, error)
}

func (su *SupabaseRepo) GetSlotByID(ctx context.Context, id uuid.UUID) (*AvailabilitySlot, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid slot ID")
	}

	raw, _, err := su.supabaseClient.From(SlotsTable).
		Select("*", "exact", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get slot: %v", err)
	}

	var slots []AvailabilitySlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, fmt.Errorf("failed to unmarshal slot rows: %v", err)
	}

	if len(slots) == 0 {
		return nil, ErrNotFound
	}

	return &slots[0], nil
}

// SetSlotBlock applies the block/unblock field set as a single UPDATE keyed
// on the slot id. There is no separate existence read; zero rows updated
// means the slot does not exist.
func (su *SupabaseRepo) SetSlotBlock(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*AvailabilitySlot, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid slot ID")
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	raw, count, err := su.supabaseClient.From(SlotsTable).
		Update(fields, "", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update slot: %v", err)
	}

	if count == 0 {
		return nil, ErrNotFound
	}

	var slots []AvailabilitySlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated slot: %v", err)
	}

	if len(slots) == 0 {
		return nil, fmt.Errorf("no slot data returned after update")
	}

	return &slots[0], nil
}

// CountBookingConflicts returns the number of non-cancelled bookings occupying
// the (service, date, time) tuple.
func (su *SupabaseRepo) CountBookingConflicts(ctx context.Context, serviceId uuid.UUID, sessionDate, startTime string) (int64, error) {
	_, count, err := su.supabaseClient.From(SessionBookingsTable).
		Select("id", "exact", false).
		Eq("service_id", serviceId.String()).
		Eq("session_date", sessionDate).
		Eq("start_time", startTime).
		Neq("status", BookingStatusCancelled).
		Execute()
	if err != nil {
		return 0, fmt.Errorf("failed to count booking conflicts: %v", err)
	}

	return count, nil
}
