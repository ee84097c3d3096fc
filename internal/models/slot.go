package models

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilitySlot is a discrete bookable time interval tied to a Service.
// IsBlockedByAdmin and IsActive are kept complementary: blocking a slot always
// deactivates it, unblocking always reactivates it. SetSlotBlock is the only
// mutation path for the pairing.
type AvailabilitySlot struct {
	Id        uuid.UUID `db:"id" json:"id"`
	ServiceId uuid.UUID `db:"service_id" json:"service_id"`
	// SessionDate is YYYY-MM-DD, StartTime is HH:MM (24h). Both are mandatory;
	// a slot without a date cannot be checked for availability.
	SessionDate string `db:"session_date" json:"session_date" validate:"required"`
	StartTime   string `db:"start_time" json:"start_time" validate:"required"`
	IsWeekend   bool   `db:"is_weekend" json:"is_weekend"`

	IsActive         bool       `db:"is_active" json:"is_active"`
	IsBlockedByAdmin bool       `db:"is_blocked_by_admin" json:"is_blocked_by_admin"`
	BlockReason      string     `db:"block_reason" json:"block_reason,omitempty"`
	BlockedBy        *uuid.UUID `db:"blocked_by" json:"blocked_by,omitempty"`
	BlockedAt        *time.Time `db:"blocked_at" json:"blocked_at,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// AvailabilityResult is the transport shape of an availability check.
type AvailabilityResult struct {
	Available bool      `json:"available"`
	SlotId    uuid.UUID `json:"slot_id"`
	ServiceId uuid.UUID `json:"service_id"`
	Time      string    `json:"time"`
}
