package models

import (
	"time"

	"github.com/google/uuid"
)

// Service is a bookable coaching offering. Slots and Bookings are populated
// only when the record is fetched with its relations embedded.
type Service struct {
	Id              uuid.UUID `db:"id" json:"id,omitempty"`
	Name            string    `db:"name" json:"name" validate:"required"`
	Description     string    `db:"description" json:"description,omitempty"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes" validate:"required,gt=0"`
	Price           float64   `db:"price" json:"price" validate:"gte=0"`
	Format          string    `db:"format" json:"format,omitempty"` // e.g. "online", "in_person"
	Category        string    `db:"category" json:"category,omitempty"`
	IsFeatured      bool      `db:"is_featured" json:"is_featured"`
	IsActive        bool      `db:"is_active" json:"is_active"`
	DisplayOrder    int       `db:"display_order" json:"display_order"`

	Slots    []AvailabilitySlot `json:"availability_slots,omitempty"`
	Bookings []SessionBooking   `json:"session_bookings,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ServiceInput is the create/update payload. IsActive is a pointer so an
// omitted value can default to true on create.
type ServiceInput struct {
	Name            string  `json:"name" validate:"required"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gt=0"`
	Price           float64 `json:"price" validate:"gte=0"`
	Format          string  `json:"format"`
	Category        string  `json:"category"`
	IsFeatured      bool    `json:"is_featured"`
	IsActive        *bool   `json:"is_active"`
	DisplayOrder    int     `json:"display_order"`
}
