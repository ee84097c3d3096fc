package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"
	BookingStatusCompleted = "COMPLETED"

	PaymentStatusPending  = "PENDING"
	PaymentStatusPaid     = "PAID"
	PaymentStatusRefunded = "REFUNDED"
)

type SessionBooking struct {
	Id            uuid.UUID `db:"id" json:"id"`
	BookingNumber string    `db:"booking_number" json:"booking_number"`
	ServiceId     uuid.UUID `db:"service_id" json:"service_id"`
	ClientName    string    `db:"client_name" json:"client_name"`
	ClientEmail   string    `db:"client_email" json:"client_email"`
	SessionDate   string    `db:"session_date" json:"session_date"` // YYYY-MM-DD
	StartTime     string    `db:"start_time" json:"start_time"`     // HH:MM

	Status            string     `db:"status" json:"status"`
	PaymentStatus     string     `db:"payment_status" json:"payment_status"`
	PaymentMethod     string     `db:"payment_method" json:"payment_method,omitempty"`
	PaymentVerifiedAt *time.Time `db:"payment_verified_at" json:"payment_verified_at,omitempty"`
	PaymentProofURL   string     `db:"payment_proof_url" json:"payment_proof_url,omitempty"`
	AmountPaid        float64    `db:"amount_paid" json:"amount_paid"`
	TotalAmount       float64    `db:"total_amount" json:"total_amount"`
	ConfirmationSent  bool       `db:"confirmation_sent" json:"confirmation_sent"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ConfirmPaymentInput carries the optional overrides for a manual payment
// confirmation. Absent fields fall back to CONFIRMED / PAID / "simulated".
type ConfirmPaymentInput struct {
	PaymentMethod string `json:"payment_method,omitempty"`
	Status        string `json:"status,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`
}
