package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
)

type BookingsRepo interface {
	GetBookingByID(ctx context.Context, id uuid.UUID) (*SessionBooking, error)
	ListBookings(ctx context.Context, offset, limit int) ([]*SessionBooking, int, error)
	ConfirmBookingPayment(ctx context.Context, id uuid.UUID, priorPaymentStatus string, fields map[string]interface{}) (*SessionBooking, error)
}

func (su *SupabaseRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*SessionBooking, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid booking ID")
	}

	raw, _, err := su.supabaseClient.From(SessionBookingsTable).
		Select("*", "exact", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %v", err)
	}

	var bookings []SessionBooking
	if err := json.Unmarshal(raw, &bookings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking rows: %v", err)
	}

	if len(bookings) == 0 {
		return nil, ErrNotFound
	}

	return &bookings[0], nil
}

func (su *SupabaseRepo) ListBookings(ctx context.Context, offset, limit int) ([]*SessionBooking, int, error) {
	raw, count, err := su.supabaseClient.From(SessionBookingsTable).
		Select("*", "exact", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Range(offset, offset+limit-1, "").
		Execute()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %v", err)
	}

	var bookings []*SessionBooking
	if err := json.Unmarshal(raw, &bookings); err != nil {
		return nil, 0, fmt.Errorf("failed to unmarshal bookings: %v", err)
	}

	return bookings, int(count), nil
}

// ConfirmBookingPayment applies the confirmation field set with an optimistic
// check on the payment status read beforehand. A zero match count means the
// booking either vanished or was confirmed concurrently; the caller
// distinguishes the two with a follow-up read.
func (su *SupabaseRepo) ConfirmBookingPayment(ctx context.Context, id uuid.UUID, priorPaymentStatus string, fields map[string]interface{}) (*SessionBooking, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid booking ID")
	}

	raw, count, err := su.supabaseClient.From(SessionBookingsTable).
		Update(fields, "", "exact").
		Eq("id", id.String()).
		Eq("payment_status", priorPaymentStatus).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to confirm booking payment: %v", err)
	}

	if count == 0 {
		return nil, ErrConflict
	}

	var bookings []SessionBooking
	if err := json.Unmarshal(raw, &bookings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated booking: %v", err)
	}

	if len(bookings) == 0 {
		return nil, fmt.Errorf("no booking data returned after update")
	}

	return &bookings[0], nil
}
