package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amoakoh/coachdesk/internal/models"
	"github.com/amoakoh/coachdesk/internal/notify"
)

type BookingService struct {
	bookingsRepo models.BookingsRepo
	notifier     notify.Notifier
}

func NewBookingService(bookingsRepo models.BookingsRepo, notifier notify.Notifier) *BookingService {
	return &BookingService{
		bookingsRepo: bookingsRepo,
		notifier:     notifier,
	}
}

func (bs *BookingService) GetBooking(ctx context.Context, id uuid.UUID) (*models.SessionBooking, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid booking ID")
	}
	return bs.bookingsRepo.GetBookingByID(ctx, id)
}

func (bs *BookingService) ListBookings(ctx context.Context, offset, limit int) ([]*models.SessionBooking, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}
	return bs.bookingsRepo.ListBookings(ctx, offset, limit)
}

// ConfirmPayment marks a booking's payment as complete. Policy: confirmation
// implies full payment, so amount_paid is always set to the recorded total,
// whatever was tracked before. The update is conditional on the payment
// status read here; a concurrent confirmation surfaces as a conflict.
func (bs *BookingService) ConfirmPayment(ctx context.Context, id uuid.UUID, input models.ConfirmPaymentInput) (*models.SessionBooking, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid booking ID")
	}

	booking, err := bs.bookingsRepo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := ConfirmationFields(booking.TotalAmount, input, time.Now())

	updated, err := bs.bookingsRepo.ConfirmBookingPayment(ctx, id, booking.PaymentStatus, fields)
	if err != nil {
		return nil, err
	}

	bs.notifier.PaymentConfirmed(ctx, updated)

	return updated, nil
}

// ConfirmationFields builds the confirmation update set. Absent overrides
// default to CONFIRMED / PAID / "simulated" (there is no payment gateway; this
// is a manual confirmation path).
func ConfirmationFields(totalAmount float64, input models.ConfirmPaymentInput, now time.Time) map[string]interface{} {
	status := input.Status
	if status == "" {
		status = models.BookingStatusConfirmed
	}
	paymentStatus := input.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = models.PaymentStatusPaid
	}
	method := input.PaymentMethod
	if method == "" {
		method = "simulated"
	}

	return map[string]interface{}{
		"status":              status,
		"payment_status":      paymentStatus,
		"payment_method":      method,
		"payment_verified_at": now,
		"amount_paid":         totalAmount,
		"confirmation_sent":   true,
		"updated_at":          now,
	}
}
