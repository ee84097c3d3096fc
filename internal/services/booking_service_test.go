package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/amoakoh/coachdesk/internal/models"
)

type fakeBookingsRepo struct {
	booking    *models.SessionBooking
	getErr     error
	confirmErr error
	priorSeen  string
	fieldsSeen map[string]interface{}
}

func (f *fakeBookingsRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*models.SessionBooking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingsRepo) ListBookings(ctx context.Context, offset, limit int) ([]*models.SessionBooking, int, error) {
	return []*models.SessionBooking{f.booking}, 1, nil
}

func (f *fakeBookingsRepo) ConfirmBookingPayment(ctx context.Context, id uuid.UUID, priorPaymentStatus string, fields map[string]interface{}) (*models.SessionBooking, error) {
	f.priorSeen = priorPaymentStatus
	f.fieldsSeen = fields
	if f.confirmErr != nil {
		return nil, f.confirmErr
	}
	return f.booking, nil
}

type fakeNotifier struct {
	confirmed []*models.SessionBooking
}

func (f *fakeNotifier) PaymentConfirmed(ctx context.Context, booking *models.SessionBooking) {
	f.confirmed = append(f.confirmed, booking)
}

func pendingBooking() *models.SessionBooking {
	return &models.SessionBooking{
		Id:            uuid.New(),
		BookingNumber: "BK-1042",
		ClientName:    "Ama Serwaa",
		Status:        models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		AmountPaid:    0,
		TotalAmount:   350,
	}
}

func TestConfirmPaymentDefaults(t *testing.T) {
	booking := pendingBooking()
	repo := &fakeBookingsRepo{booking: booking}
	notifier := &fakeNotifier{}
	svc := NewBookingService(repo, notifier)

	if _, err := svc.ConfirmPayment(context.Background(), booking.Id, models.ConfirmPaymentInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.fieldsSeen["status"] != models.BookingStatusConfirmed {
		t.Errorf("status = %v, want CONFIRMED", repo.fieldsSeen["status"])
	}
	if repo.fieldsSeen["payment_status"] != models.PaymentStatusPaid {
		t.Errorf("payment_status = %v, want PAID", repo.fieldsSeen["payment_status"])
	}
	if repo.fieldsSeen["payment_method"] != "simulated" {
		t.Errorf("payment_method = %v, want simulated", repo.fieldsSeen["payment_method"])
	}
	if repo.fieldsSeen["confirmation_sent"] != true {
		t.Errorf("confirmation_sent = %v, want true", repo.fieldsSeen["confirmation_sent"])
	}
	if repo.priorSeen != models.PaymentStatusPending {
		t.Errorf("prior payment status = %q, want the status read before the update", repo.priorSeen)
	}
	if len(notifier.confirmed) != 1 {
		t.Errorf("notifier was called %d times, want 1", len(notifier.confirmed))
	}
}

func TestConfirmPaymentAmountPaidMatchesTotal(t *testing.T) {
	for _, priorPaid := range []float64{0, 120.50, 350} {
		booking := pendingBooking()
		booking.AmountPaid = priorPaid
		repo := &fakeBookingsRepo{booking: booking}
		svc := NewBookingService(repo, &fakeNotifier{})

		if _, err := svc.ConfirmPayment(context.Background(), booking.Id, models.ConfirmPaymentInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.fieldsSeen["amount_paid"] != booking.TotalAmount {
			t.Errorf("amount_paid = %v with prior %v, want total %v", repo.fieldsSeen["amount_paid"], priorPaid, booking.TotalAmount)
		}
	}
}

func TestConfirmPaymentOverrides(t *testing.T) {
	input := models.ConfirmPaymentInput{
		PaymentMethod: "bank transfer",
		Status:        models.BookingStatusCompleted,
		PaymentStatus: models.PaymentStatusPaid,
	}

	fields := ConfirmationFields(350, input, time.Now())
	if fields["payment_method"] != "bank transfer" {
		t.Errorf("payment_method = %v, want bank transfer", fields["payment_method"])
	}
	if fields["status"] != models.BookingStatusCompleted {
		t.Errorf("status = %v, want COMPLETED", fields["status"])
	}
}

func TestConfirmPaymentNotFound(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewBookingService(&fakeBookingsRepo{getErr: models.ErrNotFound}, notifier)

	_, err := svc.ConfirmPayment(context.Background(), uuid.New(), models.ConfirmPaymentInput{})
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if len(notifier.confirmed) != 0 {
		t.Error("notifier must not fire when the booking lookup fails")
	}
}

func TestConfirmPaymentConflictDoesNotNotify(t *testing.T) {
	booking := pendingBooking()
	notifier := &fakeNotifier{}
	svc := NewBookingService(&fakeBookingsRepo{booking: booking, confirmErr: models.ErrConflict}, notifier)

	_, err := svc.ConfirmPayment(context.Background(), booking.Id, models.ConfirmPaymentInput{})
	if !errors.Is(err, models.ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
	if len(notifier.confirmed) != 0 {
		t.Error("notifier must not fire when the conditional update loses")
	}
}
