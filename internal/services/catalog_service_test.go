package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/amoakoh/coachdesk/internal/models"
)

type fakeServicesRepo struct {
	created      *models.Service
	openBookings int64
	deleteCalls  int
}

func (f *fakeServicesRepo) CreateService(ctx context.Context, service *models.Service) (*models.Service, error) {
	f.created = service
	return service, nil
}

func (f *fakeServicesRepo) GetServiceByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	return nil, models.ErrNotFound
}

func (f *fakeServicesRepo) ListServices(ctx context.Context, offset, limit int) ([]*models.Service, int, error) {
	return nil, 0, nil
}

func (f *fakeServicesRepo) UpdateService(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Service, error) {
	return nil, models.ErrNotFound
}

func (f *fakeServicesRepo) DeleteService(ctx context.Context, id uuid.UUID) error {
	f.deleteCalls++
	return nil
}

func (f *fakeServicesRepo) CountOpenBookingsForService(ctx context.Context, serviceId uuid.UUID) (int64, error) {
	return f.openBookings, nil
}

func TestCreateServiceDefaultsActive(t *testing.T) {
	repo := &fakeServicesRepo{}
	svc := NewCatalogService(repo)

	_, err := svc.CreateService(context.Background(), &models.ServiceInput{
		Name:            "Deep Dive Session",
		DurationMinutes: 90,
		Price:           350,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.created.IsActive {
		t.Error("a new offering must default to active")
	}
	if repo.created.Id == uuid.Nil {
		t.Error("a new offering must get an ID")
	}

	inactive := false
	_, err = svc.CreateService(context.Background(), &models.ServiceInput{
		Name:            "Draft Offering",
		DurationMinutes: 60,
		Price:           100,
		IsActive:        &inactive,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.created.IsActive {
		t.Error("an explicit is_active=false must be honoured")
	}
}

func TestCreateServiceRejectsInvalidInput(t *testing.T) {
	repo := &fakeServicesRepo{}
	svc := NewCatalogService(repo)

	cases := []*models.ServiceInput{
		{DurationMinutes: 60, Price: 100},
		{Name: "No Duration", Price: 100},
		{Name: "Negative Price", DurationMinutes: 60, Price: -5},
	}

	for _, input := range cases {
		if _, err := svc.CreateService(context.Background(), input); err == nil {
			t.Errorf("expected validation error for %+v", input)
		}
	}
	if repo.created != nil {
		t.Error("repo must not be called for invalid input")
	}
}

func TestDeleteServiceGuardsOpenBookings(t *testing.T) {
	repo := &fakeServicesRepo{openBookings: 3}
	svc := NewCatalogService(repo)

	err := svc.DeleteService(context.Background(), uuid.New())
	if !errors.Is(err, models.ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
	if repo.deleteCalls != 0 {
		t.Errorf("delete must not run with open bookings, got %d calls", repo.deleteCalls)
	}

	repo.openBookings = 0
	if err := svc.DeleteService(context.Background(), uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.deleteCalls != 1 {
		t.Errorf("expected 1 delete call, got %d", repo.deleteCalls)
	}
}
