package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
)

const serviceWithRelations = "*,availability_slots(*),session_bookings(*)"

type ServicesRepo interface {
	CreateService(ctx context.Context, service *Service) (*Service, error)
	GetServiceByID(ctx context.Context, id uuid.UUID) (*Service, error)
	ListServices(ctx context.Context, offset, limit int) ([]*Service, int, error)
	UpdateService(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*Service, error)
	DeleteService(ctx context.Context, id uuid.UUID) error
	CountOpenBookingsForService(ctx context.Context, serviceId uuid.UUID) (int64, error)
}

func (su *SupabaseRepo) CreateService(ctx context.Context, service *Service) (*Service, error) {
	serviceData := map[string]interface{}{
		"id":               service.Id,
		"name":             service.Name,
		"description":      service.Description,
		"duration_minutes": service.DurationMinutes,
		"price":            service.Price,
		"format":           service.Format,
		"category":         service.Category,
		"is_featured":      service.IsFeatured,
		"is_active":        service.IsActive,
		"display_order":    service.DisplayOrder,
		"created_at":       service.CreatedAt,
		"updated_at":       service.UpdatedAt,
	}

	raw, count, err := su.supabaseClient.From(ServicesTable).
		Insert(serviceData, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %v", err)
	}

	var created []Service
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created service: %v", err)
	}

	if count == 0 || len(created) == 0 {
		return nil, fmt.Errorf("no service data returned after insert")
	}

	return &created[0], nil
}

// GetServiceByID fetches a service with its availability slots and session
// bookings embedded.
func (su *SupabaseRepo) GetServiceByID(ctx context.Context, id uuid.UUID) (*Service, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid service ID")
	}

	raw, _, err := su.supabaseClient.From(ServicesTable).
		Select(serviceWithRelations, "exact", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %v", err)
	}

	var services []Service
	if err := json.Unmarshal(raw, &services); err != nil {
		return nil, fmt.Errorf("failed to unmarshal service rows: %v", err)
	}

	if len(services) == 0 {
		return nil, ErrNotFound
	}

	return &services[0], nil
}

func (su *SupabaseRepo) ListServices(ctx context.Context, offset, limit int) ([]*Service, int, error) {
	raw, count, err := su.supabaseClient.From(ServicesTable).
		Select("*", "exact", false).
		Order("display_order", &postgrest.OrderOpts{Ascending: true}).
		Range(offset, offset+limit-1, "").
		Execute()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list services: %v", err)
	}

	var services []*Service
	if err := json.Unmarshal(raw, &services); err != nil {
		return nil, 0, fmt.Errorf("failed to unmarshal services: %v", err)
	}

	return services, int(count), nil
}

func (su *SupabaseRepo) UpdateService(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*Service, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid service ID")
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	raw, count, err := su.supabaseClient.From(ServicesTable).
		Update(fields, "", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update service: %v", err)
	}

	if count == 0 {
		return nil, ErrNotFound
	}

	var services []Service
	if err := json.Unmarshal(raw, &services); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated service: %v", err)
	}

	if len(services) == 0 {
		return nil, fmt.Errorf("no service data returned after update")
	}

	return &services[0], nil
}

func (su *SupabaseRepo) DeleteService(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("invalid service ID")
	}

	_, count, err := su.supabaseClient.From(ServicesTable).
		Delete("", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete service: %v", err)
	}

	if count == 0 {
		return ErrNotFound
	}

	return nil
}

// CountOpenBookingsForService counts the service's non-cancelled bookings.
// Deletion is refused while any exist; availability slots cascade at the store.
func (su *SupabaseRepo) CountOpenBookingsForService(ctx context.Context, serviceId uuid.UUID) (int64, error) {
	_, count, err := su.supabaseClient.From(SessionBookingsTable).
		Select("id", "exact", false).
		Eq("service_id", serviceId.String()).
		Neq("status", BookingStatusCancelled).
		Execute()
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings for service: %v", err)
	}

	return count, nil
}
