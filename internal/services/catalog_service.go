package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amoakoh/coachdesk/internal/models"
)

// CatalogService covers the coaching offerings side of the catalog.
type CatalogService struct {
	servicesRepo models.ServicesRepo
}

func NewCatalogService(servicesRepo models.ServicesRepo) *CatalogService {
	return &CatalogService{
		servicesRepo: servicesRepo,
	}
}

func (cs *CatalogService) CreateService(ctx context.Context, input *models.ServiceInput) (*models.Service, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid service data provided: %v", err)
	}

	now := time.Now()
	service := &models.Service{
		Id:              uuid.New(),
		Name:            input.Name,
		Description:     input.Description,
		DurationMinutes: input.DurationMinutes,
		Price:           input.Price,
		Format:          input.Format,
		Category:        input.Category,
		IsFeatured:      input.IsFeatured,
		IsActive:        true,
		DisplayOrder:    input.DisplayOrder,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	return cs.servicesRepo.CreateService(ctx, service)
}

func (cs *CatalogService) GetService(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid service ID")
	}
	return cs.servicesRepo.GetServiceByID(ctx, id)
}

func (cs *CatalogService) ListServices(ctx context.Context, offset, limit int) ([]*models.Service, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}
	return cs.servicesRepo.ListServices(ctx, offset, limit)
}

// UpdateService overwrites the full field set; there is no partial update on
// offerings.
func (cs *CatalogService) UpdateService(ctx context.Context, id uuid.UUID, input *models.ServiceInput) (*models.Service, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid service ID")
	}
	if err := models.Validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid service data provided: %v", err)
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	fields := map[string]interface{}{
		"name":             input.Name,
		"description":      input.Description,
		"duration_minutes": input.DurationMinutes,
		"price":            input.Price,
		"format":           input.Format,
		"category":         input.Category,
		"is_featured":      input.IsFeatured,
		"is_active":        isActive,
		"display_order":    input.DisplayOrder,
		"updated_at":       time.Now(),
	}

	return cs.servicesRepo.UpdateService(ctx, id, fields)
}

// DeleteService refuses to remove an offering that still has non-cancelled
// bookings. Availability slots cascade at the store.
func (cs *CatalogService) DeleteService(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("invalid service ID")
	}

	open, err := cs.servicesRepo.CountOpenBookingsForService(ctx, id)
	if err != nil {
		return err
	}
	if open > 0 {
		return fmt.Errorf("%w: service has %d open bookings", models.ErrConflict, open)
	}

	return cs.servicesRepo.DeleteService(ctx, id)
}
