package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amoakoh/coachdesk/internal/helpers"
	"github.com/amoakoh/coachdesk/internal/models"
)

// AdminService backs the identity layer: admin accounts live in Supabase auth
// with a profile row in admin_users carrying the role.
type AdminService struct {
	adminRepo models.AdminRepo
}

func NewAdminService(adminRepo models.AdminRepo) *AdminService {
	return &AdminService{
		adminRepo: adminRepo,
	}
}

func (as *AdminService) CreateAdmin(admin *models.AdminUser) (interface{}, error) {
	if err := models.Validate.Var(admin.Email, "required,email"); err != nil {
		return nil, fmt.Errorf("invalid email format: %v", err)
	}

	if !helpers.IsPasswordStrong(admin.Password) {
		return nil, fmt.Errorf("password is not strong enough")
	}

	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	now := time.Now()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	return as.adminRepo.CreateAdmin(context.Background(), admin)
}

func (as *AdminService) AuthenticateAdmin(email, password string) (interface{}, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("invalid email format: %v", err)
	}
	if err := models.Validate.Var(password, "required,min=8"); err != nil {
		return nil, fmt.Errorf("invalid password format: %v", err)
	}

	response, err := as.adminRepo.AuthenticateAdmin(context.Background(), email, password)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %v", err)
	}

	return response, nil
}

func (as *AdminService) RefreshToken(refreshToken string) (interface{}, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("refresh token is required")
	}
	response, err := as.adminRepo.RefreshToken(context.Background(), refreshToken)
	if err != nil {
		return nil, fmt.Errorf("token refresh failed: %v", err)
	}
	return response, nil
}

func (as *AdminService) GetAdmin(id uuid.UUID, accessToken string) (*models.AdminUser, error) {
	return as.adminRepo.GetAdmin(context.Background(), id, accessToken)
}
