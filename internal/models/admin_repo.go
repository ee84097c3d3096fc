package models

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/supabase-community/gotrue-go/types"
)

type AdminRepo interface {
	CreateAdmin(ctx context.Context, admin *AdminUser) (interface{}, error)
	AuthenticateAdmin(ctx context.Context, email, password string) (interface{}, error)
	RefreshToken(ctx context.Context, refreshToken string) (interface{}, error)
	GetAdmin(ctx context.Context, id uuid.UUID, accessToken string) (*AdminUser, error)
}

func (su *SupabaseRepo) CreateAdmin(ctx context.Context, admin *AdminUser) (interface{}, error) {
	signed := types.SignupRequest{
		Email:    admin.Email,
		Password: admin.Password,
	}

	res, err := su.supabaseClient.Auth.Signup(signed)
	if err != nil {
		errMsg := err.Error()
		if strings.Contains(errMsg, "User already Registered") || strings.Contains(errMsg, "unique constraint") {
			return nil, fmt.Errorf("email already in use")
		}
		if strings.Contains(errMsg, "null value in column") {
			return nil, fmt.Errorf("required field is missing")
		}
		if strings.Contains(errMsg, "invalid input syntax") {
			return nil, fmt.Errorf("invalid input format")
		}
		return nil, fmt.Errorf("failed to create admin user")
	}
	return res, nil
}

func (su *SupabaseRepo) AuthenticateAdmin(ctx context.Context, email, password string) (interface{}, error) {
	resp, err := su.supabaseClient.Auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate admin: %v", err)
	}
	return resp, nil
}

func (su *SupabaseRepo) RefreshToken(ctx context.Context, refreshToken string) (interface{}, error) {
	resp, err := su.supabaseClient.Auth.RefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %v", err)
	}
	return resp, nil
}

func (su *SupabaseRepo) GetAdmin(ctx context.Context, id uuid.UUID, accessToken string) (*AdminUser, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid UUID")
	}

	client := su.supabaseClient
	if accessToken != "" {
		authClient, err := su.GetAuthenticatedClient(accessToken)
		if err != nil {
			return nil, fmt.Errorf("failed to create authenticated client: %v", err)
		}
		client = authClient
	}

	raw, status, err := client.From(AdminUsersTable).
		Select("id,email,fullname,role,is_active,created_at,updated_at", "", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		if status != 0 {
			return nil, fmt.Errorf("postgrest error: status=%d body=%s err=%v", status, string(raw), err)
		}
		return nil, fmt.Errorf("failed to get admin by ID: %v", err)
	}

	// Supabase returns an array even for single results
	var admins []AdminUser
	if err := json.Unmarshal(raw, &admins); err != nil {
		return nil, fmt.Errorf("failed to unmarshal admin rows: %v", err)
	}

	if len(admins) == 0 {
		return nil, ErrNotFound
	}

	return &admins[0], nil
}
