package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/amoakoh/coachdesk/internal/models"
)

// SystemConfigService reads and writes the key/value configuration table
// (travel pricing and similar settings that change without a deploy).
type SystemConfigService struct {
	configRepo models.SystemConfigRepo
}

func NewSystemConfigService(configRepo models.SystemConfigRepo) *SystemConfigService {
	return &SystemConfigService{
		configRepo: configRepo,
	}
}

func (cs *SystemConfigService) Get(ctx context.Context, key string) (*models.SystemConfig, error) {
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("config key is required")
	}
	return cs.configRepo.GetConfigValue(ctx, key)
}

func (cs *SystemConfigService) Set(ctx context.Context, key, value string) (*models.SystemConfig, error) {
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("config key is required")
	}
	return cs.configRepo.UpsertConfigValue(ctx, key, value)
}
