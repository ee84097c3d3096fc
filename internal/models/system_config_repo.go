package models

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

type SystemConfigRepo interface {
	GetConfigValue(ctx context.Context, key string) (*SystemConfig, error)
	UpsertConfigValue(ctx context.Context, key, value string) (*SystemConfig, error)
}

func (su *SupabaseRepo) GetConfigValue(ctx context.Context, key string) (*SystemConfig, error) {
	if key == "" {
		return nil, fmt.Errorf("config key is required")
	}

	raw, _, err := su.supabaseClient.From(SystemConfigTable).
		Select("*", "exact", false).
		Eq("key", key).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get config value: %v", err)
	}

	var rows []SystemConfig
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config rows: %v", err)
	}

	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	return &rows[0], nil
}

func (su *SupabaseRepo) UpsertConfigValue(ctx context.Context, key, value string) (*SystemConfig, error) {
	if key == "" {
		return nil, fmt.Errorf("config key is required")
	}

	row := map[string]interface{}{
		"key":        key,
		"value":      value,
		"updated_at": time.Now(),
	}

	raw, count, err := su.supabaseClient.From(SystemConfigTable).
		Insert(row, true, "key", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to upsert config value: %v", err)
	}

	var rows []SystemConfig
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal upserted config: %v", err)
	}

	if count == 0 || len(rows) == 0 {
		return nil, fmt.Errorf("no config data returned after upsert")
	}

	return &rows[0], nil
}
