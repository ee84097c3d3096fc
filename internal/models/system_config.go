package models

import (
	"time"
)

// SystemConfig is a generic key/value row, used for settings such as travel
// pricing that change without a deploy.
type SystemConfig struct {
	Key       string    `db:"key" json:"key"`
	Value     string    `db:"value" json:"value"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
