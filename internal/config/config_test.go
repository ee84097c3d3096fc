package config

import (
	"strings"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_URL_ANON_KEY", "anon-key")
	t.Setenv("MONGODB_URI", "mongodb+srv://user:<db_password>@cluster.example.net")
	t.Setenv("MONGODB_PASSWORD", "secret")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want default 8080", cfg.Port)
	}
	if cfg.ProofBucket != "booking-files" {
		t.Errorf("ProofBucket = %q, want default booking-files", cfg.ProofBucket)
	}
	if !cfg.IsDevelopment() {
		t.Errorf("Environment = %q, want default development", cfg.Environment)
	}
}

func TestLoadConfigRequiredVars(t *testing.T) {
	required := []string{
		"SUPABASE_URL",
		"SUPABASE_URL_ANON_KEY",
		"MONGODB_URI",
		"MONGODB_PASSWORD",
	}

	for _, missing := range required {
		t.Run(missing, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(missing, "")

			_, err := LoadConfig()
			if err == nil {
				t.Fatalf("expected error with %s unset", missing)
			}
			if !strings.Contains(err.Error(), missing) {
				t.Errorf("err = %v, want it to name %s", err, missing)
			}
		})
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("PROOF_BUCKET", "proofs")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.ProofBucket != "proofs" {
		t.Errorf("ProofBucket = %q, want proofs", cfg.ProofBucket)
	}
	if !cfg.IsProduction() {
		t.Errorf("Environment = %q, want production", cfg.Environment)
	}
}
