package config

import "testing"

func TestLoadSecretDefaults(t *testing.T) {
	t.Setenv("ENV", "dev")
	t.Setenv("JWT_SECRET", "")

	cfg := Load()
	if cfg.JWTSecret != "dev-secret" {
		t.Fatalf("expected dev fallback secret, got %q", cfg.JWTSecret)
	}
}

func TestLoadProductionHasNoFallbackSecret(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/skillbridge")

	cfg := Load()
	if cfg.JWTSecret != "" {
		t.Fatalf("expected empty secret in production, got %q", cfg.JWTSecret)
	}
}

func TestLoadProductionUsesExplicitSecret(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "real-secret")

	cfg := Load()
	if cfg.JWTSecret != "real-secret" {
		t.Fatalf("expected explicit secret, got %q", cfg.JWTSecret)
	}
}
