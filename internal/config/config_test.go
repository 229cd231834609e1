package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Port != 8080 {
		t.Errorf("HTTP port: got %d, want 8080", cfg.HTTP.Port)
	}
	if cfg.Log.SlogFormat() != "text" {
		t.Errorf("log format: got %q, want text", cfg.Log.SlogFormat())
	}
	if cfg.Auth.Secret == "" {
		t.Error("auth secret default is empty")
	}
	if cfg.Psql.Addr.String() == "" {
		t.Error("postgres address default is empty")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("AUTH_SECRET", "s3cret")
	t.Setenv("PSQL_RUN_MIGRATIONS", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("HTTP port: got %d, want 9090", cfg.HTTP.Port)
	}
	if cfg.Auth.Secret != "s3cret" {
		t.Errorf("auth secret: got %q, want s3cret", cfg.Auth.Secret)
	}
	if !cfg.Psql.RunMigrations {
		t.Error("RunMigrations not picked up from env")
	}
}
