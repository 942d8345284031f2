package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
	t.Setenv("AUTH_JWT_SECRET", "this-is-a-very-long-jwt-secret-for-testing-32+")
	t.Setenv("CONFIG_PATH", "")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

func TestLoad_EnvOnly_Defaults(t *testing.T) {
	validEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port default: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 10*time.Second {
		t.Errorf("server.read_timeout default: got %v, want 10s", cfg.Server.ReadTimeout)
	}
	if cfg.Database.MaxConns != 25 {
		t.Errorf("database.max_conns default: got %d, want 25", cfg.Database.MaxConns)
	}
	if cfg.Auth.JWTIssuer != "craftshop" {
		t.Errorf("auth.jwt_issuer default: got %q, want %q", cfg.Auth.JWTIssuer, "craftshop")
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("log defaults: got %q/%q", cfg.Log.Level, cfg.Log.Format)
	}
	if !cfg.RateLimit.Enabled || cfg.RateLimit.MaxPerMinute != 300 {
		t.Errorf("ratelimit defaults: got %v/%d", cfg.RateLimit.Enabled, cfg.RateLimit.MaxPerMinute)
	}
}

func TestLoad_MissingDSN_Fails(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "this-is-a-very-long-jwt-secret-for-testing-32+")
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("CONFIG_PATH", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing DATABASE_DSN")
	}
}

func TestLoad_YAMLWithEnvOverride(t *testing.T) {
	validEnv(t)

	dir := t.TempDir()
	path := writeYAML(t, dir, `
server:
  port: 9090
log:
  level: "debug"
  format: "text"
`)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "7070")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}

	// ENV beats YAML.
	if cfg.Server.Port != 7070 {
		t.Errorf("server.port: got %d, want 7070 (env override)", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level: got %q, want %q", cfg.Log.Level, "debug")
	}
}

func TestLoad_ExplicitMissingFile_Fails(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for explicit missing config file")
	}
}

func TestValidate_ShortJWTSecret(t *testing.T) {
	validEnv(t)
	t.Setenv("AUTH_JWT_SECRET", "short")

	_, err := Load()
	if err == nil {
		t.Fatal("expected validation error for short jwt secret")
	}
	if !strings.Contains(err.Error(), "jwt_secret") {
		t.Errorf("error should name jwt_secret, got: %v", err)
	}
}

func TestValidate_CollectsMultipleErrors(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 0
	cfg.Database.MaxConns = 0
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, want := range []string{"server.port", "database.dsn", "jwt_secret", "log.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %s, got: %v", want, err)
		}
	}
}
