package config

import (
	"errors"
	"fmt"
	"strings"
)

const minJWTSecretLen = 32

// Validate checks the configuration for values that would only fail at
// runtime. It collects all problems instead of stopping at the first.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port: must be 1-65535, got %d", c.Server.Port))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("server.shutdown_timeout: must be positive"))
	}

	if strings.TrimSpace(c.Database.DSN) == "" {
		errs = append(errs, errors.New("database.dsn: required"))
	}
	if c.Database.MaxConns < 1 {
		errs = append(errs, fmt.Errorf("database.max_conns: must be at least 1, got %d", c.Database.MaxConns))
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		errs = append(errs, fmt.Errorf("database.min_conns: must be 0-%d, got %d", c.Database.MaxConns, c.Database.MinConns))
	}

	// HS256 needs a secret of reasonable entropy.
	if len(c.Auth.JWTSecret) < minJWTSecretLen {
		errs = append(errs, fmt.Errorf("auth.jwt_secret: must be at least %d characters", minJWTSecretLen))
	}
	if strings.TrimSpace(c.Auth.JWTIssuer) == "" {
		errs = append(errs, errors.New("auth.jwt_issuer: required"))
	}

	if c.Media.MaxUploadSize <= 0 {
		errs = append(errs, errors.New("media.max_upload_size: must be positive"))
	}

	if c.RateLimit.Enabled && c.RateLimit.MaxPerMinute < 1 {
		errs = append(errs, fmt.Errorf("ratelimit.max_per_minute: must be at least 1, got %d", c.RateLimit.MaxPerMinute))
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}

	return errors.Join(errs...)
}
