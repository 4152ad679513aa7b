// Package config provides configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"strconv"
)

const defaultTokenLifetimeHours = 24

// JWTConfig carries the signing secret and token lifetime for issued
// session tokens.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig reads JWT_SECRET and JWT_EXPIRATION_HOURS from the
// environment. The secret has no default; a server without one must not
// start, because every issued token would be forgeable.
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	hours, err := envInt("JWT_EXPIRATION_HOURS", defaultTokenLifetimeHours)
	if err != nil {
		return nil, err
	}
	if hours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", hours)
	}

	return &JWTConfig{Secret: secret, ExpirationHours: hours}, nil
}

// envInt reads an integer environment variable, falling back to def when
// the variable is unset or blank.
func envInt(name string, def int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", name, err)
	}
	return n, nil
}
