package auth

import (
	"fmt"
	"time"

	"inspection-scheduler-backend/internal/config"
)

// SessionName is the cookie name of the browser session
const SessionName = "inspection_session"

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret     string
	JWTTTL        time.Duration
	SessionSecret string
	// SessionMaxAge is both the cookie lifetime and the idle timeout, in seconds
	SessionMaxAge int
	SecureCookie  bool
}

// NewAuthConfig derives the authentication settings from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	ttl := time.Duration(cfg.JWTTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &AuthConfig{
		JWTSecret:     cfg.JWTSecret,
		JWTTTL:        ttl,
		SessionSecret: cfg.SessionSecret,
		SessionMaxAge: cfg.SessionMaxAgeSec,
		SecureCookie:  cfg.IsProduction(),
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("session secret is required")
	}
	if c.SessionMaxAge <= 0 {
		return fmt.Errorf("session max age must be positive")
	}
	return nil
}
