package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Ledger.validate(); err != nil {
		return fmt.Errorf("ledger: %w", err)
	}

	if err := c.RateLimit.validate(c.Redis); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	switch strings.ToLower(c.Closure.HashAlgorithm) {
	case "md5", "blake2b-256":
	default:
		return fmt.Errorf("closure.hash_algorithm must be md5 or blake2b-256 (got %q)", c.Closure.HashAlgorithm)
	}

	return nil
}

func (l *LedgerConfig) validate() error {
	loc, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", l.Timezone, err)
	}
	l.Location = loc

	if l.DayStartHour < 0 || l.DayStartHour > 23 {
		return fmt.Errorf("day_start_hour must be in [0,23] (got %d)", l.DayStartHour)
	}
	if l.DutyEndHour < 0 || l.DutyEndHour > l.DayStartHour {
		return fmt.Errorf("duty_end_hour must be in [0,day_start_hour] (got %d)", l.DutyEndHour)
	}
	return nil
}

func (r *RateLimitConfig) validate(redis RedisConfig) error {
	if !r.Enabled {
		return nil
	}
	switch r.Backend {
	case "memory":
	case "redis":
		if !redis.Enabled() {
			return fmt.Errorf("backend redis requires redis.addr")
		}
	default:
		return fmt.Errorf("backend must be memory or redis (got %q)", r.Backend)
	}
	if r.ReadsPerWindow <= 0 || r.WritesPerWindow <= 0 {
		return fmt.Errorf("limits must be > 0 (reads %d, writes %d)", r.ReadsPerWindow, r.WritesPerWindow)
	}
	if r.Window <= 0 {
		return fmt.Errorf("window must be > 0 (got %s)", r.Window)
	}
	return nil
}
