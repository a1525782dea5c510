package config

import (
	"fmt"
	"net/url"
	"slices"

	"github.com/ulule/limiter/v3"

	"github.com/leapstack-labs/musbsite/internal/logging"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validateAPIURL(c.APIURL); err != nil {
		return err
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got: %d", c.Port)
	}
	if c.APITimeout < 0 || c.APIRetryWait < 0 || c.ContactResetAfter < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	if c.APIRetryCount < 0 {
		return fmt.Errorf("api_retry_count must not be negative, got: %d", c.APIRetryCount)
	}
	if !slices.Contains(logging.Levels, c.LogLevel) {
		return fmt.Errorf("unknown log_level %q (want one of %v)", c.LogLevel, logging.Levels)
	}
	if c.LogFormat != logging.FormatText && c.LogFormat != logging.FormatJSON {
		return fmt.Errorf("unknown log_format %q (want text or json)", c.LogFormat)
	}
	if c.FormRateLimit != "" {
		if _, err := limiter.NewRateFromFormatted(c.FormRateLimit); err != nil {
			return fmt.Errorf("invalid form_rate_limit %q: %w", c.FormRateLimit, err)
		}
	}
	if !c.Dev && c.SessionSecret == "" {
		return fmt.Errorf("session_secret is required outside dev mode")
	}
	return nil
}

// UsesDefaultSecret reports whether the built-in session secret is active.
func (c *Config) UsesDefaultSecret() bool {
	return c.SessionSecret == DefaultSessionSecret
}

func validateAPIURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid api_url: %w", err)
	}
	if !u.IsAbs() {
		return fmt.Errorf("api_url must be absolute, got: %s", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("api_url must have a host, got: %s", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api_url scheme must be http or https, got: %s", u.Scheme)
	}
	return nil
}
