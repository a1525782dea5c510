// Package config loads and validates the site configuration.
//
// Values come, lowest precedence first, from built-in defaults, a
// musbsite.yaml (or .yml) file, MUSB_* environment variables and changed
// command-line flags. A .env file in the working directory is loaded into
// the environment before any of them.
package config

import "time"

// Defaults.
const (
	DefaultAPIURL            = "http://localhost:8000"
	DefaultAPITimeout        = 10 * time.Second
	DefaultAPIRetryCount     = 2
	DefaultAPIRetryWait      = 200 * time.Millisecond
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultContactResetAfter = 5 * time.Second
	DefaultFormRateLimit     = "10-M"

	// DefaultSessionSecret is only acceptable in dev mode.
	DefaultSessionSecret = "musbsite-dev-secret-change-in-production" //nolint:gosec
)

// EnvPrefix is the prefix of environment overrides: MUSB_API_URL -> api_url.
const EnvPrefix = "MUSB_"

// Config is the resolved site configuration.
type Config struct {
	APIURL        string        `koanf:"api_url"`
	APITimeout    time.Duration `koanf:"api_timeout"`
	APIRetryCount int           `koanf:"api_retry_count"`
	APIRetryWait  time.Duration `koanf:"api_retry_wait"`

	Port          int    `koanf:"port"`
	Dev           bool   `koanf:"dev"`
	SessionSecret string `koanf:"session_secret"`
	TrustProxy    bool   `koanf:"trust_proxy"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	// ContactResetAfter is how long the contact form shows its success state.
	ContactResetAfter time.Duration `koanf:"contact_reset_after"`
	// FormRateLimit is the per-client submission rate ("10-M"); empty disables it.
	FormRateLimit string `koanf:"form_rate_limit"`
	// Metrics exposes /metrics.
	Metrics bool `koanf:"metrics"`
}

func defaults() map[string]any {
	return map[string]any{
		"api_url":             DefaultAPIURL,
		"api_timeout":         DefaultAPITimeout,
		"api_retry_count":     DefaultAPIRetryCount,
		"api_retry_wait":      DefaultAPIRetryWait,
		"port":                DefaultPort,
		"dev":                 false,
		"session_secret":      DefaultSessionSecret,
		"trust_proxy":         false,
		"log_level":           DefaultLogLevel,
		"log_format":          DefaultLogFormat,
		"contact_reset_after": DefaultContactResetAfter,
		"form_rate_limit":     DefaultFormRateLimit,
		"metrics":             true,
	}
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		APIURL:            DefaultAPIURL,
		APITimeout:        DefaultAPITimeout,
		APIRetryCount:     DefaultAPIRetryCount,
		APIRetryWait:      DefaultAPIRetryWait,
		Port:              DefaultPort,
		SessionSecret:     DefaultSessionSecret,
		LogLevel:          DefaultLogLevel,
		LogFormat:         DefaultLogFormat,
		ContactResetAfter: DefaultContactResetAfter,
		FormRateLimit:     DefaultFormRateLimit,
		Metrics:           true,
	}
}
