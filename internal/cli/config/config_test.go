package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inEmptyDir runs the test in a fresh working directory.
func inEmptyDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("api-url", "", "")
	fs.Int("port", 0, "")
	fs.Bool("dev", false, "")
	fs.String("log-level", "", "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	inEmptyDir(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Empty(t, FileUsed())
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := inEmptyDir(t)
	writeFile(t, filepath.Join(dir, "musbsite.yaml"), `
api_url: https://cms.example.org
api_timeout: 3s
port: 9000
log_format: json
contact_reset_after: 2s
`)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://cms.example.org", cfg.APIURL)
	assert.Equal(t, 3*time.Second, cfg.APITimeout)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 2*time.Second, cfg.ContactResetAfter)
	assert.Equal(t, DefaultFormRateLimit, cfg.FormRateLimit, "unset keys keep defaults")
	assert.Equal(t, "musbsite.yaml", FileUsed())
}

func TestLoad_YmlAndExplicitPath(t *testing.T) {
	dir := inEmptyDir(t)
	writeFile(t, filepath.Join(dir, "musbsite.yml"), "port: 9100\n")
	writeFile(t, filepath.Join(dir, "other.yaml"), "port: 9200\n")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Port)

	cfg, err = Load("other.yaml", nil)
	require.NoError(t, err)
	assert.Equal(t, 9200, cfg.Port)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	inEmptyDir(t)
	_, err := Load("nope.yaml", nil)
	assert.ErrorContains(t, err, "nope.yaml")
}

func TestLoad_Precedence(t *testing.T) {
	dir := inEmptyDir(t)
	writeFile(t, filepath.Join(dir, "musbsite.yaml"), "port: 9000\napi_url: http://file:8000\nlog_level: warn\n")
	t.Setenv("MUSB_PORT", "9001")
	t.Setenv("MUSB_API_URL", "http://env:8000")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--port", "9002"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, 9002, cfg.Port, "flag beats env")
	assert.Equal(t, "http://env:8000", cfg.APIURL, "env beats file")
	assert.Equal(t, "warn", cfg.LogLevel, "file beats default")
	assert.False(t, cfg.Dev, "unchanged flags do not override")
}

func TestLoad_EnvFile(t *testing.T) {
	dir := inEmptyDir(t)
	writeFile(t, filepath.Join(dir, ".env"), "MUSB_SESSION_SECRET=from-dotenv\nMUSB_DEV=true\n")
	// godotenv sets real process variables
	t.Cleanup(func() {
		_ = os.Unsetenv("MUSB_SESSION_SECRET")
		_ = os.Unsetenv("MUSB_DEV")
	})

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.SessionSecret)
	assert.True(t, cfg.Dev)
	assert.False(t, cfg.UsesDefaultSecret())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		errSubstr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "relative api url", mutate: func(c *Config) { c.APIURL = "/api" }, errSubstr: "absolute"},
		{name: "ftp api url", mutate: func(c *Config) { c.APIURL = "ftp://cms.example.org" }, errSubstr: "http or https"},
		{name: "api url without host", mutate: func(c *Config) { c.APIURL = "http://" }, errSubstr: "host"},
		{name: "zero port", mutate: func(c *Config) { c.Port = 0 }, errSubstr: "port"},
		{name: "negative port", mutate: func(c *Config) { c.Port = -1 }, errSubstr: "port"},
		{name: "unknown level", mutate: func(c *Config) { c.LogLevel = "loud" }, errSubstr: "log_level"},
		{name: "unknown format", mutate: func(c *Config) { c.LogFormat = "xml" }, errSubstr: "log_format"},
		{name: "bad rate", mutate: func(c *Config) { c.FormRateLimit = "fast" }, errSubstr: "form_rate_limit"},
		{name: "empty rate disables limiting", mutate: func(c *Config) { c.FormRateLimit = "" }},
		{name: "negative retries", mutate: func(c *Config) { c.APIRetryCount = -1 }, errSubstr: "api_retry_count"},
		{name: "negative timeout", mutate: func(c *Config) { c.APITimeout = -time.Second }, errSubstr: "negative"},
		{name: "no secret in production", mutate: func(c *Config) { c.SessionSecret = "" }, errSubstr: "session_secret"},
		{name: "no secret in dev", mutate: func(c *Config) { c.SessionSecret = ""; c.Dev = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errSubstr)
		})
	}
}

func TestLoad_InvalidEnvRejected(t *testing.T) {
	inEmptyDir(t)
	t.Setenv("MUSB_LOG_LEVEL", "chatty")

	_, err := Load("", nil)
	assert.ErrorContains(t, err, "log_level")
}

func TestContextHelpers(t *testing.T) {
	ctx := t.Context()
	assert.Equal(t, Default(), FromContext(ctx))
	assert.NotNil(t, GetLogger(ctx))

	cfg := Default()
	cfg.Port = 1234
	assert.Equal(t, 1234, FromContext(WithConfig(ctx, cfg)).Port)
}
