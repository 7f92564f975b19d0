package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "web.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_RepositoryConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "web.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 12*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 9, cfg.Pagination.PublicPageSize)
	assert.Equal(t, 10, cfg.Pagination.AdminPageSize)
	assert.Empty(t, cfg.Fallbacks)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().API, cfg.API)
	assert.True(t, cfg.Session.Secure)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `api:
  base_url: "https://museum.example.org/api"
  timeout: 3s
session:
  secure: false
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://museum.example.org/api", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, 40, cfg.API.Burst)
	assert.False(t, cfg.Session.Secure)
	assert.Equal(t, "museum_session", cfg.Session.CookieName)

	cc := cfg.ClientConfig()
	assert.Equal(t, "https://museum.example.org/api", cc.BaseURL)
	assert.Equal(t, 3*time.Second, cc.Timeout)
	assert.Equal(t, 1, cc.Retry.MaxAttempts)
}

func TestLoad_RetryIsOptIn(t *testing.T) {
	cfg, err := Load(writeConfig(t, "api:\n  retry_attempts: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.ClientConfig().Retry.MaxAttempts)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.ClientConfig().Retry.MaxAttempts)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"unknown key", "server:\n  port: 8080\n", "failed to parse config"},
		{"bad duration", "api:\n  timeout: soon\n", "failed to parse config"},
		{"relative api url", "api:\n  base_url: /api\n", "api.base_url"},
		{"bad cron", "probe:\n  schedule: \"every minute\"\n", "probe.schedule"},
		{"limit above max", "pagination:\n  default_limit: 50\n  max_limit: 20\n", "default_limit"},
		{"negative ratio", "tracing:\n  sample_ratio: -1\n", "sample_ratio"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_DisabledProbeSkipsSchedule(t *testing.T) {
	_, err := Load(writeConfig(t, "probe:\n  enabled: false\n  schedule: nonsense\n"))
	assert.NoError(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MUSEUM_API_URL", "https://api.example.org")
	t.Setenv("SESSION_COOKIE_SECURE", "false")
	t.Setenv("PROBE_SCHEDULE", "*/5 * * * *")
	t.Setenv("PAGINATION_PUBLIC_PAGE_SIZE", "12")
	t.Setenv("CSP_REPORT_ONLY", "true")
	t.Setenv("LOGIN_BURST", "3")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.org", cfg.API.BaseURL)
	assert.False(t, cfg.Session.Secure)
	assert.Equal(t, "*/5 * * * *", cfg.Probe.Schedule)
	assert.Equal(t, 12, cfg.PaginationSettings().PublicPageSize)
	assert.True(t, cfg.CSP.ReportOnly)
	assert.Equal(t, 3, cfg.Login.Burst)
	assert.Empty(t, cfg.Fallbacks)
}

func TestLoad_InvalidEnvFallsBack(t *testing.T) {
	t.Setenv("MUSEUM_API_TIMEOUT", "-5s")
	t.Setenv("PROBE_SCHEDULE", "hourly")
	t.Setenv("SESSION_TTL", "10s")
	t.Setenv("LOGIN_BURST", "0")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, "* * * * *", cfg.Probe.Schedule)
	assert.Equal(t, 12*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 5, cfg.Login.Burst)

	var fields []string
	for _, f := range cfg.Fallbacks {
		fields = append(fields, f.Field)
		assert.NotEmpty(t, f.Warning)
	}
	assert.ElementsMatch(t, []string{"api_timeout", "probe_schedule", "session_ttl", "login_burst"}, fields)
}
