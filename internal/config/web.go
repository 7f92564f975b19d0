// Package config loads the museum web front-end configuration: a YAML file
// overlaid with environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"museum-web/internal/common/pagination"
	"museum-web/internal/infra/museumapi"
	"museum-web/internal/service/auth"
	envcfg "museum-web/pkg/config"
)

// WebConfig is the complete front-end configuration.
type WebConfig struct {
	Server     ServerConfig     `yaml:"server"`
	API        APIConfig        `yaml:"api"`
	Session    SessionConfig    `yaml:"session"`
	Login      LoginConfig      `yaml:"login"`
	Pagination PaginationConfig `yaml:"pagination"`
	Probe      ProbeConfig      `yaml:"probe"`
	CSP        CSPConfig        `yaml:"csp"`
	Log        LogConfig        `yaml:"log"`
	Tracing    TracingConfig    `yaml:"tracing"`

	// Fallbacks lists environment values that were rejected.
	Fallbacks []Fallback `yaml:"-"`
}

// Fallback records an environment override that was ignored.
type Fallback struct {
	Field   string
	Warning string
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// PublicURL is the absolute site root used in feed links.
	PublicURL         string        `yaml:"public_url"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
	// TrustProxy honours X-Forwarded-For; enable only behind a reverse proxy.
	TrustProxy bool `yaml:"trust_proxy"`
}

type APIConfig struct {
	BaseURL           string        `yaml:"base_url"`
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
	RetryAttempts     int           `yaml:"retry_attempts"`
}

type SessionConfig struct {
	CookieName string        `yaml:"cookie_name"`
	TTL        time.Duration `yaml:"ttl"`
	Secure     bool          `yaml:"secure"`
}

// LoginConfig throttles POST /login per client address.
type LoginConfig struct {
	Interval time.Duration `yaml:"interval"`
	Burst    int           `yaml:"burst"`
}

type PaginationConfig struct {
	PublicPageSize int `yaml:"public_page_size"`
	AdminPageSize  int `yaml:"admin_page_size"`
	DefaultLimit   int `yaml:"default_limit"`
	MaxLimit       int `yaml:"max_limit"`
}

type ProbeConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Schedule string `yaml:"schedule"`
}

type CSPConfig struct {
	Enabled    bool `yaml:"enabled"`
	ReportOnly bool `yaml:"report_only"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type TracingConfig struct {
	SampleRatio float64 `yaml:"sample_ratio"`
}

// Default returns a configuration that runs against a local API.
func Default() *WebConfig {
	pc := pagination.DefaultConfig()
	sc := auth.DefaultSessionConfig()
	ac := museumapi.DefaultConfig("http://localhost:3000/api")
	return &WebConfig{
		Server: ServerConfig{
			Addr:              ":8080",
			PublicURL:         "http://localhost:8080",
			ReadHeaderTimeout: 5 * time.Second,
			RequestTimeout:    30 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		API: APIConfig{
			BaseURL:           ac.BaseURL,
			Timeout:           ac.Timeout,
			RequestsPerSecond: ac.RequestsPerSecond,
			Burst:             ac.Burst,
			RetryAttempts:     ac.Retry.MaxAttempts,
		},
		Session: SessionConfig{CookieName: sc.CookieName, TTL: sc.TTL, Secure: true},
		Login:   LoginConfig{Interval: 12 * time.Second, Burst: 5},
		Pagination: PaginationConfig{
			PublicPageSize: pc.PublicPageSize,
			AdminPageSize:  pc.AdminPageSize,
			DefaultLimit:   pc.DefaultLimit,
			MaxLimit:       pc.MaxLimit,
		},
		Probe:   ProbeConfig{Enabled: true, Schedule: "* * * * *"},
		CSP:     CSPConfig{Enabled: true},
		Log:     LogConfig{Level: "info", Format: "json"},
		Tracing: TracingConfig{SampleRatio: 0.1},
	}
}

// Load reads path (skipped when empty), applies environment overrides and
// validates the result. Unknown YAML keys are rejected.
func Load(path string) (*WebConfig, error) {
	cfg := Default()
	if path != "" {
		// #nosec G304 -- path comes from the -config flag or CONFIG_PATH
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *WebConfig) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *WebConfig) applyEnv() {
	record := func(field, warning string, applied bool) {
		if applied {
			c.Fallbacks = append(c.Fallbacks, Fallback{Field: field, Warning: warning})
		}
	}

	c.Server.Addr = envcfg.GetEnvString("SERVER_ADDR", c.Server.Addr)
	c.Server.TrustProxy = envcfg.GetEnvBool("TRUST_PROXY", c.Server.TrustProxy)

	pub := envcfg.LoadString("PUBLIC_URL", c.Server.PublicURL, envcfg.ValidateHTTPURL)
	c.Server.PublicURL = pub.Value
	record("public_url", pub.Warning, pub.FallbackApplied)

	base := envcfg.LoadString("MUSEUM_API_URL", c.API.BaseURL, envcfg.ValidateHTTPURL)
	c.API.BaseURL = base.Value
	record("api_base_url", base.Warning, base.FallbackApplied)

	timeout := envcfg.LoadDuration("MUSEUM_API_TIMEOUT", c.API.Timeout, envcfg.ValidatePositiveDuration)
	c.API.Timeout = timeout.Value
	record("api_timeout", timeout.Warning, timeout.FallbackApplied)

	ttl := envcfg.LoadDuration("SESSION_TTL", c.Session.TTL, func(d time.Duration) error {
		return envcfg.ValidateDurationRange(d, time.Minute, 7*24*time.Hour)
	})
	c.Session.TTL = ttl.Value
	record("session_ttl", ttl.Warning, ttl.FallbackApplied)
	c.Session.Secure = envcfg.GetEnvBool("SESSION_COOKIE_SECURE", c.Session.Secure)

	burst := envcfg.LoadInt("LOGIN_BURST", c.Login.Burst, func(v int) error { return envcfg.ValidateIntRange(v, 1, 100) })
	c.Login.Burst = burst.Value
	record("login_burst", burst.Warning, burst.FallbackApplied)

	schedule := envcfg.LoadString("PROBE_SCHEDULE", c.Probe.Schedule, envcfg.ValidateCronSchedule)
	c.Probe.Schedule = schedule.Value
	record("probe_schedule", schedule.Warning, schedule.FallbackApplied)
	c.Probe.Enabled = envcfg.GetEnvBool("PROBE_ENABLED", c.Probe.Enabled)

	c.CSP.Enabled = envcfg.GetEnvBool("CSP_ENABLED", c.CSP.Enabled)
	c.CSP.ReportOnly = envcfg.GetEnvBool("CSP_REPORT_ONLY", c.CSP.ReportOnly)
	c.Log.Level = envcfg.GetEnvString("LOG_LEVEL", c.Log.Level)
	c.Log.Format = envcfg.GetEnvString("LOG_FORMAT", c.Log.Format)

	pc := pagination.LoadFromEnv(c.PaginationSettings())
	c.Pagination = PaginationConfig{
		PublicPageSize: pc.PublicPageSize,
		AdminPageSize:  pc.AdminPageSize,
		DefaultLimit:   pc.DefaultLimit,
		MaxLimit:       pc.MaxLimit,
	}
}

// Validate checks the loaded configuration.
func (c *WebConfig) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if err := envcfg.ValidateHTTPURL(c.Server.PublicURL); err != nil {
		errs = append(errs, fmt.Errorf("server.public_url: %w", err))
	}
	for name, d := range map[string]time.Duration{
		"server.read_header_timeout": c.Server.ReadHeaderTimeout,
		"server.request_timeout":     c.Server.RequestTimeout,
		"server.shutdown_timeout":    c.Server.ShutdownTimeout,
		"api.timeout":                c.API.Timeout,
		"session.ttl":                c.Session.TTL,
		"login.interval":             c.Login.Interval,
	} {
		if err := envcfg.ValidatePositiveDuration(d); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	if c.API.BaseURL == "" {
		errs = append(errs, errors.New("api.base_url is required"))
	} else if err := envcfg.ValidateHTTPURL(c.API.BaseURL); err != nil {
		errs = append(errs, fmt.Errorf("api.base_url: %w", err))
	}
	if c.API.RequestsPerSecond <= 0 || c.API.Burst < 1 {
		errs = append(errs, errors.New("api.requests_per_second and api.burst must be positive"))
	}
	if err := envcfg.ValidateIntRange(c.API.RetryAttempts, 1, 10); err != nil {
		errs = append(errs, fmt.Errorf("api.retry_attempts: %w", err))
	}
	if c.Login.Burst < 1 {
		errs = append(errs, errors.New("login.burst must be positive"))
	}
	for name, v := range map[string]int{
		"pagination.public_page_size": c.Pagination.PublicPageSize,
		"pagination.admin_page_size":  c.Pagination.AdminPageSize,
		"pagination.default_limit":    c.Pagination.DefaultLimit,
		"pagination.max_limit":        c.Pagination.MaxLimit,
	} {
		if err := envcfg.ValidateIntRange(v, 1, 1000); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	if c.Pagination.DefaultLimit > c.Pagination.MaxLimit {
		errs = append(errs, errors.New("pagination.default_limit cannot be greater than pagination.max_limit"))
	}
	if c.Probe.Enabled {
		if err := envcfg.ValidateCronSchedule(c.Probe.Schedule); err != nil {
			errs = append(errs, fmt.Errorf("probe.schedule: %w", err))
		}
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("tracing.sample_ratio must be between 0 and 1, got %v", c.Tracing.SampleRatio))
	}
	return errors.Join(errs...)
}

// PaginationSettings converts the pagination section.
func (c *WebConfig) PaginationSettings() pagination.Config {
	return pagination.Config{
		DefaultPage:    1,
		PublicPageSize: c.Pagination.PublicPageSize,
		AdminPageSize:  c.Pagination.AdminPageSize,
		DefaultLimit:   c.Pagination.DefaultLimit,
		MaxLimit:       c.Pagination.MaxLimit,
	}
}

// ClientConfig converts the api section, keeping the breaker and backoff defaults.
func (c *WebConfig) ClientConfig() museumapi.Config {
	mc := museumapi.DefaultConfig(c.API.BaseURL)
	mc.Timeout = c.API.Timeout
	mc.RequestsPerSecond = c.API.RequestsPerSecond
	mc.Burst = c.API.Burst
	mc.Retry.MaxAttempts = c.API.RetryAttempts
	return mc
}

// SessionSettings converts the session section.
func (c *WebConfig) SessionSettings() auth.SessionConfig {
	return auth.SessionConfig{
		CookieName: c.Session.CookieName,
		TTL:        c.Session.TTL,
		Secure:     c.Session.Secure,
	}
}
