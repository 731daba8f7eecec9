package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// API stores gateway settings. BaseURL serves the courier-scoped
// resource families, ResourceBaseURL the shared ones.
type API struct {
	BaseURL         string
	ResourceBaseURL string
	Timeout         time.Duration
}

// Tracking stores location tracker settings.
type Tracking struct {
	Interval time.Duration
}

// Diag stores diagnostics server settings.
type Diag struct {
	Port      int
	PprofUser string
	PprofPass string
}

// Config stores application settings.
type Config struct {
	API      API
	StateDir string
	Tracking Tracking
	Diag     Diag
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	api := DefaultAPI()
	stateDir := DefaultStateDir()
	tracking := DefaultTracking()
	diag := Diag{Port: DefaultDiagPort()}

	if v := os.Getenv("API_BASE_URL"); v != "" {
		api.BaseURL = v
	}
	if v := os.Getenv("API_RESOURCE_BASE_URL"); v != "" {
		api.ResourceBaseURL = v
	}
	if v := os.Getenv("API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid API_TIMEOUT: %w", err)
		}
		api.Timeout = d
	}
	if v := os.Getenv("STATE_DIR"); v != "" {
		stateDir = v
	}
	if v := os.Getenv("TRACKING_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TRACKING_INTERVAL: %w", err)
		}
		tracking.Interval = d
	}
	if v := os.Getenv("DIAG_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DIAG_PORT: %w", err)
		}
		diag.Port = p
	}
	diag.PprofUser = os.Getenv("PPROF_USER")
	diag.PprofPass = os.Getenv("PPROF_PASS")

	pflag.StringVar(&api.BaseURL, "api-base-url", api.BaseURL, "courier-scoped API base URL")
	pflag.StringVar(&api.ResourceBaseURL, "api-resource-base-url", api.ResourceBaseURL, "resource-scoped API base URL")
	pflag.DurationVar(&api.Timeout, "api-timeout", api.Timeout, "per-request gateway timeout")
	pflag.StringVar(&stateDir, "state-dir", stateDir, "directory for persisted state")
	pflag.DurationVar(&tracking.Interval, "tracking-interval", tracking.Interval, "interval between location reports")
	pflag.IntVarP(&diag.Port, "diag-port", "p", diag.Port, "diagnostics server port")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	cfg := &Config{API: api, StateDir: stateDir, Tracking: tracking, Diag: diag}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	for name, raw := range map[string]string{
		"API base URL":          c.API.BaseURL,
		"API resource base URL": c.API.ResourceBaseURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid %s: %q", name, raw)
		}
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("invalid API timeout: %s", c.API.Timeout)
	}
	if c.StateDir == "" {
		return fmt.Errorf("state directory must not be empty")
	}
	if c.Tracking.Interval <= 0 {
		return fmt.Errorf("invalid tracking interval: %s", c.Tracking.Interval)
	}
	if c.Diag.Port <= 0 || c.Diag.Port > 65535 {
		return fmt.Errorf("invalid diagnostics port: %d", c.Diag.Port)
	}
	return nil
}
