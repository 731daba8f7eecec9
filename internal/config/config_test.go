package config_test

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"courier-app/internal/config"
)

func resetFlags(t *testing.T) {
	t.Helper()
	old := pflag.CommandLine
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	t.Cleanup(func() {
		pflag.CommandLine = old
	})
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"API_BASE_URL", "API_RESOURCE_BASE_URL", "API_TIMEOUT",
		"STATE_DIR", "TRACKING_INTERVAL", "DIAG_PORT",
		"PPROF_USER", "PPROF_PASS",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, "http://localhost:5000/api/delivery", cfg.API.BaseURL)
	require.Equal(t, "http://localhost:5000/api", cfg.API.ResourceBaseURL)
	require.Equal(t, 15*time.Second, cfg.API.Timeout)
	require.Equal(t, ".courier-app", cfg.StateDir)
	require.Equal(t, 30*time.Second, cfg.Tracking.Interval)
	require.Equal(t, 6060, cfg.Diag.Port)
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("API_BASE_URL", "https://api.example.com/api/delivery")
	t.Setenv("API_RESOURCE_BASE_URL", "https://api.example.com/api")
	t.Setenv("API_TIMEOUT", "5s")
	t.Setenv("STATE_DIR", "/var/lib/courier")
	t.Setenv("TRACKING_INTERVAL", "1m")
	t.Setenv("DIAG_PORT", "7070")
	t.Setenv("PPROF_USER", "ops")
	t.Setenv("PPROF_PASS", "hunter2")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, "https://api.example.com/api/delivery", cfg.API.BaseURL)
	require.Equal(t, "https://api.example.com/api", cfg.API.ResourceBaseURL)
	require.Equal(t, 5*time.Second, cfg.API.Timeout)
	require.Equal(t, "/var/lib/courier", cfg.StateDir)
	require.Equal(t, time.Minute, cfg.Tracking.Interval)
	require.Equal(t, 7070, cfg.Diag.Port)
	require.Equal(t, "ops", cfg.Diag.PprofUser)
	require.Equal(t, "hunter2", cfg.Diag.PprofPass)
}

func TestLoad_InvalidBaseURL(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("API_BASE_URL", "not a url")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("API_TIMEOUT", "soon")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_InvalidTrackingInterval(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("TRACKING_INTERVAL", "-10s")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_InvalidDiagPort(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("DIAG_PORT", "70000")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_FlagsParseError(t *testing.T) {
	oldArgs := os.Args
	oldCommandLine := pflag.CommandLine

	defer func() {
		os.Args = oldArgs
		pflag.CommandLine = oldCommandLine
	}()

	clearEnv(t)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	pflag.CommandLine = fs
	os.Args = []string{"cmd", "--diag-port=not-a-number"}

	cfg, err := config.Load()

	require.Error(t, err)
	require.Nil(t, cfg)
	require.Contains(t, err.Error(), "parse flags")
}
