package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8000/api", cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10, cfg.LogMaxSizeMB)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DASHBOARD_API_URL", "http://api.internal:9000/api")
	t.Setenv("DASHBOARD_REQUEST_TIMEOUT", "5s")
	t.Setenv("DASHBOARD_LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "http://api.internal:9000/api", cfg.APIURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.env")
	require.NoError(t, os.WriteFile(path, []byte("DASHBOARD_EXPORT_DIR=/tmp/exports\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("DASHBOARD_EXPORT_DIR") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/exports", cfg.ExportDir)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("DASHBOARD_API_URL", "not a url")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)

	t.Setenv("DASHBOARD_API_URL", "http://127.0.0.1:8000/api")
	t.Setenv("DASHBOARD_LOG_LEVEL", "loud")
	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}
