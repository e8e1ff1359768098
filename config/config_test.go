package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.GetAddress())
	assert.Equal(t, "cookie", cfg.Storage.Backend)
	assert.Equal(t, AuthModeHeader, cfg.Auth.Mode)
	assert.False(t, cfg.Features.EnableCloud)
	assert.False(t, cfg.Features.EnableEnterprise)
}

func TestLoadFile_YAMLThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adminshell.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  port: 9090
  shutdown_timeout: 3s
features:
  enable_enterprise: true
super_admin_email: admin@z.com
storage:
  backend: sqlite
  sqlite_path: /tmp/prefs.db
`), 0o644))

	t.Setenv("ADMINSHELL_ENABLE_CLOUD", "true")
	t.Setenv("ADMINSHELL_HTTP_PORT", "7070")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.HTTP.Port, "env wins over file")
	assert.Equal(t, 3*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.True(t, cfg.Features.EnableEnterprise)
	assert.True(t, cfg.Features.EnableCloud)
	assert.Equal(t, "admin@z.com", cfg.SuperAdminEmail)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/prefs.db", cfg.Storage.SQLitePath)
}

func TestLoadFile_SubSecondDurations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adminshell.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  shutdown_timeout: 500ms
backend:
  timeout: 1500ms
`), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, 1500*time.Millisecond, cfg.Backend.Timeout)
}

func TestLoadFile_DurationEnv(t *testing.T) {
	t.Setenv("ADMINSHELL_HTTP_SHUTDOWN_TIMEOUT", "250ms")
	t.Setenv("ADMINSHELL_BACKEND_TIMEOUT", "4")

	cfg, err := LoadFile("")
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, 4*time.Second, cfg.Backend.Timeout, "bare numbers are seconds")
}

func TestLoadFile_Invalid(t *testing.T) {
	t.Setenv("ADMINSHELL_STORAGE_BACKEND", "redis")
	t.Setenv("ADMINSHELL_AUTH_MODE", "oauth")

	_, err := LoadFile("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")
	assert.Contains(t, err.Error(), "oauth")
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestGetEnvBool_IgnoresGarbage(t *testing.T) {
	t.Setenv("ADMINSHELL_TEST_BOOL", "maybe")
	assert.True(t, getEnvBool("ADMINSHELL_TEST_BOOL", true))
}
