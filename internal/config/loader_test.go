package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults_SetsExpectedValues(t *testing.T) {
	t.Parallel()

	cfg := Defaults()

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8430, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.Notify.Delay)
	assert.Equal(t, 16, cfg.Notify.BufferSize)
	assert.Equal(t, 90, cfg.Database.RetentionDays)
	assert.False(t, cfg.Tunnel.Enabled)
}

func TestLoadFromFile_ParsesYAML(t *testing.T) {
	t.Parallel()

	content := `
server:
  host: "127.0.0.1"
  port: 9000
  public_url: "https://taskboard.test.com"
  log_level: "debug"

database:
  path: "/tmp/taskboard-test.db"
  retention_days: 7

notify:
  delay: 500ms
  buffer_size: 4
`

	tmpFile := filepath.Join(t.TempDir(), "taskboard.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadFromFile(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "https://taskboard.test.com", cfg.Server.PublicURL)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "/tmp/taskboard-test.db", cfg.Database.Path)
	assert.Equal(t, 7, cfg.Database.RetentionDays)
	assert.Equal(t, 500*time.Millisecond, cfg.Notify.Delay)
	assert.Equal(t, 4, cfg.Notify.BufferSize)
}

func TestLoadFromFile_ExpandsEnvVars(t *testing.T) {
	t.Setenv("TASKBOARD_TEST_DOMAIN", "tb.example.dev")

	content := `
tunnel:
  authtoken: "tok"
  domain: "${TASKBOARD_TEST_DOMAIN}"
`
	tmpFile := filepath.Join(t.TempDir(), "taskboard.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadFromFile(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, "tb.example.dev", cfg.Tunnel.Domain)
}

func TestLoadFromFile_EnvOverridesAuthToken(t *testing.T) {
	t.Setenv("TASKBOARD_NGROK_AUTHTOKEN", "env-token")

	content := `
tunnel:
  enabled: true
  authtoken: "file-token"
`
	tmpFile := filepath.Join(t.TempDir(), "taskboard.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadFromFile(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Tunnel.AuthToken)
}

func TestLoadFromFile_RejectsInvalidPort(t *testing.T) {
	t.Parallel()

	content := `
server:
  port: 99999
`
	tmpFile := filepath.Join(t.TempDir(), "taskboard.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	_, err := LoadFromFile(tmpFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestLoadFromFile_RejectsBufferSizeZero(t *testing.T) {
	t.Parallel()

	content := `
notify:
  buffer_size: 0
`
	tmpFile := filepath.Join(t.TempDir(), "taskboard.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	_, err := LoadFromFile(tmpFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "buffer_size")
}

func TestLoadFromFile_RejectsTunnelWithoutToken(t *testing.T) {
	t.Parallel()

	content := `
tunnel:
  enabled: true
`
	tmpFile := filepath.Join(t.TempDir(), "taskboard.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	_, err := LoadFromFile(tmpFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authtoken")
}

func TestLoadFromFile_NonexistentFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFromFile("/tmp/taskboard-nonexistent-config-file.yaml")
	require.NoError(t, err)

	assert.Equal(t, 8430, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
}

func TestLoadFromFile_InvalidYAML_ReturnsError(t *testing.T) {
	t.Parallel()

	tmpFile := filepath.Join(t.TempDir(), "taskboard.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("{{invalid yaml:::"), 0644))

	_, err := LoadFromFile(tmpFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing YAML")
}

func TestLoadFromFile_PartialOverride_KeepsDefaults(t *testing.T) {
	t.Parallel()

	content := `
server:
  port: 9999
`
	tmpFile := filepath.Join(t.TempDir(), "taskboard.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadFromFile(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host, "default host should be preserved")
	assert.Equal(t, 16, cfg.Notify.BufferSize, "default buffer_size should be preserved")
}

func TestExpandHome_ReplacesLeadingTilde(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	result := ExpandHome("~/some/path")
	assert.Equal(t, filepath.Join(home, "some/path"), result)
}

func TestExpandHome_LeavesAbsolutePathsUnchanged(t *testing.T) {
	t.Parallel()

	result := ExpandHome("/absolute/path")
	assert.Equal(t, "/absolute/path", result)
}
