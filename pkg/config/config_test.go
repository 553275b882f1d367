package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
	assert.Equal(t, DefaultRegion, cfg.Store.Region)
	assert.Equal(t, DefaultRequestTimeout, cfg.Store.RequestTimeout)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
logging:
  level: DEBUG
  format: json
store:
  endpoint: http://localhost:4566
  region: eu-west-1
  access_key_id: test
  secret_access_key: test
  force_path_style: true
  request_timeout: 5s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "http://localhost:4566", cfg.Store.Endpoint)
	assert.Equal(t, "eu-west-1", cfg.Store.Region)
	assert.True(t, cfg.Store.ForcePathStyle)
	assert.Equal(t, 5*time.Second, cfg.Store.RequestTimeout)
	// Unset fields still get defaults.
	assert.Equal(t, DefaultLogOutput, cfg.Logging.Output)
}

func TestLoadFromEnvFilePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env-config.yaml")
	content := "store:\n  region: sa-east-1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	t.Setenv("S3FS_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", cfg.Store.Region)
}

func TestLoadExplicitPathBeatsEnv(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), "env-config.yaml")
	require.NoError(t, os.WriteFile(envPath, []byte("store:\n  region: sa-east-1\n"), 0600))
	t.Setenv("S3FS_CONFIG", envPath)

	flagPath := filepath.Join(t.TempDir(), "flag-config.yaml")
	require.NoError(t, os.WriteFile(flagPath, []byte("store:\n  region: eu-central-1\n"), 0600))

	cfg, err := Load(flagPath)
	require.NoError(t, err)
	assert.Equal(t, "eu-central-1", cfg.Store.Region)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad log level", "logging:\n  level: LOUD\n"},
		{"bad endpoint", "store:\n  endpoint: not-a-url\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.Store.Region = "ap-southeast-2"
	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ap-southeast-2", loaded.Store.Region)
	assert.Equal(t, cfg.Logging, loaded.Logging)
}
