// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"SERVER_URL":             "https://clinic.example.com/api",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"DEVICE_NAME": "ward-7-tablet",
		"DEVICE_USER": "uploader",

		"STORAGE_DB_PATH": "/var/lib/uplink/local.db",

		"SYNC_MIN_SERVER_VERSION":         "2.1.0",
		"SYNC_RECORDWISE_THRESHOLD_BYTES": "4096",
		"SYNC_REFRESH_INTERVAL":           "1h",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "https://clinic.example.com/api", cfg.Server.URL)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "ward-7-tablet", cfg.Device.Name)
	assert.Equal(t, "uploader", cfg.Device.User)

	assert.Equal(t, "/var/lib/uplink/local.db", cfg.Storage.DB.Path)

	assert.Equal(t, "2.1.0", cfg.Sync.MinServerVersion)
	assert.Equal(t, int64(4096), cfg.Sync.RecordwiseThresholdBytes)
	assert.Equal(t, time.Hour, cfg.Sync.RefreshInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_URL": "https://clinic.example.com/api",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "https://clinic.example.com/api", cfg.Server.URL)
	assert.Empty(t, cfg.Device.Name)
	assert.Zero(t, cfg.Sync.RefreshInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}
