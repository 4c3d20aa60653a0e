package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result, first non-zero value winning.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{URL: "https://a.example.com"}},
		&StructuredConfig{Device: Device{Name: "tablet-1"}},
		&StructuredConfig{Server: Server{URL: "https://b.example.com"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://a.example.com", cfg.Server.URL)
	assert.Equal(t, "tablet-1", cfg.Device.Name)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPathSpecified verifies that withJSON is a no-op when no
// earlier source named a JSON file.
func TestWithJSON_NoPathSpecified(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_LoadsNamedFile verifies that a JSON file named by an earlier
// source is parsed and appended to the config chain.
func TestWithJSON_LoadsNamedFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"url": "https://json.example.com", "request_timeout": "45s"},
		"sync":   map[string]any{"min_server_version": "2.3.0"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()
	require.NoError(t, b.err)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://json.example.com", cfg.Server.URL)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "2.3.0", cfg.Sync.MinServerVersion)
}

// TestWithJSON_BadFile verifies that an unreadable JSON path surfaces as a
// builder error.
func TestWithJSON_BadFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	b.withJSON()

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
}

// ── ClientConfig ──────────────────────────────────────────────────────────────

func TestClientConfig_ApplyDefaults(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultMinServerVersion, cfg.Sync.MinServerVersion)
	assert.Equal(t, DefaultRecordwiseThreshold, cfg.Sync.RecordwiseThresholdBytes)
	assert.Equal(t, DefaultRefreshInterval, cfg.Sync.RefreshInterval)
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(cfg *ClientConfig) {},
		},
		{
			name:    "empty db path",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DB.Path = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "in-memory db path rejected",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DB.Path = ":memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "negative recordwise threshold",
			mutate:  func(cfg *ClientConfig) { cfg.Sync.RecordwiseThresholdBytes = -1 },
			wantErr: ErrInvalidSyncConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &ClientConfig{
				Adapter: ClientAdapter{ServerURL: "https://clinic.example.com", RequestTimeout: time.Second},
				Storage: ClientStorage{DB: ClientDB{Path: "/tmp/uplink.db"}},
				Sync:    ClientSync{MinServerVersion: "2.0.0", RecordwiseThresholdBytes: 1024},
			}
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
