package config

import (
	"fmt"
	"time"
)

// Default values applied by [GetClientConfig] when neither environment,
// flags, nor JSON provide an explicit setting.
const (
	DefaultRequestTimeout      = 30 * time.Second
	DefaultMinServerVersion    = "2.0.0"
	DefaultRecordwiseThreshold = int64(1 << 20) // 1 MiB
	DefaultRefreshInterval     = time.Hour
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the client API endpoint used for every operation.
	ServerURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDevice holds the identity this device presents to the server.
type ClientDevice struct {
	// Name is the human-readable device name sent at registration.
	Name string
	// User is the upload user account name.
	User string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// Path is the SQLite database file path.
	Path string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync holds upload-engine tuning settings.
type ClientSync struct {
	// MinServerVersion is the lowest compatible server software version.
	MinServerVersion string
	// RecordwiseThresholdBytes is the estimated whole-table payload size
	// above which record-by-record streaming is used instead of bulk send.
	RecordwiseThresholdBytes int64
	// RefreshInterval defines how often the metadata refresh worker runs.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Device contains the device identity settings.
	Device ClientDevice
	// Storage contains client storage settings.
	Storage ClientStorage
	// Sync contains upload-engine tuning settings.
	Sync ClientSync
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies defaults for unset tuning knobs,
// and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			ServerURL:      cfg.Server.URL,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Device: ClientDevice{
			Name: cfg.Device.Name,
			User: cfg.Device.User,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				Path: cfg.Storage.DB.Path,
			},
		},
		Sync: ClientSync{
			MinServerVersion:         cfg.Sync.MinServerVersion,
			RecordwiseThresholdBytes: cfg.Sync.RecordwiseThresholdBytes,
			RefreshInterval:          cfg.Sync.RefreshInterval,
		},
	}
	clientCfg.applyDefaults()

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Sync.MinServerVersion == "" {
		cfg.Sync.MinServerVersion = DefaultMinServerVersion
	}
	if cfg.Sync.RecordwiseThresholdBytes == 0 {
		cfg.Sync.RecordwiseThresholdBytes = DefaultRecordwiseThreshold
	}
	if cfg.Sync.RefreshInterval == 0 {
		cfg.Sync.RefreshInterval = DefaultRefreshInterval
	}
}
