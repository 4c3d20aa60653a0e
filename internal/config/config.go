// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the uplink
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the remote endpoint address and request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Device holds the identity this device presents to the server.
	Device Device `envPrefix:"DEVICE_"`

	// Storage holds the local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds upload-engine tuning and compatibility settings.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network settings for the remote upload endpoint.
type Server struct {
	// URL is the full URL of the server's client API endpoint.
	// Env: SERVER_URL
	URL string `env:"URL"`

	// RequestTimeout is the default timeout for outbound requests
	// (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Device holds the identity presented to the server on every request.
type Device struct {
	// Name is the human-readable device name sent at registration.
	// Env: DEVICE_NAME
	Name string `env:"NAME"`

	// User is the upload user account name used for authenticated calls.
	// Env: DEVICE_USER
	User string `env:"USER"`
}

// Storage groups the configuration for the local SQLite store.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB contains local database connection settings.
type DB struct {
	// Path is the SQLite database file path.
	// Env: STORAGE_DB_PATH
	Path string `env:"PATH"`
}

// Sync holds upload-engine tuning and compatibility settings.
type Sync struct {
	// MinServerVersion is the lowest server software version this client
	// will upload to. A server reporting an older version fails the
	// session before any table is transferred.
	// Env: SYNC_MIN_SERVER_VERSION
	MinServerVersion string `env:"MIN_SERVER_VERSION"`

	// RecordwiseThresholdBytes is the estimated whole-table payload size
	// above which a table is streamed record by record instead of being
	// sent in a single bulk request. Zero forces bulk transfer always.
	// Env: SYNC_RECORDWISE_THRESHOLD_BYTES
	RecordwiseThresholdBytes int64 `env:"RECORDWISE_THRESHOLD_BYTES"`

	// RefreshInterval defines how often the background worker refreshes
	// server identity metadata and translation strings.
	// Env: SYNC_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}
