package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-s server endpoint URL
//	-d local database file path
//	-device-name human-readable device name
//	-user upload user account name
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-min-server-version minimum compatible server version
//	-recordwise-threshold whole-table payload size limit in bytes
//	-refresh-interval metadata refresh interval (e.g., "1h")
func ParseFlags() *StructuredConfig {
	var serverURL string
	var dbPath string
	var deviceName string
	var uploadUser string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var minServerVersion string
	var recordwiseThreshold int64
	var refreshInterval time.Duration

	flag.StringVar(&serverURL, "s", "", "Server endpoint URL")
	flag.StringVar(&dbPath, "d", "", "Local database file path")
	flag.StringVar(&deviceName, "device-name", "", "Human-readable device name")
	flag.StringVar(&uploadUser, "user", "", "Upload user account name")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&minServerVersion, "min-server-version", "", "Minimum compatible server version")
	flag.Int64Var(&recordwiseThreshold, "recordwise-threshold", 0, "Whole-table payload size limit in bytes")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Metadata refresh interval (e.g., 1h)")

	flag.Parse()

	return &StructuredConfig{
		Server: Server{
			URL:            serverURL,
			RequestTimeout: requestTimeout,
		},
		Device: Device{
			Name: deviceName,
			User: uploadUser,
		},
		Storage: Storage{
			DB: DB{
				Path: dbPath,
			},
		},
		Sync: Sync{
			MinServerVersion:         minServerVersion,
			RecordwiseThresholdBytes: recordwiseThreshold,
			RefreshInterval:          refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
