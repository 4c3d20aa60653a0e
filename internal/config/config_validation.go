// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

// validate checks that the final client configuration satisfies all
// invariants before it is used at startup.
//
// Note: an empty server URL is allowed here. The upload engine reports
// "no server configured" as a session precondition failure with its own
// user-facing message, which is friendlier than refusing to start.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.Path == "" || strings.Contains(cfg.Storage.DB.Path, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.RecordwiseThresholdBytes < 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
