package store

import (
	"context"
	"fmt"

	"github.com/clinitab/uplink/internal/config"
	"github.com/clinitab/uplink/internal/logger"
	"github.com/clinitab/uplink/models"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// Records is the generic table-level store consumed by the upload
	// engine.
	Records RecordStore

	// TaskFlags mirrors patient move flags onto task instances.
	TaskFlags TaskFlagger

	// Patients reads patient master records for policy validation.
	Patients PatientRepository

	// Settings is the persisted key/value settings store.
	Settings SettingsStore

	// ExtraStrings is the cache of server-supplied translation strings.
	ExtraStrings ExtraStringsCache
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.Path,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories scoped to the given task catalogue.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, catalogue models.Catalogue, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	records := newRecordStore(db, catalogue, logger)

	return &ClientStorages{
		Records:      records,
		TaskFlags:    records,
		Patients:     NewPatientRepository(db, logger),
		Settings:     NewSettingsStore(db, logger),
		ExtraStrings: NewExtraStringsCache(db, logger),
	}, nil
}
