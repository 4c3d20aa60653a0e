// SPDX-License-Identifier: Apache-2.0

// Package store implements the client's local SQLite persistence layer: the
// generic record store consumed by the upload engine, the key/value settings
// store, the patient repository, and the server-supplied translation cache.
package store

import (
	"context"
	"time"

	"github.com/clinitab/uplink/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordStore exposes generic, table-level access to the local database for
// the upload engine: enumeration, streaming, and the destructive post-upload
// operations. Table names passed in are expected to come from the task
// catalogue; unknown names yield errors from the underlying database.
type RecordStore interface {
	// TableNames lists every user table currently present in the local
	// database, sorted ascending.
	TableNames(ctx context.Context) ([]string, error)

	// FieldNames lists the ordered column names of table, excluding the
	// binary payload column of the blob table (which travels inlined as a
	// separate wire field).
	FieldNames(ctx context.Context, table string) ([]string, error)

	// CountRows returns the number of rows in table.
	CountRows(ctx context.Context, table string) (int64, error)

	// PrimaryKeys lists all primary keys of table, sorted ascending.
	PrimaryKeys(ctx context.Context, table string) ([]int64, error)

	// PrimaryKeysWithTimestamps lists all primary keys of table, each
	// paired with its last-modification time.
	PrimaryKeysWithTimestamps(ctx context.Context, table string) ([]models.KeyTimestamp, error)

	// AllRows streams every row of table in primary-key order.
	AllRows(ctx context.Context, table string) ([]models.Row, error)

	// Row fetches the single row of table with the given primary key. For
	// the blob table the binary payload is populated on the returned row.
	Row(ctx context.Context, table string, pk int64) (models.Row, error)

	// DeleteWhereKeyNot deletes every row of table whose primary key is
	// not in keys. An empty key set deletes all rows.
	DeleteWhereKeyNot(ctx context.Context, table string, keys []int64) error

	// ClearMoveFlags resets the move-off-tablet flag on every row of table.
	ClearMoveFlags(ctx context.Context, table string) error

	// WipeAll deletes every row from all task tables and the blob table.
	// When keepPatients is false the patient table is wiped as well.
	// Settings and the translation cache are never touched.
	WipeAll(ctx context.Context, keepPatients bool) error
}

// TaskFlagger mirrors a patient's move-off-tablet flag onto every task
// instance belonging to that patient. The upload engine depends only on this
// narrow capability, not on task internals.
type TaskFlagger interface {
	SetMoveFlagsForPatient(ctx context.Context, patientID int64, flagged bool) error
}

// PatientRepository reads patient master records for policy validation.
type PatientRepository interface {
	// AllPatients returns every patient record in the local database.
	AllPatients(ctx context.Context) ([]models.Patient, error)
}

// SettingsStore is the persisted key/value settings store. All accessors are
// typed; missing keys return zero values, never errors.
type SettingsStore interface {
	ServerURL(ctx context.Context) (string, error)
	SetServerURL(ctx context.Context, url string) error

	DeviceID(ctx context.Context) (string, error)
	SetDeviceID(ctx context.Context, id string) error

	// ServerIdentity loads the cached server identity metadata. Absent
	// fields come back as empty strings.
	ServerIdentity(ctx context.Context) (models.ServerIdentity, error)

	// SetServerIdentity overwrites every cached identity field from a
	// single server response, atomically.
	SetServerIdentity(ctx context.Context, identity models.ServerIdentity) error

	SetLastUpload(ctx context.Context, when time.Time, target string) error
	SetLastRegistration(ctx context.Context, when time.Time, target string) error

	OfferUploadAfterTask(ctx context.Context) (bool, error)
	SetOfferUploadAfterTask(ctx context.Context, offer bool) error
}

// ExtraStringsCache is the local cache of server-supplied translation
// strings (task name / string name / value triples).
type ExtraStringsCache interface {
	// ReplaceAll atomically replaces the entire cache with the given
	// triples: everything previously cached is deleted in the same
	// transaction that inserts the replacements.
	ReplaceAll(ctx context.Context, strings []models.ExtraString) error

	// Lookup returns the cached value for the task/name pair, or
	// ErrExtraStringNotFound.
	Lookup(ctx context.Context, task, name string) (string, error)
}
