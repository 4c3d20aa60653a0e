// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with the upload server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol: one typed method per wire operation,
// so malformed payloads are compile-time errors. The package ships an HTTP
// implementation ([NewHTTPServerAdapter]) posting form-encoded key/value
// requests.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/clinitab/uplink/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the upload
// server. Implementations are responsible for serialisation, session
// credential management, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// Every method performs exactly one request/response exchange and returns
// only after the server has acknowledged the operation; the upload engine's
// strict step ordering rests on that.
type ServerAdapter interface {
	// SetCredentials stores the session credentials attached to every
	// subsequent request: the device identifier, the upload user account,
	// and the temporary session token issued by the server.
	SetCredentials(deviceID, user, sessionToken string)

	// ClearCredentials discards the temporary session credentials. Called
	// unconditionally at session end, whatever the outcome.
	ClearCredentials()

	// CheckDeviceRegistered verifies that this device is known to the
	// server. Kept as its own round trip so a failure is unambiguous on
	// transports that do not surface HTTP error detail reliably.
	CheckDeviceRegistered(ctx context.Context) error

	// CheckUploadUser verifies that the configured user may upload from
	// this device. Deliberately separate from CheckDeviceRegistered, for
	// the same diagnosability reason.
	CheckUploadUser(ctx context.Context) error

	// GetIDInfo fetches the server's current identity metadata: database
	// title, software version, identifier policies, and per-slot
	// identifier descriptions. Absent reply fields come back as empty
	// strings, never as an error.
	GetIDInfo(ctx context.Context) (models.ServerIdentity, error)

	// RegisterDevice registers this device under the given human-readable
	// name and returns the server identity from the same response.
	RegisterDevice(ctx context.Context, deviceName string) (models.ServerIdentity, error)

	// GetExtraStrings fetches the server's full translation-string table.
	GetExtraStrings(ctx context.Context) ([]models.ExtraString, error)

	// StartUpload marks the beginning of an upload transaction on the
	// server.
	StartUpload(ctx context.Context) error

	// StartPreservation marks that source data will be retired after this
	// upload. Never sent for copy-mode sessions.
	StartPreservation(ctx context.Context) error

	// UploadEmptyTables notifies the server, in one round trip, of every
	// selected table that has no local rows.
	UploadEmptyTables(ctx context.Context, tables []string) error

	// UploadTable sends a whole table in a single request.
	UploadTable(ctx context.Context, table string, fields []string, rows []models.Row) error

	// UploadRecord sends a single row. If row.Blob is non-nil the binary
	// payload is inlined (base64) alongside the description fields.
	UploadRecord(ctx context.Context, table string, fields []string, row models.Row) error

	// DeleteWhereKeyNot asks the server to delete every row of table whose
	// primary key is not in keys, so the server ends with exactly the
	// local key set before record streaming begins.
	DeleteWhereKeyNot(ctx context.Context, table string, keys []int64) error

	// WhichKeysToSend offers the server every local primary key with its
	// modification timestamp; the reply is the subset of keys the server
	// still needs. An empty reply means the table is fully synced.
	WhichKeysToSend(ctx context.Context, table string, keys []models.KeyTimestamp) ([]int64, error)

	// EndUpload commits the upload transaction on the server.
	EndUpload(ctx context.Context) error
}
