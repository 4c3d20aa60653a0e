package store

import "errors"

var (
	// ErrUnknownTable is returned when a table name outside the task
	// catalogue is passed to a destructive record-store operation.
	ErrUnknownTable = errors.New("table not in catalogue")

	// ErrRowNotFound is returned when a requested primary key does not
	// exist in the given table.
	ErrRowNotFound = errors.New("row not found")

	// ErrExtraStringNotFound is returned by ExtraStringsCache.Lookup for
	// an uncached task/name pair.
	ErrExtraStringNotFound = errors.New("extra string not found")
)
