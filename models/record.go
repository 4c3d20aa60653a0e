package models

import "time"

// Row is one local record prepared for transfer. Values are the textual
// renderings of every non-blob column, in the same order as the table's field
// name list. Blob carries the binary payload for blob-table rows and is nil
// for everything else.
type Row struct {
	PK     int64
	Values []string
	Blob   []byte
}

// KeyTimestamp pairs a primary key with its last-modification time, used by
// the blob delta protocol so the server can name the keys it still needs.
type KeyTimestamp struct {
	PK        int64
	UpdatedAt time.Time
}

// ExtraString is one server-supplied translation triple: a task name, a
// string name within that task, and the display value.
type ExtraString struct {
	Task  string
	Name  string
	Value string
}
