package models

// Fixed system table names in the local database.
const (
	// PatientTable holds patient master records.
	PatientTable = "patient"
	// StoredVarsTable holds persisted key/value settings. Never uploaded
	// as part of table transfer, but declared so that table selection can
	// recognise it.
	StoredVarsTable = "storedvars"
	// BlobTable holds binary attachments referenced by task tables. It is
	// appended to every upload session unconditionally and always uses the
	// blob transfer strategy.
	BlobTable = "blobs"
)

// SystemTables are the fixed tables included in the transferable set
// alongside whatever task tables the catalogue declares.
var SystemTables = []string{PatientTable, StoredVarsTable}

// Catalogue declares the task tables this client build knows how to
// describe. Tables present locally but not declared here are never
// transferred and never deleted.
type Catalogue struct {
	TaskTables []string
}

// KnownTables returns every table name the catalogue declares ownership of:
// the task tables plus the fixed system tables. The result is a fresh slice
// the caller may mutate.
func (c Catalogue) KnownTables() []string {
	known := make([]string, 0, len(c.TaskTables)+len(SystemTables))
	known = append(known, c.TaskTables...)
	known = append(known, SystemTables...)
	return known
}
