package models

// TransferStrategy selects how one table's rows travel to the server.
type TransferStrategy int

const (
	// StrategyBulk sends the whole table in a single upload_table request.
	StrategyBulk TransferStrategy = iota

	// StrategyRecordwise reconciles the server's key set first
	// (delete_where_key_not) and then streams one upload_record request per
	// row. Used when the estimated whole-table payload is too large.
	StrategyRecordwise

	// StrategyBlob asks the server which keys it still needs
	// (which_keys_to_send, keyed by modification timestamp) and sends only
	// those rows, binary payload inlined.
	StrategyBlob
)

func (s TransferStrategy) String() string {
	switch s {
	case StrategyBulk:
		return "bulk"
	case StrategyRecordwise:
		return "recordwise"
	case StrategyBlob:
		return "blob"
	default:
		return "unknown"
	}
}

// TableTransfer is the per-table transfer descriptor: the table name, its
// ordered field list, and the chosen strategy.
type TableTransfer struct {
	Table    string
	Fields   []string
	Strategy TransferStrategy
}
