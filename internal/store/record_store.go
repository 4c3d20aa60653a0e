package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/clinitab/uplink/internal/logger"
	"github.com/clinitab/uplink/models"
)

// Column names shared by every transferable table.
const (
	pkColumn       = "id"
	moveFlagColumn = "_move_off_tablet"
	modifiedColumn = "when_last_modified"
	blobColumn     = "theblob"
)

// recordStore is the squirrel-backed implementation of [RecordStore] and
// [TaskFlagger]. Table and field names are runtime data here (the task
// catalogue decides what exists), so statements are built dynamically rather
// than kept as constants.
type recordStore struct {
	*DB
	catalogue models.Catalogue
	logger    *logger.Logger
}

// NewRecordStore wires a [RecordStore] over the given database handle,
// scoped to the tables the catalogue declares. The returned value also
// implements [TaskFlagger].
func NewRecordStore(db *DB, catalogue models.Catalogue, logger *logger.Logger) RecordStore {
	return newRecordStore(db, catalogue, logger)
}

func newRecordStore(db *DB, catalogue models.Catalogue, logger *logger.Logger) *recordStore {
	return &recordStore{
		DB:        db,
		catalogue: catalogue,
		logger:    logger,
	}
}

// knownTable guards dynamic SQL: only catalogue tables, the blob table, and
// the fixed system tables may be interpolated as identifiers.
func (r *recordStore) knownTable(table string) error {
	if table == models.BlobTable {
		return nil
	}
	for _, t := range r.catalogue.KnownTables() {
		if t == table {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownTable, table)
}

func (r *recordStore) TableNames(ctx context.Context) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, listUserTables)
	if err != nil {
		return nil, fmt.Errorf("failed to list local tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *recordStore) FieldNames(ctx context.Context, table string) ([]string, error) {
	if err := r.knownTable(table); err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, fmt.Sprintf(`PRAGMA table_info(%q)`, table))
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}
	defer rows.Close()

	var fields []string
	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notnull    int
			dflt       sql.NullString
			primaryKey int
		)
		if err := rows.Scan(&cid, &name, &typ, &notnull, &dflt, &primaryKey); err != nil {
			return nil, fmt.Errorf("failed to scan column info of %s: %w", table, err)
		}
		if name == blobColumn {
			// binary payload travels as its own wire field
			continue
		}
		fields = append(fields, name)
	}
	return fields, rows.Err()
}

func (r *recordStore) CountRows(ctx context.Context, table string) (int64, error) {
	if err := r.knownTable(table); err != nil {
		return 0, err
	}

	query, args, err := sq.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query for %s: %w", table, err)
	}

	var n int64
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count rows of %s: %w", table, err)
	}
	return n, nil
}

func (r *recordStore) PrimaryKeys(ctx context.Context, table string) ([]int64, error) {
	if err := r.knownTable(table); err != nil {
		return nil, err
	}

	query, args, err := sq.Select(pkColumn).From(table).OrderBy(pkColumn).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build key query for %s: %w", table, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys of %s: %w", table, err)
	}
	defer rows.Close()

	var keys []int64
	for rows.Next() {
		var pk int64
		if err := rows.Scan(&pk); err != nil {
			return nil, fmt.Errorf("failed to scan key of %s: %w", table, err)
		}
		keys = append(keys, pk)
	}
	return keys, rows.Err()
}

func (r *recordStore) PrimaryKeysWithTimestamps(ctx context.Context, table string) ([]models.KeyTimestamp, error) {
	if err := r.knownTable(table); err != nil {
		return nil, err
	}

	query, args, err := sq.Select(pkColumn, modifiedColumn).From(table).OrderBy(pkColumn).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build key/timestamp query for %s: %w", table, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys of %s: %w", table, err)
	}
	defer rows.Close()

	var kts []models.KeyTimestamp
	for rows.Next() {
		var (
			pk       int64
			modified string
		)
		if err := rows.Scan(&pk, &modified); err != nil {
			return nil, fmt.Errorf("failed to scan key/timestamp of %s: %w", table, err)
		}
		kts = append(kts, models.KeyTimestamp{PK: pk, UpdatedAt: parseTimestamp(modified)})
	}
	return kts, rows.Err()
}

func (r *recordStore) AllRows(ctx context.Context, table string) ([]models.Row, error) {
	fields, err := r.FieldNames(ctx, table)
	if err != nil {
		return nil, err
	}

	query, args, err := sq.Select(fields...).From(table).OrderBy(pkColumn).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build row query for %s: %w", table, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to stream rows of %s: %w", table, err)
	}
	defer rows.Close()

	var out []models.Row
	for rows.Next() {
		row, err := scanRow(rows, fields, false)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row of %s: %w", table, err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *recordStore) Row(ctx context.Context, table string, pk int64) (models.Row, error) {
	fields, err := r.FieldNames(ctx, table)
	if err != nil {
		return models.Row{}, err
	}

	withBlob := table == models.BlobTable
	cols := fields
	if withBlob {
		cols = append(append([]string{}, fields...), blobColumn)
	}

	query, args, err := sq.Select(cols...).From(table).Where(sq.Eq{pkColumn: pk}).ToSql()
	if err != nil {
		return models.Row{}, fmt.Errorf("failed to build row query for %s: %w", table, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return models.Row{}, fmt.Errorf("failed to fetch row %d of %s: %w", pk, table, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return models.Row{}, fmt.Errorf("failed to fetch row %d of %s: %w", pk, table, err)
		}
		return models.Row{}, fmt.Errorf("%w: %s pk=%d", ErrRowNotFound, table, pk)
	}

	row, err := scanRow(rows, fields, withBlob)
	if err != nil {
		return models.Row{}, fmt.Errorf("failed to scan row %d of %s: %w", pk, table, err)
	}
	return row, nil
}

func (r *recordStore) DeleteWhereKeyNot(ctx context.Context, table string, keys []int64) error {
	if err := r.knownTable(table); err != nil {
		return err
	}

	del := sq.Delete(table)
	if len(keys) > 0 {
		del = del.Where(sq.NotEq{pkColumn: keys})
	}
	query, args, err := del.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build prune query for %s: %w", table, err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to prune rows of %s: %w", table, err)
	}
	return nil
}

func (r *recordStore) ClearMoveFlags(ctx context.Context, table string) error {
	fields, err := r.FieldNames(ctx, table)
	if err != nil {
		return err
	}
	if !containsField(fields, moveFlagColumn) {
		return nil
	}

	query, args, err := sq.Update(table).Set(moveFlagColumn, 0).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build flag-clear query for %s: %w", table, err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear move flags of %s: %w", table, err)
	}
	return nil
}

func (r *recordStore) WipeAll(ctx context.Context, keepPatients bool) error {
	tables := append([]string{}, r.catalogue.TaskTables...)
	tables = append(tables, models.BlobTable)
	if !keepPatients {
		tables = append(tables, models.PatientTable)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin wipe transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range tables {
		query, args, err := sq.Delete(table).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build wipe query for %s: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to wipe %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit wipe transaction: %w", err)
	}
	return nil
}

// SetMoveFlagsForPatient implements [TaskFlagger]: the patient-level move
// flag is mirrored onto every task instance belonging to the patient, per
// task table in the catalogue.
func (r *recordStore) SetMoveFlagsForPatient(ctx context.Context, patientID int64, flagged bool) error {
	value := 0
	if flagged {
		value = 1
	}

	for _, table := range r.catalogue.TaskTables {
		query, args, err := sq.Update(table).
			Set(moveFlagColumn, value).
			Where(sq.Eq{"patient_id": patientID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build move-flag query for %s: %w", table, err)
		}
		if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to set move flags of %s: %w", table, err)
		}
	}
	return nil
}

func containsField(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}

func scanRow(rows *sql.Rows, fields []string, withBlob bool) (models.Row, error) {
	values := make([]sql.NullString, len(fields))
	dest := make([]any, 0, len(fields)+1)
	for i := range values {
		dest = append(dest, &values[i])
	}

	var blob []byte
	if withBlob {
		dest = append(dest, &blob)
	}

	if err := rows.Scan(dest...); err != nil {
		return models.Row{}, err
	}

	row := models.Row{Values: make([]string, len(fields)), Blob: blob}
	for i, v := range values {
		if v.Valid {
			row.Values[i] = v.String
		}
		if fields[i] == pkColumn {
			// pk is carried redundantly for convenience
			if pk, ok := parseInt64(v.String); ok {
				row.PK = pk
			}
		}
	}
	return row, nil
}

func parseInt64(s string) (int64, bool) {
	var n int64
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, false
	}
	return n, true
}

// parseTimestamp accepts the ISO-8601 layouts SQLite's strftime produces.
// Unparsable values map to the zero time, which the blob delta protocol
// treats as "always stale" (the server is offered the key regardless).
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05.999999999", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
