package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinitab/uplink/internal/logger"
	"github.com/clinitab/uplink/models"
)

func newTestRecordStore(t *testing.T) (*recordStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	rs := newRecordStore(
		&DB{DB: db, logger: l},
		models.Catalogue{TaskTables: []string{"phq9", "gad7"}},
		l,
	)
	return rs, mock, db
}

func TestRecordStore_UnknownTableRejected(t *testing.T) {
	rs, _, db := newTestRecordStore(t)
	defer db.Close()

	ctx := context.Background()

	_, err := rs.CountRows(ctx, "dev_leftover_table")
	assert.ErrorIs(t, err, ErrUnknownTable)

	err = rs.DeleteWhereKeyNot(ctx, "dev_leftover_table", []int64{1})
	assert.ErrorIs(t, err, ErrUnknownTable)
}

func TestRecordStore_BlobTableAlwaysKnown(t *testing.T) {
	rs, mock, db := newTestRecordStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := rs.CountRows(context.Background(), models.BlobTable)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestRecordStore_PrimaryKeys(t *testing.T) {
	rs, mock, db := newTestRecordStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id FROM phq9").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2).AddRow(5))

	keys, err := rs.PrimaryKeys(context.Background(), "phq9")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 5}, keys)
}

func TestRecordStore_PrimaryKeysWithTimestamps(t *testing.T) {
	rs, mock, db := newTestRecordStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, when_last_modified FROM blobs").
		WillReturnRows(sqlmock.NewRows([]string{"id", "when_last_modified"}).
			AddRow(1, "2026-02-03T10:30:00.000Z").
			AddRow(2, "2026-02-04T09:00:00.000Z"))

	kts, err := rs.PrimaryKeysWithTimestamps(context.Background(), models.BlobTable)
	require.NoError(t, err)
	require.Len(t, kts, 2)
	assert.Equal(t, int64(1), kts[0].PK)
	assert.False(t, kts[0].UpdatedAt.IsZero())
	assert.True(t, kts[1].UpdatedAt.After(kts[0].UpdatedAt))
}

func TestRecordStore_DeleteWhereKeyNot_EmptyKeysDeletesAll(t *testing.T) {
	rs, mock, db := newTestRecordStore(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM phq9").
		WillReturnResult(sqlmock.NewResult(0, 7))

	require.NoError(t, rs.DeleteWhereKeyNot(context.Background(), "phq9", nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordStore_WipeAll(t *testing.T) {
	tests := []struct {
		name         string
		keepPatients bool
		wantDeletes  int
	}{
		{name: "move wipes patients too", keepPatients: false, wantDeletes: 4},
		{name: "move keeping patients", keepPatients: true, wantDeletes: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, mock, db := newTestRecordStore(t)
			defer db.Close()

			mock.ExpectBegin()
			for i := 0; i < tt.wantDeletes; i++ {
				mock.ExpectExec("DELETE FROM").WillReturnResult(sqlmock.NewResult(0, 1))
			}
			mock.ExpectCommit()

			require.NoError(t, rs.WipeAll(context.Background(), tt.keepPatients))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRecordStore_SetMoveFlagsForPatient(t *testing.T) {
	rs, mock, db := newTestRecordStore(t)
	defer db.Close()

	mock.ExpectExec("UPDATE phq9").
		WithArgs(1, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("UPDATE gad7").
		WithArgs(1, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, rs.SetMoveFlagsForPatient(context.Background(), 42, true))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParseTimestamp(t *testing.T) {
	assert.False(t, parseTimestamp("2026-02-03T10:30:00.000Z").IsZero())
	assert.False(t, parseTimestamp("2026-02-03 10:30:00").IsZero())
	assert.True(t, parseTimestamp("garbage").IsZero())
}
