package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinitab/uplink/internal/logger"
	"github.com/clinitab/uplink/models"
)

func newTestSettings(t *testing.T) (*settingsStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	s := &settingsStore{DB: &DB{DB: db, logger: l}, logger: l}
	return s, mock, db
}

func TestSettings_Get_MissingKeyIsEmpty(t *testing.T) {
	s, mock, db := newTestSettings(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value").
		WithArgs("serverUrl").
		WillReturnError(sql.ErrNoRows)

	url, err := s.ServerURL(context.Background())
	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestSettings_SetAndGetServerURL(t *testing.T) {
	s, mock, db := newTestSettings(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO storedvars").
		WithArgs("serverUrl", "https://clinic.example.com/api").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.SetServerURL(context.Background(), "https://clinic.example.com/api"))

	mock.ExpectQuery("SELECT value").
		WithArgs("serverUrl").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("https://clinic.example.com/api"))

	url, err := s.ServerURL(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://clinic.example.com/api", url)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettings_SetServerIdentity_SingleTransaction(t *testing.T) {
	s, mock, db := newTestSettings(t)
	defer db.Close()

	identity := models.ServerIdentity{
		DatabaseTitle:  "Ward 7 research DB",
		ServerVersion:  "2.3.1",
		UploadPolicy:   "forename AND surname",
		FinalizePolicy: "forename AND surname AND idnum1",
	}
	identity.IDSlots[0] = models.IDSlotDescription{Description: "NHS number", ShortDescription: "NHS#"}

	mock.ExpectBegin()
	// 4 scalar fields + 8 slots x 2 descriptions
	for i := 0; i < 4+models.IDSlotCount*2; i++ {
		mock.ExpectExec("INSERT INTO storedvars").WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, s.SetServerIdentity(context.Background(), identity))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettings_SetServerIdentity_RollsBackOnError(t *testing.T) {
	s, mock, db := newTestSettings(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO storedvars").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := s.SetServerIdentity(context.Background(), models.ServerIdentity{DatabaseTitle: "t"})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettings_SetLastUpload_WritesTimestampAndTarget(t *testing.T) {
	s, mock, db := newTestSettings(t)
	defer db.Close()

	when := time.Date(2026, 2, 3, 10, 30, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO storedvars").
		WithArgs("lastSuccessfulUpload", "2026-02-03T10:30:00Z").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO storedvars").
		WithArgs("lastSuccessfulUploadTarget", "https://clinic.example.com (Ward 7)").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.SetLastUpload(context.Background(), when, "https://clinic.example.com (Ward 7)"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettings_OfferUploadAfterTask(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "numeric true", value: "1", want: true},
		{name: "text true", value: "true", want: true},
		{name: "numeric false", value: "0", want: false},
		{name: "empty", value: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock, db := newTestSettings(t)
			defer db.Close()

			mock.ExpectQuery("SELECT value").
				WithArgs("offerUploadAfterTask").
				WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(tt.value))

			offer, err := s.OfferUploadAfterTask(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, offer)
		})
	}
}
