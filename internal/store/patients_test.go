package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinitab/uplink/internal/logger"
)

func newTestPatientRepo(t *testing.T) (*patientRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &patientRepository{DB: &DB{DB: db, logger: l}, logger: l}
	return repo, mock, db
}

func patientColumns() []string {
	return []string{
		"id", "forename", "surname", "dob", "sex",
		"idnum1", "idnum2", "idnum3", "idnum4",
		"idnum5", "idnum6", "idnum7", "idnum8",
		"_move_off_tablet",
	}
}

func TestAllPatients(t *testing.T) {
	repo, mock, db := newTestPatientRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(patientColumns()).
		AddRow(1, "Ada", "Lovelace", "1815-12-10", "F", 12345, nil, nil, nil, nil, nil, nil, nil, 1).
		AddRow(2, "Tom", "", "", "M", nil, nil, nil, nil, nil, nil, nil, nil, 0)

	mock.ExpectQuery("SELECT(.|\n)+FROM patient").WillReturnRows(rows)

	patients, err := repo.AllPatients(context.Background())
	require.NoError(t, err)
	require.Len(t, patients, 2)

	assert.Equal(t, "Ada", patients[0].Forename)
	assert.True(t, patients[0].MoveOffTablet)
	assert.True(t, patients[0].HasIDNum(1))
	assert.False(t, patients[0].HasIDNum(2))

	assert.False(t, patients[1].MoveOffTablet)
	assert.False(t, patients[1].HasAnyIDNum())
}

func TestAllPatients_QueryError(t *testing.T) {
	repo, mock, db := newTestPatientRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT(.|\n)+FROM patient").WillReturnError(assert.AnError)

	_, err := repo.AllPatients(context.Background())
	require.Error(t, err)
}
