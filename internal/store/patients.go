package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/clinitab/uplink/internal/logger"
	"github.com/clinitab/uplink/models"
)

type patientRepository struct {
	*DB
	logger *logger.Logger
}

// NewPatientRepository wires a [PatientRepository] over the patient table.
func NewPatientRepository(db *DB, logger *logger.Logger) PatientRepository {
	return &patientRepository{DB: db, logger: logger}
}

func (p *patientRepository) AllPatients(ctx context.Context) ([]models.Patient, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, getAllPatients)
	if err != nil {
		log.Err(err).
			Str("func", "patientRepository.AllPatients").
			Msg("failed to query patient records")
		return nil, fmt.Errorf("failed to query patient records: %w", err)
	}
	defer rows.Close()

	var patients []models.Patient
	for rows.Next() {
		var (
			pat      models.Patient
			idnums   [models.IDSlotCount]sql.NullInt64
			moveFlag int
		)
		if err := rows.Scan(
			&pat.ID,
			&pat.Forename,
			&pat.Surname,
			&pat.DOB,
			&pat.Sex,
			&idnums[0], &idnums[1], &idnums[2], &idnums[3],
			&idnums[4], &idnums[5], &idnums[6], &idnums[7],
			&moveFlag,
		); err != nil {
			log.Err(err).
				Str("func", "patientRepository.AllPatients").
				Msg("failed to scan patient row")
			return nil, fmt.Errorf("failed to scan patient row: %w", err)
		}

		pat.IDNums = make(map[int]int64)
		for i, v := range idnums {
			if v.Valid {
				pat.IDNums[i+1] = v.Int64
			}
		}
		pat.MoveOffTablet = moveFlag != 0

		patients = append(patients, pat)
	}

	return patients, rows.Err()
}
