package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/clinitab/uplink/internal/logger"
	"github.com/clinitab/uplink/models"
)

// Settings keys persisted in the storedvars table.
const (
	keyServerURL              = "serverUrl"
	keyDeviceID               = "deviceId"
	keyServerDatabaseTitle    = "serverDatabaseTitle"
	keyServerVersion          = "serverVersion"
	keyIDPolicyUpload         = "idPolicyUpload"
	keyIDPolicyFinalize       = "idPolicyFinalize"
	keyLastUpload             = "lastSuccessfulUpload"
	keyLastUploadTarget       = "lastSuccessfulUploadTarget"
	keyLastRegistration       = "lastRegistration"
	keyLastRegistrationTarget = "lastRegistrationTarget"
	keyOfferUploadAfterTask   = "offerUploadAfterTask"

	keyIDDescriptionPrefix      = "idDescription"
	keyIDShortDescriptionPrefix = "idShortDescription"
)

type settingsStore struct {
	*DB
	logger *logger.Logger
}

// NewSettingsStore wires a [SettingsStore] over the storedvars table.
func NewSettingsStore(db *DB, logger *logger.Logger) SettingsStore {
	return &settingsStore{DB: db, logger: logger}
}

func (s *settingsStore) get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.DB.QueryRowContext(ctx, getStoredVar, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	return value, nil
}

func (s *settingsStore) set(ctx context.Context, key, value string) error {
	if _, err := s.DB.ExecContext(ctx, upsertStoredVar, key, value); err != nil {
		return fmt.Errorf("failed to write setting %s: %w", key, err)
	}
	return nil
}

func (s *settingsStore) ServerURL(ctx context.Context) (string, error) {
	return s.get(ctx, keyServerURL)
}

func (s *settingsStore) SetServerURL(ctx context.Context, url string) error {
	return s.set(ctx, keyServerURL, url)
}

func (s *settingsStore) DeviceID(ctx context.Context) (string, error) {
	return s.get(ctx, keyDeviceID)
}

func (s *settingsStore) SetDeviceID(ctx context.Context, id string) error {
	return s.set(ctx, keyDeviceID, id)
}

func (s *settingsStore) ServerIdentity(ctx context.Context) (models.ServerIdentity, error) {
	var identity models.ServerIdentity
	var err error

	if identity.DatabaseTitle, err = s.get(ctx, keyServerDatabaseTitle); err != nil {
		return models.ServerIdentity{}, err
	}
	if identity.ServerVersion, err = s.get(ctx, keyServerVersion); err != nil {
		return models.ServerIdentity{}, err
	}
	if identity.UploadPolicy, err = s.get(ctx, keyIDPolicyUpload); err != nil {
		return models.ServerIdentity{}, err
	}
	if identity.FinalizePolicy, err = s.get(ctx, keyIDPolicyFinalize); err != nil {
		return models.ServerIdentity{}, err
	}

	for i := range identity.IDSlots {
		slot := strconv.Itoa(i + 1)
		if identity.IDSlots[i].Description, err = s.get(ctx, keyIDDescriptionPrefix+slot); err != nil {
			return models.ServerIdentity{}, err
		}
		if identity.IDSlots[i].ShortDescription, err = s.get(ctx, keyIDShortDescriptionPrefix+slot); err != nil {
			return models.ServerIdentity{}, err
		}
	}

	return identity, nil
}

func (s *settingsStore) SetServerIdentity(ctx context.Context, identity models.ServerIdentity) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin identity transaction: %w", err)
	}
	defer tx.Rollback()

	pairs := []struct{ key, value string }{
		{keyServerDatabaseTitle, identity.DatabaseTitle},
		{keyServerVersion, identity.ServerVersion},
		{keyIDPolicyUpload, identity.UploadPolicy},
		{keyIDPolicyFinalize, identity.FinalizePolicy},
	}
	for i, slot := range identity.IDSlots {
		n := strconv.Itoa(i + 1)
		pairs = append(pairs,
			struct{ key, value string }{keyIDDescriptionPrefix + n, slot.Description},
			struct{ key, value string }{keyIDShortDescriptionPrefix + n, slot.ShortDescription},
		)
	}

	for _, p := range pairs {
		if _, err := tx.ExecContext(ctx, upsertStoredVar, p.key, p.value); err != nil {
			return fmt.Errorf("failed to write setting %s: %w", p.key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit identity transaction: %w", err)
	}
	return nil
}

func (s *settingsStore) SetLastUpload(ctx context.Context, when time.Time, target string) error {
	if err := s.set(ctx, keyLastUpload, when.UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	return s.set(ctx, keyLastUploadTarget, target)
}

func (s *settingsStore) SetLastRegistration(ctx context.Context, when time.Time, target string) error {
	if err := s.set(ctx, keyLastRegistration, when.UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	return s.set(ctx, keyLastRegistrationTarget, target)
}

func (s *settingsStore) OfferUploadAfterTask(ctx context.Context) (bool, error) {
	value, err := s.get(ctx, keyOfferUploadAfterTask)
	if err != nil {
		return false, err
	}
	return value == "1" || value == "true", nil
}

func (s *settingsStore) SetOfferUploadAfterTask(ctx context.Context, offer bool) error {
	value := "0"
	if offer {
		value = "1"
	}
	return s.set(ctx, keyOfferUploadAfterTask, value)
}
