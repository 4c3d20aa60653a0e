package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clinitab/uplink/internal/adapter"
	"github.com/clinitab/uplink/internal/config"
	"github.com/clinitab/uplink/internal/logger"
	"github.com/clinitab/uplink/internal/store"
	"github.com/clinitab/uplink/models"
)

type registrationService struct {
	settings store.SettingsStore
	strings  store.ExtraStringsCache

	adapter   adapter.ServerAdapter
	device    config.ClientDevice
	serverURL string

	logger *logger.Logger
}

// NewRegistrationService wires the registration/metadata engine to its
// collaborators.
func NewRegistrationService(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	cfg *config.ClientConfig,
	log *logger.Logger,
) RegistrationService {
	return &registrationService{
		settings:  storages.Settings,
		strings:   storages.ExtraStrings,
		adapter:   serverAdapter,
		device:    cfg.Device,
		serverURL: cfg.Adapter.ServerURL,
		logger:    log,
	}
}

// Register implements [RegistrationService]. A device ID is generated on
// first registration and reused afterwards, so re-registering against a new
// server keeps the device's identity stable.
func (s *registrationService) Register(ctx context.Context) error {
	deviceID, err := s.settings.DeviceID(ctx)
	if err != nil {
		return fmt.Errorf("read device ID: %w", err)
	}
	if deviceID == "" {
		deviceID = uuid.NewString()
		if err = s.settings.SetDeviceID(ctx, deviceID); err != nil {
			return fmt.Errorf("persist device ID: %w", err)
		}
	}

	s.adapter.SetCredentials(deviceID, s.device.User, "")
	defer s.adapter.ClearCredentials()

	identity, err := s.adapter.RegisterDevice(ctx, s.device.Name)
	if err != nil {
		return fmt.Errorf("register device: %w", err)
	}

	if err = s.persistIdentity(ctx, identity, true); err != nil {
		return err
	}

	s.logger.Info().Str("device", deviceID).Msg("device registered")

	if err = s.refreshStrings(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStringsRefreshFailed, err)
	}
	return nil
}

// RefreshServerInfo implements [RegistrationService].
func (s *registrationService) RefreshServerInfo(ctx context.Context) error {
	deviceID, err := s.settings.DeviceID(ctx)
	if err != nil {
		return fmt.Errorf("read device ID: %w", err)
	}
	if deviceID == "" {
		return ErrDeviceNotRegistered
	}

	s.adapter.SetCredentials(deviceID, s.device.User, "")
	defer s.adapter.ClearCredentials()

	identity, err := s.adapter.GetIDInfo(ctx)
	if err != nil {
		return fmt.Errorf("fetch identity info: %w", err)
	}
	if err = s.persistIdentity(ctx, identity, false); err != nil {
		return err
	}

	if err = s.refreshStrings(ctx); err != nil {
		return fmt.Errorf("refresh translation strings: %w", err)
	}
	return nil
}

// persistIdentity overwrites the cached server identity atomically and, for
// a fresh registration, records the registration time and target.
func (s *registrationService) persistIdentity(ctx context.Context, identity models.ServerIdentity, registered bool) error {
	if err := s.settings.SetServerIdentity(ctx, identity); err != nil {
		return fmt.Errorf("persist server identity: %w", err)
	}
	if !registered {
		return nil
	}

	// the registered endpoint becomes the sync target every later upload
	// reads from settings
	if err := s.settings.SetServerURL(ctx, s.serverURL); err != nil {
		return fmt.Errorf("persist server address: %w", err)
	}
	if err := s.settings.SetLastRegistration(ctx, time.Now(), s.serverURL); err != nil {
		return fmt.Errorf("record registration time: %w", err)
	}
	return nil
}

// refreshStrings replaces the entire local translation cache from a single
// server response.
func (s *registrationService) refreshStrings(ctx context.Context) error {
	strs, err := s.adapter.GetExtraStrings(ctx)
	if err != nil {
		return fmt.Errorf("fetch translation strings: %w", err)
	}
	if err = s.strings.ReplaceAll(ctx, strs); err != nil {
		return fmt.Errorf("replace translation cache: %w", err)
	}
	s.logger.Debug().Int("count", len(strs)).Msg("translation strings refreshed")
	return nil
}
