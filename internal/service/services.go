package service

import (
	"github.com/clinitab/uplink/internal/adapter"
	"github.com/clinitab/uplink/internal/config"
	"github.com/clinitab/uplink/internal/logger"
	"github.com/clinitab/uplink/internal/store"
	"github.com/clinitab/uplink/models"
)

// ClientServices aggregates the client's business-logic services.
type ClientServices struct {
	Upload       UploadService
	Registration RegistrationService
}

// NewClientServices wires every service to the shared storages and server
// adapter.
func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	catalogue models.Catalogue,
	cfg *config.ClientConfig,
	log *logger.Logger,
) *ClientServices {
	return &ClientServices{
		Upload:       NewUploadService(storages, serverAdapter, catalogue, cfg, log),
		Registration: NewRegistrationService(storages, serverAdapter, cfg, log),
	}
}
