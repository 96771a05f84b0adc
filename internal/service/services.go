package service

import (
	"fmt"

	"github.com/MKhiriev/nudge/internal/adapter"
	"github.com/MKhiriev/nudge/internal/config"
	"github.com/MKhiriev/nudge/internal/crypto"
	"github.com/MKhiriev/nudge/internal/expiry"
	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/internal/store"
	"github.com/MKhiriev/nudge/internal/validators"
)

// Services groups the server-side services.
type Services struct {
	AuthService    AuthService
	ItemService    ItemService
	AppInfoService AppInfoService
	HealthService  HealthService
	DigestService  DigestService
}

// NewServices wires the server services on top of storages.
func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	var cipher crypto.FieldCipher
	if cfg.App.NameEncryptionKey != "" {
		nameCipher, cipherErr := crypto.NewNameCipher(cfg.App.NameEncryptionKey)
		if cipherErr != nil {
			return nil, fmt.Errorf("error creating name cipher: %w", cipherErr)
		}
		cipher = nameCipher
	} else {
		logger.Warn().Msg("name encryption key is not set, item names are stored in plaintext")
	}

	classifier := expiry.NewClassifier(expiry.WithLocation(cfg.Location))
	itemService := NewItemValidationService(validators.NewItemValidator(nil)).
		Wrap(NewItemService(storages.ItemRepository, classifier, cipher, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, crypto.NewBcryptHasher(0), cfg.App, logger),
		ItemService:    itemService,
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages.Pinger, logger),
		DigestService:  NewDigestService(storages.ItemRepository, classifier, logger),
	}, nil
}

// ClientServices groups the services of the terminal client.
type ClientServices struct {
	AuthService ClientAuthService
	Remote      ItemSource
	Guest       ItemSource
	Adapter     adapter.ServerAdapter
}

// NewClientServices wires the client services on the local store kv.
func NewClientServices(kv store.KeyValue, serverAdapter adapter.ServerAdapter, classifier *expiry.Classifier, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(serverAdapter, kv, logger),
		Remote:      NewRemoteItemService(serverAdapter, classifier, logger),
		Guest:       NewGuestItemService(store.NewGuestItemRepository(kv), classifier, logger),
		Adapter:     serverAdapter,
	}
}
