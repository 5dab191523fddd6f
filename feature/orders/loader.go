package orders

import (
	"order-reconciler/core/orderapi"
	"order-reconciler/core/sheets"
	"order-reconciler/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Orders feature.
func NewFeature(db *gorm.DB, ledger sheets.Client, ledgerCfg sheets.Config, orderAPI orderapi.Client, storageClient storage.Client, bucket string, logger *zap.Logger) (*Feature, error) {
	store, err := NewStore(db)
	if err != nil {
		return nil, err
	}
	svc := NewService(store, ledger, ledgerCfg, orderAPI, storageClient, bucket, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}, nil
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "orders"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
