package cmd

import (
	"fmt"

	"order-reconciler/core/config"
	"order-reconciler/core/credentials"
	"order-reconciler/core/database"
	"order-reconciler/core/logger"
	"order-reconciler/core/orderapi"
	"order-reconciler/core/sheets"
	"order-reconciler/core/storage"
	"order-reconciler/feature/orders"

	"go.uber.org/zap"
)

// buildService wires the order service the same way the server does, for
// one-shot CLI commands.
func buildService() (*orders.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect order database: %w", err)
	}

	store, err := orders.NewStore(db)
	if err != nil {
		return nil, nil, err
	}

	storageClient, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("create storage client: %w", err)
	}

	cache := credentials.NewCache(credentials.NewGoogleProvider(cfg.Credentials))
	ledger := sheets.NewClient(cfg.Sheets, cfg.Credentials, cache)
	orderAPI := orderapi.NewClient(cfg.OrderAPI)

	svc := orders.NewService(store, ledger, cfg.Sheets, orderAPI, storageClient, cfg.Storage.Bucket, logg)
	return svc, logg, nil
}
