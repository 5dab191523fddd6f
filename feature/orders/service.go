package orders

import (
	"context"
	"fmt"
	"time"

	"order-reconciler/core/orderapi"
	"order-reconciler/core/sheets"
	"order-reconciler/core/storage"
	"order-reconciler/feature/orders/models"
	"order-reconciler/feature/orders/reconcile"

	"go.uber.org/zap"
)

// Service orchestrates the order store, the spreadsheet ledger and the
// order-management API.
type Service struct {
	store     *Store
	ledger    sheets.Client
	ledgerCfg sheets.Config
	orderAPI  orderapi.Client
	engine    *reconcile.Engine
	storage   storage.Client
	bucket    string
	logger    *zap.Logger
}

// NewService creates a new order service.
func NewService(store *Store, ledger sheets.Client, ledgerCfg sheets.Config, orderAPI orderapi.Client, storageClient storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		store:     store,
		ledger:    ledger,
		ledgerCfg: ledgerCfg,
		orderAPI:  orderAPI,
		engine:    reconcile.NewEngine(store, logger),
		storage:   storageClient,
		bucket:    bucket,
		logger:    logger,
	}
}

// Create stores a new order under both keys and appends its rows to the
// ledger tabs. The local write and the remote appends are not one
// transaction: the ledger append can fail after the local write succeeded,
// and the error then reports exactly that.
func (s *Service) Create(ctx context.Context, order *models.Order) error {
	if order.ID == "" {
		fresh := models.NewOrder()
		fresh.Marketplace = order.Marketplace
		order.ID = fresh.ID
		order.CreatedAt = fresh.CreatedAt
		order.UpdatedAt = fresh.UpdatedAt
	}

	if err := s.store.Put(order); err != nil {
		return err
	}

	if err := s.ledger.Append(ctx, s.ledgerCfg.PrimarySheet, ToPrimaryRow(order)); err != nil {
		return fmt.Errorf("order stored locally but primary ledger append failed: %w", err)
	}
	if err := s.ledger.Append(ctx, s.ledgerCfg.SecondarySheet, ToSecondaryRow(order)); err != nil {
		return fmt.Errorf("order stored locally but secondary ledger append failed: %w", err)
	}

	s.logger.Info("order created", zap.String("order_id", order.OrderID))
	return nil
}

// Get returns the order stored under the given key, nil when absent.
func (s *Service) Get(key string) (*models.Order, error) {
	return s.store.GetSingle(key)
}

// List returns every stored key entry, never nil.
func (s *Service) List() ([]models.Order, error) {
	all, err := s.store.GetAll()
	if err != nil {
		return nil, err
	}
	if all == nil {
		return []models.Order{}, nil
	}
	return all, nil
}

// Update overwrites the stored order and, when it carries a row number,
// its row in the primary ledger tab.
func (s *Service) Update(ctx context.Context, order *models.Order) error {
	order.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.store.Put(order); err != nil {
		return err
	}

	if order.RowNumber != nil {
		values := [][]string{ToPrimaryRow(order)}
		if err := s.ledger.UpdateRow(ctx, s.ledgerCfg.PrimarySheet, *order.RowNumber, values); err != nil {
			return fmt.Errorf("order stored locally but ledger update failed: %w", err)
		}
	}

	s.logger.Info("order updated", zap.String("order_id", order.OrderID))
	return nil
}

// Delete removes the given key from the store. The order's other key and
// the ledger rows are untouched.
func (s *Service) Delete(key string) error {
	return s.store.Delete(key)
}

// IngestAll pulls both ledger tabs and bulk-loads them into the store. The
// two fetches run sequentially and the batch commits in ascending row
// order, or not at all.
func (s *Service) IngestAll(ctx context.Context) (int, error) {
	primary, err := s.ledger.Values(ctx, s.ledgerCfg.PrimarySheet+"!A:Z")
	if err != nil {
		return 0, fmt.Errorf("fetch primary tab: %w", err)
	}
	secondary, err := s.ledger.Values(ctx, s.ledgerCfg.SecondarySheet+"!A:Z")
	if err != nil {
		return 0, fmt.Errorf("fetch secondary tab: %w", err)
	}

	s.logger.Info("ingesting ledger rows",
		zap.Int("primary_rows", len(primary)),
		zap.Int("secondary_rows", len(secondary)),
	)

	processed, err := s.store.InsertAll(primary, secondary)
	if err != nil {
		return 0, err
	}

	s.logger.Info("ingest committed", zap.Int("rows", processed))
	return processed, nil
}

// Match fetches the order document for the given external numeric id and
// asks the reconciliation engine to resolve it against the local store.
func (s *Service) Match(ctx context.Context, numOrderID string) (*reconcile.Outcome, error) {
	token, err := s.orderAPI.Authorize(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := s.orderAPI.OrderByNum(ctx, token, numOrderID)
	if err != nil {
		return nil, err
	}

	return s.engine.Resolve(doc)
}
