package orders

import (
	"encoding/json"
	"errors"
	"fmt"

	"order-reconciler/feature/orders/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is one key/value entry of the order store. Each order is stored
// under two keys, its order id and its stringified row number, both mapping
// to the same serialized value: the store is logically single-entity,
// dual-indexed.
type Record struct {
	Key   string `gorm:"column:record_key;primaryKey;size:191"`
	Value []byte `gorm:"column:record_value;not null"`
}

// TableName sets the table name for order records.
func (Record) TableName() string {
	return "order_records"
}

// Store is the dual-keyed persistent map of orders.
type Store struct {
	db *gorm.DB
}

// NewStore migrates the order table and returns the store.
func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("migrate order store: %w", err)
	}
	return &Store{db: db}, nil
}

// Put writes the order under both its order id and its stringified row
// number inside one write transaction. After a successful return both
// lookups resolve to the identical serialized value; any failure rolls the
// whole write back, so no partial write is ever visible.
func (s *Store) Put(order *models.Order) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := putRecord(tx, order.OrderID, order); err != nil {
			return err
		}
		return putRecord(tx, order.RowKey(), order)
	})
}

// GetSingle is a point lookup. A missing key is an explicit absence
// (nil, nil), not an error.
func (s *Store) GetSingle(key string) (*models.Order, error) {
	var record Record
	err := s.db.First(&record, "record_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get order %q: %w", key, err)
	}

	var order models.Order
	if err := json.Unmarshal(record.Value, &order); err != nil {
		return nil, fmt.Errorf("decode order %q: %w", key, err)
	}
	return &order, nil
}

// GetAll scans the whole store in key order. A dual-keyed order appears
// once per key it is stored under. An empty store yields nil, which callers
// normalize to an empty sequence.
func (s *Store) GetAll() ([]models.Order, error) {
	var records []Record
	if err := s.db.Order("record_key").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("scan orders: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	orders := make([]models.Order, 0, len(records))
	for _, record := range records {
		var order models.Order
		if err := json.Unmarshal(record.Value, &order); err != nil {
			return nil, fmt.Errorf("decode order %q: %w", record.Key, err)
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// Delete removes exactly the given key. It intentionally does not cascade
// to the order's other key: deleting by order id leaves the row-number
// entry in place. Whether Delete should be made symmetric with Put is an
// open product question; do not quietly change this.
func (s *Store) Delete(key string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Record{}, "record_key = ?", key).Error; err != nil {
			return fmt.Errorf("delete order %q: %w", key, err)
		}
		return nil
	})
}

// InsertAll bulk-loads ledger rows inside one write transaction. The header
// row is skipped and rows are processed in strictly ascending order, so a
// later row observes the batch's earlier writes. Existence is decided by
// order id only: an absent order is written under both keys, a present one
// is overwritten in place under its order id alone. That duplicate handling
// is deliberately asymmetric with Put's dual write; see Delete.
//
// Any failure aborts the transaction. There are no retries here and no
// partial commit; the caller decides whether to rerun the whole batch.
func (s *Store) InsertAll(primary, secondary [][]string) (int, error) {
	processed := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i := 1; i < len(primary); i++ {
			var secondaryRow []string
			if i < len(secondary) {
				secondaryRow = secondary[i]
			}
			order := FromRow(i, primary[i], secondaryRow)

			var existing Record
			err := tx.First(&existing, "record_key = ?", order.OrderID).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := putRecord(tx, order.OrderID, order); err != nil {
					return err
				}
				if err := putRecord(tx, order.RowKey(), order); err != nil {
					return err
				}
			case err != nil:
				return fmt.Errorf("check order %q: %w", order.OrderID, err)
			default:
				if err := putRecord(tx, order.OrderID, order); err != nil {
					return err
				}
			}
			processed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return processed, nil
}

func putRecord(tx *gorm.DB, key string, order *models.Order) error {
	value, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encode order %q: %w", order.OrderID, err)
	}

	record := Record{Key: key, Value: value}
	err = tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"record_value"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("put order under %q: %w", key, err)
	}
	return nil
}
