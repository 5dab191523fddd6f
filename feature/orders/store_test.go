package orders_test

import (
	"testing"

	"order-reconciler/core/database"
	"order-reconciler/feature/orders"
	"order-reconciler/feature/orders/models"

	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) *orders.Store {
	t.Helper()

	dbCfg := database.Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := database.Connect(dbCfg)
	assert.NoError(t, err)

	store, err := orders.NewStore(db)
	assert.NoError(t, err)
	return store
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestPutStoresUnderBothKeys(t *testing.T) {
	store := newTestStore(t)

	order := models.NewOrder()
	order.OrderID = "ORD-100"
	order.RowNumber = intPtr(7)
	order.ReturnedSKU = strPtr("sku-a")

	err := store.Put(order)
	assert.NoError(t, err)

	byID, err := store.GetSingle("ORD-100")
	assert.NoError(t, err)
	assert.NotNil(t, byID)

	byRow, err := store.GetSingle("7")
	assert.NoError(t, err)
	assert.NotNil(t, byRow)

	assert.Equal(t, byID, byRow)
	assert.Equal(t, "sku-a", *byRow.ReturnedSKU)
}

func TestGetSingleMissingKeyIsNilNil(t *testing.T) {
	store := newTestStore(t)

	order, err := store.GetSingle("nope")
	assert.NoError(t, err)
	assert.Nil(t, order)
}

func TestPutOverwritesBothEntries(t *testing.T) {
	store := newTestStore(t)

	order := models.NewOrder()
	order.OrderID = "ORD-200"
	order.RowNumber = intPtr(3)
	order.Status = strPtr("open")
	assert.NoError(t, store.Put(order))

	order.Status = strPtr("closed")
	assert.NoError(t, store.Put(order))

	byID, err := store.GetSingle("ORD-200")
	assert.NoError(t, err)
	assert.Equal(t, "closed", *byID.Status)

	byRow, err := store.GetSingle("3")
	assert.NoError(t, err)
	assert.Equal(t, "closed", *byRow.Status)
}

func TestDeleteRemovesOnlyNamedKey(t *testing.T) {
	store := newTestStore(t)

	order := models.NewOrder()
	order.OrderID = "ORD-300"
	order.RowNumber = intPtr(12)
	assert.NoError(t, store.Put(order))

	assert.NoError(t, store.Delete("ORD-300"))

	byID, err := store.GetSingle("ORD-300")
	assert.NoError(t, err)
	assert.Nil(t, byID)

	// The row-number entry survives a delete by order id.
	byRow, err := store.GetSingle("12")
	assert.NoError(t, err)
	assert.NotNil(t, byRow)
	assert.Equal(t, "ORD-300", byRow.OrderID)
}

func TestGetAllReturnsOneEntryPerKey(t *testing.T) {
	store := newTestStore(t)

	order := models.NewOrder()
	order.OrderID = "ORD-400"
	order.RowNumber = intPtr(2)
	assert.NoError(t, store.Put(order))

	all, err := store.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, all[0].ID, all[1].ID)
}

func TestGetAllEmptyStoreIsNil(t *testing.T) {
	store := newTestStore(t)

	all, err := store.GetAll()
	assert.NoError(t, err)
	assert.Nil(t, all)
}

func TestInsertAllSkipsHeaderAndWritesBothKeys(t *testing.T) {
	store := newTestStore(t)

	primary := [][]string{
		{"h", "h", "h", "h", "h", "Order", "h", "h", "Date", "h", "h", "h", "Match", "h"},
		{"", "", "", "", "", "ORD-1", "", "", "2023-01-01T00:00:00Z", "", "", "", "automatic", ""},
		{"", "", "", "", "", "ORD-2", "", "", "2023-01-02T00:00:00Z", "", "", "", "", ""},
	}
	secondary := [][]string{
		{"h", "h", "h", "h", "h", "h", "h", "h", "h", "h", "h", "h", "h"},
		{"", "", "Debenhams", "sku-1", "", "", "automatic", "41", "", "", "", "2", ""},
		{"", "", "", "sku-2", "", "", "", "42", "", "", "", "", ""},
	}

	processed, err := store.InsertAll(primary, secondary)
	assert.NoError(t, err)
	assert.Equal(t, 2, processed)

	// Header row never becomes a record.
	header, err := store.GetSingle("Order")
	assert.NoError(t, err)
	assert.Nil(t, header)

	byID, err := store.GetSingle("ORD-1")
	assert.NoError(t, err)
	assert.NotNil(t, byID)
	assert.Equal(t, "Debenhams", byID.Marketplace)
	assert.Equal(t, "sku-1", *byID.ReturnedSKU)
	assert.Equal(t, "automatic", *byID.MatchType)

	byRow, err := store.GetSingle("41")
	assert.NoError(t, err)
	assert.NotNil(t, byRow)
	assert.Equal(t, byID.ID, byRow.ID)
}

func TestInsertAllUpdatesExistingUnderOrderIDOnly(t *testing.T) {
	store := newTestStore(t)

	primary := [][]string{
		{"header"},
		{"", "", "", "", "", "ORD-9", "", "", "2023-01-01T00:00:00Z", "", "", "", "", ""},
	}
	secondary := [][]string{
		{"header"},
		{"", "", "Matalan", "sku-x", "", "", "", "5", "", "", "", "", ""},
	}

	_, err := store.InsertAll(primary, secondary)
	assert.NoError(t, err)

	first, err := store.GetSingle("ORD-9")
	assert.NoError(t, err)
	assert.NotNil(t, first)

	// Rerun with a changed SKU and row number. The existing order id entry
	// is overwritten in place; no entry appears under the new row number.
	secondary[1][3] = "sku-y"
	secondary[1][7] = "6"
	_, err = store.InsertAll(primary, secondary)
	assert.NoError(t, err)

	second, err := store.GetSingle("ORD-9")
	assert.NoError(t, err)
	assert.Equal(t, "sku-y", *second.ReturnedSKU)

	byNewRow, err := store.GetSingle("6")
	assert.NoError(t, err)
	assert.Nil(t, byNewRow)

	// The original row-number entry still holds the first ingest's value.
	byOldRow, err := store.GetSingle("5")
	assert.NoError(t, err)
	assert.NotNil(t, byOldRow)
	assert.Equal(t, "sku-x", *byOldRow.ReturnedSKU)
}

func TestInsertAllMissingSecondaryRow(t *testing.T) {
	store := newTestStore(t)

	primary := [][]string{
		{"header"},
		{"", "", "", "", "", "ORD-55", "", "", "2023-03-01T00:00:00Z", "", "", "", "automatic", ""},
	}

	processed, err := store.InsertAll(primary, nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, processed)

	order, err := store.GetSingle("ORD-55")
	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.Equal(t, "shopify", order.Marketplace)
	assert.Nil(t, order.RowNumber)
	assert.Equal(t, "automatic", *order.MatchType)
}
