package orders_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"order-reconciler/feature/orders"
	"order-reconciler/feature/orders/models"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestApp(t *testing.T) (*fiber.App, *serviceFixture) {
	t.Helper()

	f := newServiceFixture(t)
	app := fiber.New()
	orders.NewHandler(f.service).RegisterRoutes(app)
	return app, f
}

func TestHandleCreateOrder(t *testing.T) {
	app, f := newTestApp(t)

	f.ledger.On("Append", mock.Anything, "Sheet1", mock.Anything).Return(nil)
	f.ledger.On("Append", mock.Anything, "Sheet2", mock.Anything).Return(nil)

	body, _ := json.Marshal(map[string]any{"order_id": "ORD-1"})
	req := httptest.NewRequest("POST", "/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.Order
	raw, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, "ORD-1", created.OrderID)
	assert.NotEmpty(t, created.ID)
}

func TestHandleCreateOrderBadBody(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("POST", "/orders", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleGetOrder(t *testing.T) {
	app, f := newTestApp(t)

	order := models.NewOrder()
	order.OrderID = "ORD-2"
	order.RowNumber = intPtr(6)
	assert.NoError(t, f.store.Put(order))

	for _, key := range []string{"ORD-2", "6"} {
		req := httptest.NewRequest("GET", "/orders/"+key, nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var got models.Order
		raw, _ := io.ReadAll(resp.Body)
		assert.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, "ORD-2", got.OrderID)
	}
}

func TestHandleGetOrderNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/orders/missing", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleListOrders(t *testing.T) {
	app, f := newTestApp(t)

	order := models.NewOrder()
	order.OrderID = "ORD-3"
	order.RowNumber = intPtr(2)
	assert.NoError(t, f.store.Put(order))

	req := httptest.NewRequest("GET", "/orders", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got []models.Order
	raw, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(raw, &got))
	// One entry per stored key.
	assert.Len(t, got, 2)
}

func TestHandleDeleteOrder(t *testing.T) {
	app, f := newTestApp(t)

	order := models.NewOrder()
	order.OrderID = "ORD-4"
	order.RowNumber = intPtr(8)
	assert.NoError(t, f.store.Put(order))

	req := httptest.NewRequest("DELETE", "/orders/ORD-4", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	byID, err := f.store.GetSingle("ORD-4")
	assert.NoError(t, err)
	assert.Nil(t, byID)

	byRow, err := f.store.GetSingle("8")
	assert.NoError(t, err)
	assert.NotNil(t, byRow)
}

func TestHandleIngestAll(t *testing.T) {
	app, f := newTestApp(t)

	primary := [][]string{
		{"header"},
		{"", "", "", "", "", "ORD-5", "", "", "2023-01-01T00:00:00Z", "", "", "", "", ""},
	}
	f.ledger.On("Values", mock.Anything, "Sheet1!A:Z").Return(primary, nil)
	f.ledger.On("Values", mock.Anything, "Sheet2!A:Z").Return([][]string{}, nil)

	req := httptest.NewRequest("POST", "/orders/ingest", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var got map[string]int
	raw, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, 1, got["rows"])
}

func TestStaticRoutesWinOverOrderParam(t *testing.T) {
	app, f := newTestApp(t)

	// "/orders/snapshots" must route to the snapshot listing, not resolve
	// as a lookup for an order keyed "snapshots".
	ch := make(chan minio.ObjectInfo)
	close(ch)
	f.storage.On("ListObjects", mock.Anything, "order-snapshots", mock.Anything).
		Return((<-chan minio.ObjectInfo)(ch))

	req := httptest.NewRequest("GET", "/orders/snapshots", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got []string
	raw, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(raw, &got))
	assert.Empty(t, got)
}
