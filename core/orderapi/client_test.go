package orderapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"order-reconciler/core/orderapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "app-id", payload["ApplicationId"])
		assert.Equal(t, "app-secret", payload["ApplicationSecret"])
		assert.Equal(t, "install-token", payload["Token"])

		_, _ = w.Write([]byte(`{"Token":"session-token","Server":"https://eu-ext.example.net"}`))
	}))
	defer server.Close()

	client := orderapi.NewClient(orderapi.Config{
		AuthURL:           server.URL,
		ApplicationID:     "app-id",
		ApplicationSecret: "app-secret",
		Token:             "install-token",
	})

	token, err := client.Authorize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "session-token", token)
}

func TestAuthorizeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := orderapi.NewClient(orderapi.Config{AuthURL: server.URL})

	_, err := client.Authorize(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestOrderByNum(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/Orders/GetOrderDetailsByNumOrderId", r.URL.Path)
		assert.Equal(t, "3001", r.URL.Query().Get("OrderId"))
		assert.Equal(t, "session-token", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{
			"NumOrderId": 3001,
			"GeneralInfo": {"ReferenceNum": "SH-1", "SubSource": "Mirakl Matalan"},
			"Notes": [{"Note": "Marketplace Order ID - ABC123"}],
			"Items": [{"SKU": "SKU1", "Quantity": 2}]
		}`))
	}))
	defer server.Close()

	client := orderapi.NewClient(orderapi.Config{BaseURL: server.URL})

	order, err := client.OrderByNum(context.Background(), "session-token", "3001")
	require.NoError(t, err)
	assert.Equal(t, uint64(3001), order.NumOrderID)
	assert.Equal(t, "SH-1", order.GeneralInfo.ReferenceNum)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "SKU1", order.Items[0].SKU)
	require.Len(t, order.Notes, 1)
	assert.Equal(t, "Marketplace Order ID - ABC123", order.Notes[0].Note)
}

func TestOrderByNumRemoteFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "order not found", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := orderapi.NewClient(orderapi.Config{BaseURL: server.URL})

	_, err := client.OrderByNum(context.Background(), "session-token", "9999")
	assert.Error(t, err)
}
