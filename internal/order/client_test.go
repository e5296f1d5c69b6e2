package order

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"restofresh-web/internal/restapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CreateGuest(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/orders/guest", r.URL.Path)

		var req CreateOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Sara", req.CustomerInfo.Name)
		assert.Equal(t, PayCash, req.PaymentMethod)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Order{
			ID:          "ord-1",
			Items:       req.Items,
			TotalAmount: req.TotalAmount,
			Status:      StatusPending,
		})
	}))
	defer ts.Close()

	c := NewClient(restapi.NewClient(ts.URL, nil))

	created, err := c.CreateGuest(context.Background(), CreateOrderRequest{
		Items:         []Item{{ID: "dish-1", Name: "Koshari", Price: 35, Quantity: 2}},
		TotalAmount:   70,
		CustomerInfo:  CustomerInfo{Name: "Sara", Phone: "0100000000", Address: "12 Nile St"},
		PaymentMethod: PayCash,
	})

	require.NoError(t, err)
	assert.Equal(t, "ord-1", created.ID)
	assert.Equal(t, StatusPending, created.Status)
}

func TestClient_ListAndGet(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/orders":
			json.NewEncoder(w).Encode([]Order{{ID: "ord-1"}, {ID: "ord-2"}})
		case "/orders/ord-2":
			json.NewEncoder(w).Encode(Order{ID: "ord-2", Status: StatusPreparing})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	c := NewClient(restapi.NewClient(ts.URL, nil))
	ctx := context.Background()

	orders, err := c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	o, err := c.Get(ctx, "ord-2")
	require.NoError(t, err)
	assert.Equal(t, StatusPreparing, o.Status)

	_, err = c.Get(ctx, "ord-99")
	assert.ErrorIs(t, err, restapi.ErrNotFound)
}

func TestClient_Updates(t *testing.T) {
	var lastBody map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/orders/ord-1", r.URL.Path)
		lastBody = nil
		require.NoError(t, json.NewDecoder(r.Body).Decode(&lastBody))
		json.NewEncoder(w).Encode(Order{ID: "ord-1"})
	}))
	defer ts.Close()

	c := NewClient(restapi.NewClient(ts.URL, nil))
	ctx := context.Background()

	_, err := c.UpdateStatus(ctx, "ord-1", StatusOnWay)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"status": "on_way"}, lastBody)

	_, err = c.UpdatePayment(ctx, "ord-1", PaymentPaid)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"payment_status": "paid"}, lastBody)
}

func TestClient_Delete(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/orders/ord-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c := NewClient(restapi.NewClient(ts.URL, nil))
	assert.NoError(t, c.Delete(context.Background(), "ord-1"))
}

func TestClient_Stats(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/stats", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"total_orders": 12})
	}))
	defer ts.Close()

	c := NewClient(restapi.NewClient(ts.URL, nil))
	stats, err := c.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, float64(12), stats["total_orders"])
}
