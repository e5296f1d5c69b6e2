package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"restofresh-web/internal/i18n"
	"restofresh-web/internal/order"
	"restofresh-web/internal/reservation"
	"restofresh-web/internal/restapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderWatcher_EmitsLocalizedNotification(t *testing.T) {
	var mu sync.Mutex
	orders := []order.Order{
		{ID: "ord-1", TotalAmount: 70, CustomerInfo: &order.CustomerInfo{Name: "Sara"}},
	}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders", r.URL.Path)
		mu.Lock()
		defer mu.Unlock()
		json.NewEncoder(w).Encode(orders)
	}))
	defer ts.Close()

	store := NewStore(nil)
	tr := i18n.NewStore(nil)
	require.NoError(t, tr.SetLanguage(i18n.LangEnglish))

	client := order.NewClient(restapi.NewClient(ts.URL, nil))
	w := NewOrderWatcher(client, store, tr, time.Minute)
	ctx := context.Background()

	// First load seeds the baseline.
	w.poll(ctx)
	assert.Empty(t, store.Notifications())

	mu.Lock()
	orders = append(orders, order.Order{ID: "ord-2", TotalAmount: 120, CustomerInfo: &order.CustomerInfo{Name: "Omar"}})
	mu.Unlock()

	w.poll(ctx)

	items := store.Notifications()
	require.Len(t, items, 1)
	assert.Equal(t, TypeOrder, items[0].Type)
	assert.Equal(t, "New Order", items[0].Title)
	assert.Equal(t, "New order from Omar worth 120.00 EGP", items[0].Message)

	payload, ok := items[0].Payload.(order.Order)
	require.True(t, ok)
	assert.Equal(t, "ord-2", payload.ID)
}

func TestOrderWatcher_FallsBackToGuestName(t *testing.T) {
	var mu sync.Mutex
	orders := []order.Order{{ID: "ord-1"}}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		json.NewEncoder(w).Encode(orders)
	}))
	defer ts.Close()

	store := NewStore(nil)
	tr := i18n.NewStore(nil) // Arabic default

	client := order.NewClient(restapi.NewClient(ts.URL, nil))
	w := NewOrderWatcher(client, store, tr, time.Minute)
	ctx := context.Background()

	w.poll(ctx)
	mu.Lock()
	orders = append(orders, order.Order{ID: "ord-2", TotalAmount: 55})
	mu.Unlock()
	w.poll(ctx)

	items := store.Notifications()
	require.Len(t, items, 1)
	assert.Equal(t, "طلب جديد", items[0].Title)
	assert.Contains(t, items[0].Message, "ضيف")
}

func TestReservationWatcher_EmitsNotification(t *testing.T) {
	var mu sync.Mutex
	reservations := []reservation.Reservation{
		{ID: "res-1", CustomerName: "Nadia", Guests: 2, Date: "2025-06-01", Time: "19:00"},
	}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reservations", r.URL.Path)
		mu.Lock()
		defer mu.Unlock()
		json.NewEncoder(w).Encode(reservations)
	}))
	defer ts.Close()

	store := NewStore(nil)
	tr := i18n.NewStore(nil)
	require.NoError(t, tr.SetLanguage(i18n.LangEnglish))

	client := reservation.NewClient(restapi.NewClient(ts.URL, nil))
	w := NewReservationWatcher(client, store, tr, time.Minute)
	ctx := context.Background()

	w.poll(ctx)
	assert.Empty(t, store.Notifications())

	mu.Lock()
	reservations = append(reservations, reservation.Reservation{
		ID: "res-2", CustomerName: "Omar", Guests: 4, Date: "2025-06-02", Time: "20:30",
	})
	mu.Unlock()
	w.poll(ctx)

	items := store.Notifications()
	require.Len(t, items, 1)
	assert.Equal(t, TypeReservation, items[0].Type)
	assert.Equal(t, "New reservation from Omar for 4 guests on 2025-06-02 at 20:30", items[0].Message)
}
