package reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"restofresh-web/internal/restapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBooking() CreateReservationRequest {
	return CreateReservationRequest{
		CustomerName:  "Omar",
		CustomerPhone: "0111111111",
		Date:          "2025-06-01",
		Time:          "19:30",
		Guests:        4,
	}
}

func TestBookingService_Book(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/reservations", r.URL.Path)

		var req CreateReservationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Reservation{
			ID:            "res-1",
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			Date:          req.Date,
			Time:          req.Time,
			Guests:        req.Guests,
			Status:        StatusPending,
		})
	}))
	defer ts.Close()

	svc := NewBookingService(NewClient(restapi.NewClient(ts.URL, nil)))

	created, err := svc.Book(context.Background(), validBooking())
	require.NoError(t, err)
	assert.Equal(t, "res-1", created.ID)
	assert.Equal(t, StatusPending, created.Status)
}

func TestBookingService_ValidationNeverHitsNetwork(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer ts.Close()

	svc := NewBookingService(NewClient(restapi.NewClient(ts.URL, nil)))
	ctx := context.Background()

	cases := []struct {
		name string
		mut  func(*CreateReservationRequest)
		want error
	}{
		{"Missing name", func(r *CreateReservationRequest) { r.CustomerName = " " }, ErrMissingName},
		{"Missing phone", func(r *CreateReservationRequest) { r.CustomerPhone = "" }, ErrMissingPhone},
		{"Missing date", func(r *CreateReservationRequest) { r.Date = "" }, ErrMissingDate},
		{"Missing time", func(r *CreateReservationRequest) { r.Time = "" }, ErrMissingTime},
		{"Zero guests", func(r *CreateReservationRequest) { r.Guests = 0 }, ErrInvalidGuests},
		{"Negative guests", func(r *CreateReservationRequest) { r.Guests = -2 }, ErrInvalidGuests},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validBooking()
			tc.mut(&req)

			_, err := svc.Book(ctx, req)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	assert.Equal(t, int32(0), calls.Load())
}

func TestClient_ByDateAndStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/reservations/date/2025-06-01":
			json.NewEncoder(w).Encode([]Reservation{{ID: "res-1"}})
		case r.URL.Path == "/reservations/res-1" && r.Method == "PUT":
			var body map[string]Status
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			json.NewEncoder(w).Encode(Reservation{ID: "res-1", Status: body["status"]})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	c := NewClient(restapi.NewClient(ts.URL, nil))
	ctx := context.Background()

	byDate, err := c.ByDate(ctx, "2025-06-01")
	require.NoError(t, err)
	assert.Len(t, byDate, 1)

	updated, err := c.UpdateStatus(ctx, "res-1", StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, updated.Status)
}
