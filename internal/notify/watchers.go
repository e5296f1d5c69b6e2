package notify

import (
	"context"
	"time"

	"restofresh-web/internal/i18n"
	"restofresh-web/internal/order"
	"restofresh-web/internal/reservation"
)

// NewOrderWatcher watches the orders collection and turns every previously
// unseen order into a notification on store.
func NewOrderWatcher(
	orders *order.Client,
	store *Store,
	tr *i18n.Store,
	interval time.Duration,
) *Watcher[order.Order] {
	return NewWatcher(
		"orders",
		interval,
		func(ctx context.Context) ([]order.Order, error) { return orders.List(ctx) },
		func(o order.Order) string { return o.ID },
		func(o order.Order) {
			name := tr.T("notify.guest")
			if o.CustomerInfo != nil && o.CustomerInfo.Name != "" {
				name = o.CustomerInfo.Name
			}
			store.Add(TypeOrder,
				tr.T("notify.order.title"),
				tr.Tf("notify.order.message", name, o.TotalAmount),
				o,
			)
		},
	)
}

// NewReservationWatcher does the same for table reservations.
func NewReservationWatcher(
	reservations *reservation.Client,
	store *Store,
	tr *i18n.Store,
	interval time.Duration,
) *Watcher[reservation.Reservation] {
	return NewWatcher(
		"reservations",
		interval,
		func(ctx context.Context) ([]reservation.Reservation, error) { return reservations.List(ctx) },
		func(r reservation.Reservation) string { return r.ID },
		func(r reservation.Reservation) {
			name := r.CustomerName
			if name == "" {
				name = tr.T("notify.guest")
			}
			store.Add(TypeReservation,
				tr.T("notify.reservation.title"),
				tr.Tf("notify.reservation.message", name, r.Guests, r.Date, r.Time),
				r,
			)
		},
	)
}
