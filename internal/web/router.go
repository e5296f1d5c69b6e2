package web

import (
	"net/http"

	"restofresh-web/internal/logger"
	"restofresh-web/internal/middleware"
	"restofresh-web/internal/session"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter builds the full HTTP surface: request id and logging first, then
// session resolution, then rate limiting, with the admin subtree gated behind
// the admin role.
func NewRouter(h *Handler, sessions *session.Manager, adminOrigin string) http.Handler {
	r := mux.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.SessionMiddleware(sessions))
	r.Use(middleware.RateLimitMiddleware)

	r.HandleFunc("/health", h.Health).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Menu
	api.HandleFunc("/menu", h.ListMenu).Methods("GET")
	api.HandleFunc("/menu/categories", h.ListCategories).Methods("GET")
	api.HandleFunc("/menu/{id}", h.GetMenuItem).Methods("GET")

	// Cart
	api.HandleFunc("/cart", h.GetCart).Methods("GET")
	api.HandleFunc("/cart", h.ClearCart).Methods("DELETE")
	api.HandleFunc("/cart/items", h.AddCartItem).Methods("POST")
	api.HandleFunc("/cart/items", h.UpdateCartItem).Methods("PUT")
	api.HandleFunc("/cart/items/{productID}", h.RemoveCartItem).Methods("DELETE")

	// Checkout and guest order lookup
	api.HandleFunc("/checkout", h.Checkout).Methods("POST")
	api.HandleFunc("/orders", h.ListGuestOrders).Methods("GET")
	api.HandleFunc("/orders/{id}", h.GetOrder).Methods("GET")

	// Booking
	api.HandleFunc("/bookings", h.CreateBooking).Methods("POST")

	// Language
	api.HandleFunc("/language", h.GetLanguage).Methods("GET")
	api.HandleFunc("/language", h.SetLanguage).Methods("PUT")
	api.HandleFunc("/language/toggle", h.ToggleLanguage).Methods("POST")

	// Admin auth lives outside the gated subtree.
	api.HandleFunc("/admin/login", h.AdminLogin).Methods("POST")
	api.HandleFunc("/admin/logout", h.AdminLogout).Methods("POST")

	adm := api.PathPrefix("/admin").Subrouter()
	adm.Use(middleware.AdminOnly)

	adm.HandleFunc("/dashboard", h.AdminDashboard).Methods("GET")

	adm.HandleFunc("/orders", h.AdminListOrders).Methods("GET")
	adm.HandleFunc("/orders/stats", h.AdminOrderStats).Methods("GET")
	adm.HandleFunc("/orders/{id}/status", h.AdminUpdateOrderStatus).Methods("PUT")
	adm.HandleFunc("/orders/{id}/payment", h.AdminUpdateOrderPayment).Methods("PUT")
	adm.HandleFunc("/orders/{id}", h.AdminDeleteOrder).Methods("DELETE")

	adm.HandleFunc("/reservations", h.AdminListReservations).Methods("GET")
	adm.HandleFunc("/reservations/stats", h.AdminReservationStats).Methods("GET")
	adm.HandleFunc("/reservations/{id}/status", h.AdminUpdateReservationStatus).Methods("PUT")
	adm.HandleFunc("/reservations/{id}", h.AdminUpdateReservation).Methods("PUT")
	adm.HandleFunc("/reservations/{id}", h.AdminDeleteReservation).Methods("DELETE")

	adm.HandleFunc("/menu-items", h.AdminListMenuItems).Methods("GET")
	adm.HandleFunc("/menu-items", h.AdminCreateMenuItem).Methods("POST")
	adm.HandleFunc("/menu-items/{id}", h.AdminUpdateMenuItem).Methods("PUT")
	adm.HandleFunc("/menu-items/{id}", h.AdminDeleteMenuItem).Methods("DELETE")

	adm.HandleFunc("/images", h.AdminUploadImage).Methods("POST")

	adm.HandleFunc("/users", h.AdminListUsers).Methods("GET")
	adm.HandleFunc("/users/{id}/activate", h.AdminSetUserActive(true)).Methods("PUT")
	adm.HandleFunc("/users/{id}/deactivate", h.AdminSetUserActive(false)).Methods("PUT")

	adm.HandleFunc("/notifications", h.ListNotifications).Methods("GET")
	adm.HandleFunc("/notifications/seen", h.MarkAllNotificationsSeen).Methods("PUT")
	adm.HandleFunc("/notifications/{id}/seen", h.MarkNotificationSeen).Methods("PUT")
	adm.HandleFunc("/notifications", h.ClearNotifications).Methods("DELETE")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{adminOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	})
	return c.Handler(r)
}
