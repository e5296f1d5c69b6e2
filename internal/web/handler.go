package web

import (
	"encoding/json"
	"net/http"

	"restofresh-web/internal/i18n"
	"restofresh-web/internal/logger"
	"restofresh-web/internal/menu"
	"restofresh-web/internal/middleware"
	"restofresh-web/internal/notify"
	"restofresh-web/internal/order"
	"restofresh-web/internal/reservation"
	"restofresh-web/internal/session"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Handler owns the HTTP surface of the site. Anonymous traffic goes through
// the shared unauthenticated clients; admin operations go through the
// session's token-bound client instead.
type Handler struct {
	menu          *menu.Client
	orders        *order.Client
	booking       *reservation.BookingService
	notifications *notify.Store
}

func NewHandler(
	menuClient *menu.Client,
	orders *order.Client,
	booking *reservation.BookingService,
	notifications *notify.Store,
) *Handler {
	return &Handler{
		menu:          menuClient,
		orders:        orders,
		booking:       booking,
		notifications: notifications,
	}
}

// sess pulls the request's session out of the context. The session middleware
// runs on every route, so a miss is a wiring bug.
func sess(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	s, ok := middleware.SessionFrom(r.Context())
	if !ok {
		writeJSONError(w, "no session", http.StatusInternalServerError)
	}
	return s, ok
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// --- Menu ---

func (h *Handler) ListMenu(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	availableOnly := r.URL.Query().Get("available_only") != "false"

	items, err := h.menu.List(r.Context(), category, availableOnly)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.menu.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.menu.Categories(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"categories": categories})
}

// --- Checkout and guest orders ---

type checkoutRequest struct {
	Name                string `json:"name"`
	Phone               string `json:"phone"`
	Email               string `json:"email"`
	Address             string `json:"address"`
	SpecialInstructions string `json:"special_instructions"`
	PaymentMethod       string `json:"payment_method"`
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}

	var req checkoutRequest
	if !decode(w, r, &req) {
		return
	}

	svc := order.NewCheckoutService(h.orders, s.Records)
	created, err := svc.Submit(r.Context(), s.Cart, order.CheckoutInput{
		Name:                req.Name,
		Phone:               req.Phone,
		Email:               req.Email,
		Address:             req.Address,
		SpecialInstructions: req.SpecialInstructions,
		PaymentMethod:       order.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListGuestOrders returns the session's locally recorded orders, pruned to
// the last 24 hours.
func (h *Handler) ListGuestOrders(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}

	records, err := s.Records.List()
	if err != nil {
		logger.FromCtx(r.Context()).Warn("reading guest order records failed", zap.Error(err))
		records = nil
	}
	if records == nil {
		records = []order.Record{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.orders.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// --- Booking ---

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req reservation.CreateReservationRequest
	if !decode(w, r, &req) {
		return
	}

	created, err := h.booking.Book(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// --- Language ---

type languageResponse struct {
	Language  i18n.Lang      `json:"language"`
	Direction i18n.Direction `json:"direction"`
}

func (h *Handler) GetLanguage(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, languageResponse{
		Language:  s.I18n.Language(),
		Direction: s.I18n.Direction(),
	})
}

func (h *Handler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}

	var req struct {
		Language i18n.Lang `json:"language"`
	}
	if !decode(w, r, &req) {
		return
	}

	if err := s.I18n.SetLanguage(req.Language); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, languageResponse{
		Language:  s.I18n.Language(),
		Direction: s.I18n.Direction(),
	})
}

func (h *Handler) ToggleLanguage(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}

	if err := s.I18n.Toggle(); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, languageResponse{
		Language:  s.I18n.Language(),
		Direction: s.I18n.Direction(),
	})
}
