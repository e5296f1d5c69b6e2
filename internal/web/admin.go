package web

import (
	"net/http"

	"restofresh-web/internal/admin"
	"restofresh-web/internal/menu"
	"restofresh-web/internal/notify"
	"restofresh-web/internal/order"
	"restofresh-web/internal/reservation"
	"restofresh-web/internal/session"

	"github.com/gorilla/mux"
)

// Admin operations authenticate with the session's stored token, so the
// clients are built against the session-bound API client per request.
func adminClients(s *session.Session) (*admin.Client, *order.Client, *reservation.Client, *menu.Client) {
	return admin.NewClient(s.API),
		order.NewClient(s.API),
		reservation.NewClient(s.API),
		menu.NewClient(s.API)
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}

	var req loginRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := s.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) AdminLogout(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}
	s.Auth.Logout()
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// --- Dashboard ---

func (h *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}

	adm, _, _, _ := adminClients(s)
	stats, err := adm.DashboardStats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// --- Orders ---

func (h *Handler) AdminListOrders(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}

	_, orders, _, _ := adminClients(s)
	list, err := orders.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) AdminOrderStats(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}

	_, orders, _, _ := adminClients(s)
	stats, err := orders.Stats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) AdminUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}

	var req struct {
		Status order.Status `json:"status"`
	}
	if !decode(w, r, &req) {
		return
	}
	if !req.Status.Known() {
		writeJSONError(w, "unknown order status", http.StatusBadRequest)
		return
	}

	_, orders, _, _ := adminClients(s)
	updated, err := orders.UpdateStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) AdminUpdateOrderPayment(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}

	var req struct {
		PaymentStatus order.PaymentStatus `json:"payment_status"`
	}
	if !decode(w, r, &req) {
		return
	}

	_, orders, _, _ := adminClients(s)
	updated, err := orders.UpdatePayment(r.Context(), mux.Vars(r)["id"], req.PaymentStatus)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) AdminDeleteOrder(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}

	_, orders, _, _ := adminClients(s)
	if err := orders.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// --- Reservations ---

func (h *Handler) AdminListReservations(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}

	_, _, reservations, _ := adminClients(s)

	var (
		list []reservation.Reservation
		err  error
	)
	if date := r.URL.Query().Get("date"); date != "" {
		list, err = reservations.ByDate(r.Context(), date)
	} else {
		list, err = reservations.List(r.Context())
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) AdminReservationStats(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}

	_, _, reservations, _ := adminClients(s)
	stats, err := reservations.Stats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) AdminUpdateReservation(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}

	var patch reservation.Patch
	if !decode(w, r, &patch) {
		return
	}

	_, _, reservations, _ := adminClients(s)
	updated, err := reservations.Update(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) AdminUpdateReservationStatus(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}

	var req struct {
		Status reservation.Status `json:"status"`
	}
	if !decode(w, r, &req) {
		return
	}
	if !req.Status.Known() {
		writeJSONError(w, "unknown reservation status", http.StatusBadRequest)
		return
	}

	_, _, reservations, _ := adminClients(s)
	updated, err := reservations.UpdateStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) AdminDeleteReservation(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}

	_, _, reservations, _ := adminClients(s)
	if err := reservations.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// --- Menu management ---

func (h *Handler) AdminListMenuItems(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}

	adm, _, _, _ := adminClients(s)
	items, err := adm.MenuItems(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) AdminCreateMenuItem(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}

	var input menu.ItemInput
	if !decode(w, r, &input) {
		return
	}

	adm, _, _, _ := adminClients(s)
	created, err := adm.CreateMenuItem(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) AdminUpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}

	var patch menu.ItemPatch
	if !decode(w, r, &patch) {
		return
	}

	adm, _, _, _ := adminClients(s)
	updated, err := adm.UpdateMenuItem(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) AdminDeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}

	adm, _, _, _ := adminClients(s)
	if err := adm.DeleteMenuItem(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

const maxUploadSize = 10 << 20

func (h *Handler) AdminUploadImage(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSONError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSONError(w, "missing image file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	adm, _, _, _ := adminClients(s)
	url, err := adm.UploadImage(r.Context(), header.Filename, file)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"image_url": url})
}

// --- Users ---

func (h *Handler) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}

	adm, _, _, _ := adminClients(s)
	users, err := adm.Users(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) AdminSetUserActive(active bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := sess(w, r)
		if !ok {
			return
		}

		adm, _, _, _ := adminClients(s)
		id := mux.Vars(r)["id"]

		var err error
		if active {
			err = adm.ActivateUser(r.Context(), id)
		} else {
			err = adm.DeactivateUser(r.Context(), id)
		}
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
	}
}

// --- Notifications ---

type notificationsResponse struct {
	Notifications []notify.Notification `json:"notifications"`
	UnseenCount   int                   `json:"unseen_count"`
}

func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	list := h.notifications.Notifications()
	if list == nil {
		list = []notify.Notification{}
	}
	writeJSON(w, http.StatusOK, notificationsResponse{
		Notifications: list,
		UnseenCount:   h.notifications.UnseenCount(),
	})
}

func (h *Handler) MarkNotificationSeen(w http.ResponseWriter, r *http.Request) {
	h.notifications.MarkSeen(mux.Vars(r)["id"])
	writeJSON(w, http.StatusOK, map[string]int{"unseen_count": h.notifications.UnseenCount()})
}

func (h *Handler) MarkAllNotificationsSeen(w http.ResponseWriter, r *http.Request) {
	h.notifications.MarkAllSeen()
	writeJSON(w, http.StatusOK, map[string]int{"unseen_count": 0})
}

func (h *Handler) ClearNotifications(w http.ResponseWriter, r *http.Request) {
	h.notifications.ClearAll()
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
