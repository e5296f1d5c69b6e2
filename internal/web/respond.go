package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"restofresh-web/internal/auth"
	"restofresh-web/internal/cart"
	"restofresh-web/internal/i18n"
	"restofresh-web/internal/order"
	"restofresh-web/internal/reservation"
	"restofresh-web/internal/restapi"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// validationErrs are the client-side failures that never reached the upstream
// API. They all map to 400.
var validationErrs = []error{
	cart.ErrInvalidQuantity,
	cart.ErrMissingProduct,
	order.ErrEmptyCart,
	order.ErrMissingName,
	order.ErrMissingPhone,
	order.ErrMissingAddress,
	order.ErrInvalidPaymentMethod,
	reservation.ErrMissingName,
	reservation.ErrMissingPhone,
	reservation.ErrMissingDate,
	reservation.ErrMissingTime,
	reservation.ErrInvalidGuests,
	auth.ErrMissingEmail,
	auth.ErrMissingPassword,
	i18n.ErrUnknownLanguage,
}

// statusFor maps an error from the service layer to an HTTP status. Errors we
// cannot attribute are treated as an upstream failure.
func statusFor(err error) int {
	for _, v := range validationErrs {
		if errors.Is(err, v) {
			return http.StatusBadRequest
		}
	}

	if errors.Is(err, restapi.ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, restapi.ErrNotFound) {
		return http.StatusNotFound
	}

	var apiErr *restapi.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusBadGateway
}

func writeServiceError(w http.ResponseWriter, err error) {
	writeJSONError(w, err.Error(), statusFor(err))
}
