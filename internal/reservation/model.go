package reservation

import (
	"encoding/json"
	"strings"
	"time"
)

// Status is the canonical reservation state. Some historical data carries the
// Arabic display labels in the status field; those are folded into the
// canonical values on decode and never written back.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

var arabicStatusAliases = map[string]Status{
	"قيد الانتظار": StatusPending,
	"مؤكد":         StatusConfirmed,
	"ملغي":         StatusCancelled,
}

func normalizeStatus(s string) Status {
	v := strings.TrimSpace(s)
	if canonical, ok := arabicStatusAliases[v]; ok {
		return canonical
	}
	return Status(strings.ToLower(v))
}

func (s Status) Known() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = normalizeStatus(raw)
	return nil
}

// Reservation is the server-owned table booking record. The field naming
// mirrors the upstream API, camelCase and snake_case mixed as it ships them.
type Reservation struct {
	ID              string    `json:"id"`
	CustomerName    string    `json:"customerName"`
	CustomerPhone   string    `json:"customerPhone"`
	CustomerEmail   string    `json:"customerEmail,omitempty"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Guests          int       `json:"guests"`
	Status          Status    `json:"status"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	TablePreference string    `json:"table_preference,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateReservationRequest is the booking payload.
type CreateReservationRequest struct {
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerEmail   string `json:"customerEmail,omitempty"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"special_requests,omitempty"`
	TablePreference string `json:"table_preference,omitempty"`
}

// Patch is a partial reservation update.
type Patch struct {
	CustomerName    *string `json:"customerName,omitempty"`
	CustomerPhone   *string `json:"customerPhone,omitempty"`
	CustomerEmail   *string `json:"customerEmail,omitempty"`
	Date            *string `json:"date,omitempty"`
	Time            *string `json:"time,omitempty"`
	Guests          *int    `json:"guests,omitempty"`
	SpecialRequests *string `json:"special_requests,omitempty"`
	TablePreference *string `json:"table_preference,omitempty"`
}
