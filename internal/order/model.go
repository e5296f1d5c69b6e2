package order

import (
	"encoding/json"
	"math"
	"strings"
	"time"
)

// Status is the kitchen-side lifecycle of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusOnWay     Status = "on_way"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// normalizeStatus canonicalizes upstream status values. Some read paths still
// return the legacy "ready" value, which maps to on_way. Unknown values pass
// through untouched so a newer server does not break decoding.
func normalizeStatus(s string) Status {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "ready" {
		return StatusOnWay
	}
	return Status(v)
}

// Known reports whether s is one of the canonical status values.
func (s Status) Known() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusOnWay, StatusCompleted, StatusCancelled:
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

// PaymentStatus tracks whether the order has been paid for.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentUnpaid  PaymentStatus = "unpaid"
)

// PaymentMethod is chosen by the customer at checkout.
type PaymentMethod string

const (
	PayCash   PaymentMethod = "cash"
	PayCard   PaymentMethod = "card"
	PayOnline PaymentMethod = "online"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PayCash, PayCard, PayOnline:
		return true
	}
	return false
}

// Item is a point-in-time snapshot of a cart line. It deliberately copies
// name and price so historical orders stay stable when the menu changes.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// Order is the server-owned record. The server computes and owns the total.
type Order struct {
	ID                  string        `json:"id"`
	UserID              string        `json:"user_id,omitempty"`
	Items               []Item        `json:"items"`
	TotalAmount         float64       `json:"total_amount"`
	Status              Status        `json:"status"`
	PaymentStatus       PaymentStatus `json:"payment_status"`
	CustomerInfo        *CustomerInfo `json:"customer_info,omitempty"`
	SpecialInstructions string        `json:"special_instructions,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// VerifyTotal cross-checks the server's total against the line items. The
// server stays authoritative; callers only log a mismatch.
func (o Order) VerifyTotal() bool {
	sum := 0.0
	for _, it := range o.Items {
		sum += it.Price * float64(it.Quantity)
	}
	return math.Abs(sum-o.TotalAmount) < 0.005
}

// CreateOrderRequest is the checkout payload for guest orders.
type CreateOrderRequest struct {
	Items               []Item        `json:"items"`
	TotalAmount         float64       `json:"total_amount"`
	CustomerInfo        CustomerInfo  `json:"customer_info"`
	SpecialInstructions string        `json:"special_instructions,omitempty"`
	DeliveryAddress     string        `json:"delivery_address,omitempty"`
	PaymentMethod       PaymentMethod `json:"payment_method,omitempty"`
}
