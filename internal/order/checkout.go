package order

import (
	"context"
	"strings"

	"restofresh-web/internal/cart"
	"restofresh-web/internal/logger"

	"go.uber.org/zap"
)

// CheckoutInput is what the customer fills in before placing the order.
type CheckoutInput struct {
	Name                string
	Phone               string
	Email               string
	Address             string
	SpecialInstructions string
	PaymentMethod       PaymentMethod
}

// CheckoutService turns the current cart into a guest order. Validation
// failures never reach the network; a failed submission leaves the cart
// untouched so the customer can retry.
type CheckoutService struct {
	orders  *Client
	records *RecordBook
}

func NewCheckoutService(orders *Client, records *RecordBook) *CheckoutService {
	return &CheckoutService{orders: orders, records: records}
}

// Submit validates the input, snapshots the cart into an order request and
// places it. On success the cart is cleared and a local record is written so
// the guest can look the order up later.
func (s *CheckoutService) Submit(ctx context.Context, c *cart.Store, in CheckoutInput) (*Order, error) {
	if err := validateCheckout(in); err != nil {
		return nil, err
	}

	lines := c.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	method := in.PaymentMethod
	if method == "" {
		method = PayCash
	}
	if !method.Valid() {
		return nil, ErrInvalidPaymentMethod
	}

	req := CreateOrderRequest{
		Items:       make([]Item, 0, len(lines)),
		TotalAmount: c.Total(),
		CustomerInfo: CustomerInfo{
			Name:    in.Name,
			Phone:   in.Phone,
			Email:   in.Email,
			Address: in.Address,
		},
		SpecialInstructions: in.SpecialInstructions,
		DeliveryAddress:     in.Address,
		PaymentMethod:       method,
	}
	for _, l := range lines {
		req.Items = append(req.Items, Item{
			ID:       l.ProductID,
			Name:     l.Name,
			Price:    l.UnitPrice,
			Quantity: l.Quantity,
		})
	}

	created, err := s.orders.CreateGuest(ctx, req)
	if err != nil {
		return nil, err
	}

	log := logger.FromCtx(ctx).With(zap.String("order_id", created.ID))

	if !created.VerifyTotal() {
		log.Warn("server total does not match line items",
			zap.Float64("total_amount", created.TotalAmount))
	}

	if s.records != nil {
		if err := s.records.Append(created.ID, req.TotalAmount); err != nil {
			// The order is already placed; losing the local pointer is
			// not worth failing the checkout over.
			log.Warn("failed to record guest order locally", zap.Error(err))
		}
	}

	c.Clear()
	log.Info("guest order placed", zap.Float64("total", req.TotalAmount))
	return created, nil
}

func validateCheckout(in CheckoutInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(in.Phone) == "" {
		return ErrMissingPhone
	}
	if strings.TrimSpace(in.Address) == "" {
		return ErrMissingAddress
	}
	return nil
}
