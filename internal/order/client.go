package order

import (
	"context"
	"fmt"

	"restofresh-web/internal/restapi"
)

// Stats is the upstream order statistics payload; its exact shape belongs to
// the server, so it stays loosely typed.
type Stats map[string]any

// Client wraps the upstream orders resource.
type Client struct {
	api *restapi.Client
}

func NewClient(api *restapi.Client) *Client {
	return &Client{api: api}
}

// CreateGuest places an order without an authenticated account.
func (c *Client) CreateGuest(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	var created Order
	if err := c.api.Post(ctx, "/orders/guest", req, &created); err != nil {
		return nil, fmt.Errorf("create guest order: %w", err)
	}
	return &created, nil
}

// List fetches all orders. Admin only upstream.
func (c *Client) List(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.api.Get(ctx, "/orders", nil, &orders); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (c *Client) Get(ctx context.Context, id string) (*Order, error) {
	var o Order
	if err := c.api.Get(ctx, "/orders/"+id, nil, &o); err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return &o, nil
}

func (c *Client) UpdateStatus(ctx context.Context, id string, status Status) (*Order, error) {
	var o Order
	body := map[string]Status{"status": status}
	if err := c.api.Put(ctx, "/orders/"+id, body, &o); err != nil {
		return nil, fmt.Errorf("update order %s status: %w", id, err)
	}
	return &o, nil
}

func (c *Client) UpdatePayment(ctx context.Context, id string, status PaymentStatus) (*Order, error) {
	var o Order
	body := map[string]PaymentStatus{"payment_status": status}
	if err := c.api.Put(ctx, "/orders/"+id, body, &o); err != nil {
		return nil, fmt.Errorf("update order %s payment: %w", id, err)
	}
	return &o, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	if err := c.api.Delete(ctx, "/orders/"+id); err != nil {
		return fmt.Errorf("delete order %s: %w", id, err)
	}
	return nil
}

func (c *Client) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	if err := c.api.Get(ctx, "/orders/stats", nil, &s); err != nil {
		return nil, fmt.Errorf("get order stats: %w", err)
	}
	return s, nil
}
