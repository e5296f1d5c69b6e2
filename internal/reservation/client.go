package reservation

import (
	"context"
	"fmt"

	"restofresh-web/internal/restapi"
)

// Stats is the upstream reservation statistics payload.
type Stats map[string]any

// Client wraps the upstream reservations resource.
type Client struct {
	api *restapi.Client
}

func NewClient(api *restapi.Client) *Client {
	return &Client{api: api}
}

func (c *Client) Create(ctx context.Context, req CreateReservationRequest) (*Reservation, error) {
	var created Reservation
	if err := c.api.Post(ctx, "/reservations", req, &created); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}
	return &created, nil
}

// List fetches all reservations. Admin only upstream.
func (c *Client) List(ctx context.Context) ([]Reservation, error) {
	var reservations []Reservation
	if err := c.api.Get(ctx, "/reservations", nil, &reservations); err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return reservations, nil
}

func (c *Client) Get(ctx context.Context, id string) (*Reservation, error) {
	var r Reservation
	if err := c.api.Get(ctx, "/reservations/"+id, nil, &r); err != nil {
		return nil, fmt.Errorf("get reservation %s: %w", id, err)
	}
	return &r, nil
}

func (c *Client) Update(ctx context.Context, id string, patch Patch) (*Reservation, error) {
	var r Reservation
	if err := c.api.Put(ctx, "/reservations/"+id, patch, &r); err != nil {
		return nil, fmt.Errorf("update reservation %s: %w", id, err)
	}
	return &r, nil
}

func (c *Client) UpdateStatus(ctx context.Context, id string, status Status) (*Reservation, error) {
	var r Reservation
	body := map[string]Status{"status": status}
	if err := c.api.Put(ctx, "/reservations/"+id, body, &r); err != nil {
		return nil, fmt.Errorf("update reservation %s status: %w", id, err)
	}
	return &r, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	if err := c.api.Delete(ctx, "/reservations/"+id); err != nil {
		return fmt.Errorf("delete reservation %s: %w", id, err)
	}
	return nil
}

// ByDate fetches reservations for a single day (YYYY-MM-DD).
func (c *Client) ByDate(ctx context.Context, date string) ([]Reservation, error) {
	var reservations []Reservation
	if err := c.api.Get(ctx, "/reservations/date/"+date, nil, &reservations); err != nil {
		return nil, fmt.Errorf("list reservations for %s: %w", date, err)
	}
	return reservations, nil
}

func (c *Client) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	if err := c.api.Get(ctx, "/reservations/stats", nil, &s); err != nil {
		return nil, fmt.Errorf("get reservation stats: %w", err)
	}
	return s, nil
}
