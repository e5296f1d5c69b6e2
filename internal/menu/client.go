package menu

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"restofresh-web/internal/restapi"
)

// Client wraps the upstream menu resource. It holds no state of its own; the
// server owns the menu.
type Client struct {
	api *restapi.Client
}

func NewClient(api *restapi.Client) *Client {
	return &Client{api: api}
}

// List fetches menu items, optionally filtered by category. availableOnly
// hides dishes the kitchen has switched off.
func (c *Client) List(ctx context.Context, category string, availableOnly bool) ([]MenuItem, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	q.Set("available_only", strconv.FormatBool(availableOnly))

	var items []MenuItem
	if err := c.api.Get(ctx, "/menu/", q, &items); err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	return items, nil
}

func (c *Client) Get(ctx context.Context, id string) (*MenuItem, error) {
	var item MenuItem
	if err := c.api.Get(ctx, "/menu/"+id, nil, &item); err != nil {
		return nil, fmt.Errorf("get menu item %s: %w", id, err)
	}
	return &item, nil
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var out struct {
		Categories []string `json:"categories"`
	}
	if err := c.api.Get(ctx, "/menu/categories/list", nil, &out); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out.Categories, nil
}

// ItemInput is the payload for creating a menu item. Admin only upstream.
type ItemInput struct {
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	Price           float64            `json:"price"`
	Category        string             `json:"category"`
	ImageURL        string             `json:"image_url,omitempty"`
	IsAvailable     bool               `json:"is_available"`
	Allergens       []string           `json:"allergens,omitempty"`
	PreparationTime int                `json:"preparation_time"`
	Prices          map[string]float64 `json:"prices,omitempty"`
	Popular         bool               `json:"popular,omitempty"`
}

// ItemPatch is a partial update; nil fields are left untouched upstream.
type ItemPatch struct {
	Name            *string             `json:"name,omitempty"`
	Description     *string             `json:"description,omitempty"`
	Price           *float64            `json:"price,omitempty"`
	Category        *string             `json:"category,omitempty"`
	ImageURL        *string             `json:"image_url,omitempty"`
	IsAvailable     *bool               `json:"is_available,omitempty"`
	Allergens       *[]string           `json:"allergens,omitempty"`
	PreparationTime *int                `json:"preparation_time,omitempty"`
	Prices          *map[string]float64 `json:"prices,omitempty"`
	Popular         *bool               `json:"popular,omitempty"`
}

func (c *Client) Create(ctx context.Context, input ItemInput) (*MenuItem, error) {
	var item MenuItem
	if err := c.api.Post(ctx, "/menu", input, &item); err != nil {
		return nil, fmt.Errorf("create menu item: %w", err)
	}
	return &item, nil
}

func (c *Client) Update(ctx context.Context, id string, patch ItemPatch) (*MenuItem, error) {
	var item MenuItem
	if err := c.api.Put(ctx, "/menu/"+id, patch, &item); err != nil {
		return nil, fmt.Errorf("update menu item %s: %w", id, err)
	}
	return &item, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	if err := c.api.Delete(ctx, "/menu/"+id); err != nil {
		return fmt.Errorf("delete menu item %s: %w", id, err)
	}
	return nil
}
