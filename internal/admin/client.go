package admin

import (
	"context"
	"fmt"
	"io"
	"time"

	"restofresh-web/internal/menu"
	"restofresh-web/internal/restapi"
)

// DashboardStats is the admin landing-page summary.
type DashboardStats struct {
	TotalUsers     int     `json:"total_users"`
	TotalOrders    int     `json:"total_orders"`
	TotalCustomers int     `json:"total_customers"`
	TotalRevenue   float64 `json:"total_revenue"`
	NewBookings    int     `json:"new_bookings"`
}

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Client wraps the admin-only upstream resources. Every call requires a
// bearer token with the admin role.
type Client struct {
	api *restapi.Client
}

func NewClient(api *restapi.Client) *Client {
	return &Client{api: api}
}

func (c *Client) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.api.Get(ctx, "/admin/dashboard", nil, &stats); err != nil {
		return nil, fmt.Errorf("get dashboard stats: %w", err)
	}
	return &stats, nil
}

// UploadImage pushes a dish photo upstream and returns its public URL.
func (c *Client) UploadImage(ctx context.Context, filename string, file io.Reader) (string, error) {
	var out struct {
		ImageURL string `json:"image_url"`
		URL      string `json:"url"`
	}
	if err := c.api.PostMultipart(ctx, "/admin/upload-image", "image", filename, file, &out); err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	if out.ImageURL != "" {
		return out.ImageURL, nil
	}
	return out.URL, nil
}

func (c *Client) Users(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.api.Get(ctx, "/admin/users", nil, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (c *Client) ActivateUser(ctx context.Context, id string) error {
	if err := c.api.Put(ctx, "/admin/users/"+id+"/activate", nil, nil); err != nil {
		return fmt.Errorf("activate user %s: %w", id, err)
	}
	return nil
}

func (c *Client) DeactivateUser(ctx context.Context, id string) error {
	if err := c.api.Put(ctx, "/admin/users/"+id+"/deactivate", nil, nil); err != nil {
		return fmt.Errorf("deactivate user %s: %w", id, err)
	}
	return nil
}

// Menu item management through the admin surface.

func (c *Client) MenuItems(ctx context.Context) ([]menu.MenuItem, error) {
	var items []menu.MenuItem
	if err := c.api.Get(ctx, "/admin/menu-items", nil, &items); err != nil {
		return nil, fmt.Errorf("list admin menu items: %w", err)
	}
	return items, nil
}

func (c *Client) CreateMenuItem(ctx context.Context, input menu.ItemInput) (*menu.MenuItem, error) {
	var item menu.MenuItem
	if err := c.api.Post(ctx, "/admin/menu-items", input, &item); err != nil {
		return nil, fmt.Errorf("create admin menu item: %w", err)
	}
	return &item, nil
}

func (c *Client) UpdateMenuItem(ctx context.Context, id string, patch menu.ItemPatch) (*menu.MenuItem, error) {
	var item menu.MenuItem
	if err := c.api.Put(ctx, "/admin/menu-items/"+id, patch, &item); err != nil {
		return nil, fmt.Errorf("update admin menu item %s: %w", id, err)
	}
	return &item, nil
}

func (c *Client) DeleteMenuItem(ctx context.Context, id string) error {
	if err := c.api.Delete(ctx, "/admin/menu-items/"+id); err != nil {
		return fmt.Errorf("delete admin menu item %s: %w", id, err)
	}
	return nil
}
