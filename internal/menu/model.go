package menu

import "time"

// Size labels the upstream API knows about.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

// MenuItem is the server-owned dish record, read-mostly on this side.
type MenuItem struct {
	ID              string             `json:"id"`
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
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// Pricing is the resolved price model of an item: a flat base price,
// optionally overridden per size.
type Pricing struct {
	Base  float64
	Sizes map[string]float64
}

// For resolves the effective unit price for the requested size. A size with
// an explicit entry wins; anything else falls back to the base price.
func (p Pricing) For(size string) float64 {
	if price, ok := p.Sizes[size]; ok {
		return price
	}
	return p.Base
}

// Sized reports whether the item carries per-size prices at all.
func (p Pricing) Sized() bool {
	return len(p.Sizes) > 0
}

// Pricing returns the item's price model.
func (m MenuItem) Pricing() Pricing {
	return Pricing{Base: m.Price, Sizes: m.Prices}
}

// UnitPrice is shorthand for Pricing().For(size).
func (m MenuItem) UnitPrice(size string) float64 {
	return m.Pricing().For(size)
}
