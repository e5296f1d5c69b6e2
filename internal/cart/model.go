package cart

// SizeDefault keys lines added without an explicit size selection.
const SizeDefault = "default"

// Line is one (product, size) entry in the cart. UnitPrice is resolved when
// the line is created and stays fixed for the line's lifetime.
type Line struct {
	ProductID string  `json:"id"`
	Size      string  `json:"size"`
	Name      string  `json:"name"`
	ImageRef  string  `json:"image,omitempty"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Subtotal is the line's contribution to the cart total.
func (l Line) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}
