package cart

import (
	"sync"

	"restofresh-web/internal/menu"
)

// Store holds what the visitor intends to buy before checkout. One Store per
// session; mutations are serialized by the store's own lock. Counts and
// totals are derived on read, never cached.
type Store struct {
	mu    sync.Mutex
	lines []Line
}

func NewStore() *Store {
	return &Store{}
}

// AddItem adds quantity of item in the given size, resolving the unit price
// through the item's price model. A repeat add of the same (product, size)
// pair increments the existing line instead of creating a second one.
func (s *Store) AddItem(item menu.MenuItem, quantity int, size string) error {
	if item.ID == "" {
		return ErrMissingProduct
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if size == "" {
		size = SizeDefault
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(item.ID, size); i >= 0 {
		s.lines[i].Quantity += quantity
		return nil
	}

	s.lines = append(s.lines, Line{
		ProductID: item.ID,
		Size:      size,
		Name:      item.Name,
		ImageRef:  item.ImageURL,
		UnitPrice: item.UnitPrice(size),
		Quantity:  quantity,
	})
	return nil
}

// UpdateQuantity sets the quantity of the matching line. A quantity of zero
// or less removes the line; the store never keeps empty lines around.
func (s *Store) UpdateQuantity(productID, size string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(productID, size)
		return
	}
	if size == "" {
		size = SizeDefault
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(productID, size); i >= 0 {
		s.lines[i].Quantity = quantity
	}
}

// RemoveItem deletes the matching line. Removing a line that does not exist
// is a no-op.
func (s *Store) RemoveItem(productID, size string) {
	if size == "" {
		size = SizeDefault
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(productID, size); i >= 0 {
		s.lines = append(s.lines[:i], s.lines[i+1:]...)
	}
}

// Clear empties the cart, used after a successful checkout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Lines returns a snapshot copy of the cart in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// ItemCount is the sum of all line quantities.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

// Total is the sum of unit price times quantity across all lines.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, l := range s.lines {
		total += l.Subtotal()
	}
	return total
}

// indexOf finds the line keyed by (productID, size). Callers hold the lock.
func (s *Store) indexOf(productID, size string) int {
	for i, l := range s.lines {
		if l.ProductID == productID && l.Size == size {
			return i
		}
	}
	return -1
}
