package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"DesignerMe/internal/catalog"
)

// LineItem pairs a product snapshot with a quantity. The snapshot is
// copied by value at add time, so later catalog edits or deletes never
// reach into an existing cart line.
type LineItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Store holds the session's cart lines in insertion order, at most one
// line per product id. Every operation is total over the current state;
// there are no failure paths.
type Store struct {
	mu    sync.RWMutex
	items []LineItem
}

func NewStore() *Store {
	return &Store{}
}

// AddItem merges p into the cart: an existing line for p.ID gains one
// to its quantity, otherwise a new line with quantity 1 is appended.
func (s *Store) AddItem(p catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == p.ID {
			s.items[i].Quantity++
			return
		}
	}
	s.items = append(s.items, LineItem{Product: p, Quantity: 1})
}

// RemoveItem drops the line for productID entirely, whatever its
// quantity.
func (s *Store) RemoveItem(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = without(s.items, productID)
}

// UpdateQuantity sets the quantity of the line for productID; a
// quantity of zero or less removes the line.
func (s *Store) UpdateQuantity(productID, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
			return
		}
	}
}

func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
}

// Items returns the cart lines in insertion order.
func (s *Store) Items() []LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// ItemCount is the sum of quantities across all lines.
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

// Total is the sum of unit price times quantity across all lines.
func (s *Store) Total() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

func without(items []LineItem, productID int) []LineItem {
	out := items[:0]
	for _, it := range items {
		if it.Product.ID != productID {
			out = append(out, it)
		}
	}
	return out
}
