package catalog

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	VendorID    string          `json:"vendor_id,omitempty"`
}

// Patch carries the optional fields an update may set. Nil means "leave
// the existing value alone".
type Patch struct {
	Name        *string          `json:"name,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Image       *string          `json:"image,omitempty"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	VendorID    *string          `json:"vendor_id,omitempty"`
}

func (p Patch) apply(dst Product) Product {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Price != nil {
		dst.Price = *p.Price
	}
	if p.Image != nil {
		dst.Image = *p.Image
	}
	if p.Description != nil {
		dst.Description = *p.Description
	}
	if p.Category != nil {
		dst.Category = *p.Category
	}
	if p.VendorID != nil {
		dst.VendorID = *p.VendorID
	}
	return dst
}

// Store is the single source of truth for the product catalog. The
// backing slice is copy-on-write: every mutation installs a fresh
// slice, so a reader holds a complete snapshot and never observes a
// half-applied change. Mutations additionally queue on writeMu for the
// whole simulated round trip, one in flight at a time.
type Store struct {
	mu       sync.RWMutex
	writeMu  sync.Mutex
	latency  time.Duration
	products []Product
}

func NewStore(latency time.Duration) *Store {
	return &Store{
		latency:  latency,
		products: seedProducts(),
	}
}

// NewEmptyStore is NewStore without the seed catalog.
func NewEmptyStore(latency time.Duration) *Store {
	return &Store{latency: latency}
}

func (s *Store) simulate() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
}

// List returns the catalog in insertion order.
func (s *Store) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Get(id int) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// ByVendor returns every product carrying the vendor id, insertion
// order preserved.
func (s *Store) ByVendor(vendorID string) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0)
	for _, p := range s.products {
		if p.VendorID == vendorID {
			out = append(out, p)
		}
	}
	return out
}

// Add appends p with the next id (max existing id + 1, or 1 for an
// empty catalog). The id field of the argument is ignored. The mock
// never fails; the error slot is the contract for a real backend.
func (s *Store) Add(p Product) (Product, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.simulate()

	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextID()
	next := make([]Product, len(s.products), len(s.products)+1)
	copy(next, s.products)
	s.products = append(next, p)
	return p, nil
}

// Update merges patch into the product matching id. An absent id is a
// reported success: the mock is deliberately permissive here.
func (s *Store) Update(id int, patch Patch) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.simulate()

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Product, len(s.products))
	for i, p := range s.products {
		if p.ID == id {
			p = patch.apply(p)
		}
		next[i] = p
	}
	s.products = next
	return nil
}

// Delete removes the product matching id; absent ids are a no-op
// success. Cart lines referencing the product keep their snapshot.
func (s *Store) Delete(id int) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.simulate()

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if p.ID != id {
			next = append(next, p)
		}
	}
	s.products = next
	return nil
}

func (s *Store) nextID() int {
	max := 0
	for _, p := range s.products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}
