package cart

import (
	"slices"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
)

// Store holds the lines of one visitor's cart in insertion order, with at
// most one line per product id.
type Store struct {
	mu    sync.Mutex
	lines []Line
}

func NewStore() *Store {
	return &Store{lines: []Line{}}
}

// Add puts one unit of p in the cart. Stock is not checked here.
func (s *Store) Add(p catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.index(p.ID); i >= 0 {
		s.lines[i].Quantity++
		return
	}
	s.lines = append(s.lines, Line{Product: p, Quantity: 1})
}

func (s *Store) Remove(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.index(productID); i >= 0 {
		s.lines = slices.Delete(s.lines, i, i+1)
	}
}

// SetQuantity replaces the quantity of an existing line in place. A
// quantity of zero or less removes the line; unknown ids are ignored.
func (s *Store) SetQuantity(productID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(productID)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		s.lines = slices.Delete(s.lines, i, i+1)
		return
	}
	s.lines[i].Quantity = quantity
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = []Line{}
}

// RemoveSubmitted takes the quantities in submitted out of the cart and
// drops lines that reach zero. Anything added after the snapshot was taken
// stays in the cart.
func (s *Store) RemoveSubmitted(submitted []Line) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sub := range submitted {
		i := s.index(sub.Product.ID)
		if i < 0 {
			continue
		}
		if s.lines[i].Quantity <= sub.Quantity {
			s.lines = slices.Delete(s.lines, i, i+1)
			continue
		}
		s.lines[i].Quantity -= sub.Quantity
	}
}

func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.lines)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

func (s *Store) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (s *Store) index(productID int64) int {
	return slices.IndexFunc(s.lines, func(l Line) bool { return l.Product.ID == productID })
}
