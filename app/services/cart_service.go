// Package services holds the business logic between controllers and
// repositories: cart state, order intake and lifecycle, catalogue rules,
// the calendar overlap view, vacations, team and the contact relay.
package services

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
)

// Cart line kinds. Catalogue products carry their product id as the line id;
// custom and promotional lines get a generated id at add time.
const (
	LineProduct   = "product"
	LinePromotion = "promotion"
	LineCustom    = "custom"
)

// CartLine is one entry in a cart: a purchasable thing, a unit price and a
// quantity. Customization carries free text for made-to-order items.
type CartLine struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	Kind          string  `json:"kind"`
	Customization string  `json:"customization,omitempty"`
}

// Cart is the session-scoped mutable line list. All methods are safe for
// concurrent use; HTTP handlers for the same session may overlap.
type Cart struct {
	mu    sync.Mutex
	lines []CartLine
}

// newLineID generates an id for custom/promotional lines that have no
// product identity of their own.
func newLineID() string {
	b := make([]byte, 8)
	rand.Read(b) //nolint:errcheck
	return "custom-" + hex.EncodeToString(b)
}

// AddLine merges candidate into the cart: a line with the same id has its
// quantity incremented, otherwise the candidate is appended, preserving
// insertion order. Returns the id of the affected line.
func (c *Cart) AddLine(candidate CartLine) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if candidate.Quantity <= 0 {
		candidate.Quantity = 1
	}
	if candidate.Kind == "" {
		candidate.Kind = LineProduct
	}
	if candidate.ID == "" {
		candidate.ID = newLineID()
	}

	for i := range c.lines {
		if c.lines[i].ID == candidate.ID {
			c.lines[i].Quantity += candidate.Quantity
			return candidate.ID
		}
	}
	c.lines = append(c.lines, candidate)
	return candidate.ID
}

// SetQuantity sets a line's quantity; q ≤ 0 removes the line. No upper
// bound is enforced.
func (c *Cart) SetQuantity(lineID string, q int) {
	if q <= 0 {
		c.RemoveLine(lineID)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			c.lines[i].Quantity = q
			return
		}
	}
}

// RemoveLine removes a line. Removing an absent line is a no-op.
func (c *Cart) RemoveLine(lineID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Total returns Σ price × quantity over all lines; 0 for an empty cart.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, l := range c.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// Count returns the sum of quantities, shown as the cart badge.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Lines returns a snapshot of the cart in insertion order.
func (c *Cart) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// ─── Cart store ───────────────────────────────────────────────────────────────

// CartStore holds one Cart per session id, process-wide. Carts live as long
// as the process; persistence happens only at order-intake time, and a cart
// is gone when its session ends.
type CartStore struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: map[string]*Cart{}}
}

// For returns the cart for a session id, creating it on first use.
func (s *CartStore) For(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		c = &Cart{}
		s.carts[sessionID] = c
	}
	return c
}

// Drop discards a session's cart.
func (s *CartStore) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
