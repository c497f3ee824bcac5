package models

import (
	"errors"
	"time"
)

// ErrNegativeQuantity is returned when a caller tries to set a quantity below zero.
// Negative quantities fail fast instead of being clamped.
var ErrNegativeQuantity = errors.New("quantity cannot be negative")

// CartLine is one selected item type with its quantity.
// A line with quantity 0 is never stored; absence means zero.
type CartLine struct {
	ItemName string `bson:"item_name" json:"itemName"`
	Quantity int    `bson:"quantity" json:"quantity"`
}

// Cart holds the per-session item selections. It is owned by exactly one
// checkout session at a time, so no locking is needed.
type Cart struct {
	SessionID string              `json:"sessionId"`
	UserID    string              `json:"userId,omitempty"`
	Lines     map[string]CartLine `json:"lines"`
	CreatedAt time.Time           `json:"createdAt"`
}

// NewCart returns an empty cart for the given session.
func NewCart(sessionID, userID string) *Cart {
	return &Cart{
		SessionID: sessionID,
		UserID:    userID,
		Lines:     make(map[string]CartLine),
		CreatedAt: time.Now(),
	}
}

// Increment raises the quantity for itemName by one, creating the line at
// quantity 1 if absent. No upper bound is enforced.
func (c *Cart) Increment(itemName string) {
	if c.Lines == nil {
		c.Lines = make(map[string]CartLine)
	}
	line := c.Lines[itemName]
	line.ItemName = itemName
	line.Quantity++
	c.Lines[itemName] = line
}

// Decrement lowers the quantity for itemName by one. At quantity 1 the line is
// removed entirely; decrementing an absent item is a no-op.
func (c *Cart) Decrement(itemName string) {
	line, ok := c.Lines[itemName]
	if !ok {
		return
	}
	if line.Quantity <= 1 {
		delete(c.Lines, itemName)
		return
	}
	line.Quantity--
	c.Lines[itemName] = line
}

// SetQuantity sets an explicit quantity for itemName. Negative quantities are
// rejected; zero removes the line.
func (c *Cart) SetQuantity(itemName string, quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	if c.Lines == nil {
		c.Lines = make(map[string]CartLine)
	}
	if quantity == 0 {
		delete(c.Lines, itemName)
		return nil
	}
	c.Lines[itemName] = CartLine{ItemName: itemName, Quantity: quantity}
	return nil
}

// Total computes the cart total against the given unit prices. Lines whose
// item is missing from the price map contribute nothing.
func (c *Cart) Total(prices map[string]float64) float64 {
	total := 0.0
	for name, line := range c.Lines {
		total += float64(line.Quantity) * prices[name]
	}
	return total
}

// TotalUnits returns the summed quantity across all lines.
func (c *Cart) TotalUnits() int {
	units := 0
	for _, line := range c.Lines {
		units += line.Quantity
	}
	return units
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.Lines = make(map[string]CartLine)
}

// LineSlice returns the cart lines as a slice, for embedding in a booking.
func (c *Cart) LineSlice() []CartLine {
	lines := make([]CartLine, 0, len(c.Lines))
	for _, line := range c.Lines {
		lines = append(lines, line)
	}
	return lines
}
