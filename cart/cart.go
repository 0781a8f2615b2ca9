// Package cart is the in-memory accumulator behind the shopping cart: a
// mapping from product identity to quantity, scoped to a single browsing
// session. It holds shared references into the fetched catalog, does no
// stock checking and no persistence; checkout snapshots its lines into an
// order and clears it.
package cart

import (
	"github.com/google/uuid"

	"github.com/GameStore-Ecommerce/gamestore-backend/models"
)

// Line is one product-and-quantity pair. The product pointer is shared with
// the catalog, not owned; Total uses the price captured through it.
type Line struct {
	Product  *models.Product
	Quantity int
}

// Cart accumulates lines keyed by product id. Insertion order is preserved
// for display. Not safe for concurrent use: one cart per session.
type Cart struct {
	lines map[uuid.UUID]*Line
	order []uuid.UUID
}

func New() *Cart {
	return &Cart{lines: make(map[uuid.UUID]*Line)}
}

// AddItem inserts the product with quantity 1, or increments the existing
// line by 1.
func (c *Cart) AddItem(product *models.Product) {
	if line, ok := c.lines[product.ID]; ok {
		line.Quantity++
		return
	}
	c.lines[product.ID] = &Line{Product: product, Quantity: 1}
	c.order = append(c.order, product.ID)
}

// RemoveItem drops the line entirely, regardless of quantity.
func (c *Cart) RemoveItem(productID uuid.UUID) {
	if _, ok := c.lines[productID]; !ok {
		return
	}
	delete(c.lines, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// UpdateQuantity sets the line's quantity. Zero or negative behaves as
// RemoveItem. Updating an absent product is a no-op.
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	if line, ok := c.lines[productID]; ok {
		line.Quantity = quantity
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = make(map[uuid.UUID]*Line)
	c.order = nil
}

// Total sums price × quantity over all lines, using each line's captured
// product price.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Product.Price * float64(line.Quantity)
	}
	return total
}

// ItemCount sums quantities over all lines.
func (c *Cart) ItemCount() int {
	var count int
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Items returns the lines in insertion order.
func (c *Cart) Items() []*Line {
	items := make([]*Line, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, c.lines[id])
	}
	return items
}
