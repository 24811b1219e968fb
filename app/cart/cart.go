// Package cart holds the in-process shopping carts. A cart is an ordered
// list of line items with totals derived on every read; nothing is
// persisted across a process restart.
package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/velato/storefront/app/models"
	"github.com/velato/storefront/app/utils/calc"
)

// Cart is one browser's cart. Mutations are serialized by an internal
// mutex so concurrent requests from the same session cannot corrupt the
// item list.
type Cart struct {
	mu    sync.Mutex
	items []*models.CartItem

	now func() time.Time
}

func New() *Cart {
	return &Cart{now: time.Now}
}

// Add appends a new line item. Adding the same product and variant twice
// creates two lines; there is no duplicate merge.
func (c *Cart) Add(product *models.Product, size models.Size, color models.Color, quantity int) *models.CartItem {
	if quantity < 1 {
		quantity = 1
	}

	item := &models.CartItem{
		ID:            uuid.New().String(),
		Product:       product,
		Quantity:      quantity,
		SelectedSize:  size,
		SelectedColor: color,
		AddedAt:       c.now(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	return item
}

// SetQuantity replaces an item's quantity. Zero removes the item.
func (c *Cart) SetQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.Remove(itemID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if item.ID == itemID {
			item.Quantity = quantity
			return
		}
	}
}

// Remove deletes the item. Removing an unknown id is a no-op.
func (c *Cart) Remove(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if item.ID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns the line items in insertion order.
func (c *Cart) Items() []*models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*models.CartItem(nil), c.items...)
}

// Len returns the number of line items.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Totals recomputes the order summary from the current items. Nothing is
// cached; stale totals cannot exist.
func (c *Cart) Totals() calc.Totals {
	c.mu.Lock()
	defer c.mu.Unlock()

	subtotal := decimal.Zero
	for _, item := range c.items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	return calc.Summarize(subtotal)
}
