package cart

import (
	"github.com/shopspring/decimal"

	"github.com/apexgrid/gridwear/internal/catalog"
)

// LineItem is one row in the cart: a product and its chosen quantity.
type LineItem struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// LineTotal returns price * quantity for this row.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart is an ordered ledger of line items. Rows keep their insertion order;
// quantity changes never reorder. At most one row exists per product id.
//
// Cart is not safe for concurrent use; each session owns exactly one cart and
// mutates it from a single goroutine at a time.
type Cart struct {
	items []LineItem
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts a product in the cart. If a row for the same product id already
// exists its quantity is incremented by one, otherwise a new row with
// quantity one is appended. There is no stock ceiling; Add always succeeds.
func (c *Cart) Add(p catalog.Product) {
	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, LineItem{Product: p, Quantity: 1})
}

// Remove deletes the row for the given product id. Removing an absent id is
// a no-op.
func (c *Cart) Remove(productID int) {
	for i := range c.items {
		if c.items[i].ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the row's quantity to exactly n. A quantity of zero or
// below removes the row; a zero or negative quantity never persists.
// Updating an absent id is a no-op.
func (c *Cart) UpdateQuantity(productID, n int) {
	if n <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.items {
		if c.items[i].ID == productID {
			c.items[i].Quantity = n
			return
		}
	}
}

// Subtotal sums price * quantity over all rows, rounded to two fraction
// digits. An empty cart totals zero.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, li := range c.items {
		total = total.Add(li.LineTotal())
	}
	return total.Round(2)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the rows in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len reports the number of rows.
func (c *Cart) Len() int {
	return len(c.items)
}

// TotalQuantity sums the quantities across all rows, for the cart badge.
func (c *Cart) TotalQuantity() int {
	n := 0
	for _, li := range c.items {
		n += li.Quantity
	}
	return n
}
