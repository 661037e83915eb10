// Package cart holds the in-progress order for one ordering session.
package cart

import (
	"github.com/shopspring/decimal"

	"kansha-ordering/internal/models"
)

// Cart is a list of lines keyed by menu item id: at most one line per item.
// The zero value is an empty cart ready for use.
type Cart struct {
	lines []models.CartLine
}

// Add puts one unit of the item into the cart. If a line for the item
// already exists its quantity is incremented; otherwise a new line is
// appended, capturing the item's current name and price.
func (c *Cart) Add(item models.MenuItem) {
	for i := range c.lines {
		if c.lines[i].MenuItemID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, models.CartLine{
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Quantity:   1,
	})
}

// SetQuantity sets the quantity of the line for menuItemID. Negative values
// are clamped to zero, and zero removes the line entirely. Unknown ids are
// ignored.
func (c *Cart) SetQuantity(menuItemID string, quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	for i := range c.lines {
		if c.lines[i].MenuItemID != menuItemID {
			continue
		}
		if quantity == 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Quantity = quantity
		}
		return
	}
}

// Line returns the line for menuItemID, if present.
func (c *Cart) Line(menuItemID string) (models.CartLine, bool) {
	for _, line := range c.lines {
		if line.MenuItemID == menuItemID {
			return line, true
		}
	}
	return models.CartLine{}, false
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of distinct lines in the cart.
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Total returns the exact sum of price times quantity over all lines.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// TotalDisplay returns the total formatted with exactly two decimal places.
func (c *Cart) TotalDisplay() string {
	return c.Total().StringFixed(2)
}
