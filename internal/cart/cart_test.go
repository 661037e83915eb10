package cart

import (
	"testing"

	"github.com/shopspring/decimal"

	"kansha-ordering/internal/models"
)

func menuItem(id, name, price string) models.MenuItem {
	return models.MenuItem{ID: id, Name: name, Category: "Tiffen Varieties", Price: decimal.RequireFromString(price), Available: true}
}

func TestAddMergesLines(t *testing.T) {
	var c Cart
	dosa := menuItem("item-a", "Masala Dosa", "12.00")

	c.Add(dosa)
	c.Add(dosa)
	c.Add(dosa)

	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	line, ok := c.Line("item-a")
	if !ok {
		t.Fatal("line for item-a not found")
	}
	if line.Quantity != 3 {
		t.Errorf("Quantity = %d, want 3", line.Quantity)
	}
	if line.Name != "Masala Dosa" || line.Price.StringFixed(2) != "12.00" {
		t.Errorf("line did not capture name/price at insertion: %+v", line)
	}
}

func TestAddCapturesPriceAtInsertion(t *testing.T) {
	var c Cart
	c.Add(menuItem("item-a", "Sambhar", "8.00"))

	// A later price change on the refreshed menu item does not touch the line.
	c.Add(menuItem("item-a", "Sambhar", "9.50"))

	line, _ := c.Line("item-a")
	if line.Price.StringFixed(2) != "8.00" {
		t.Errorf("Price = %s, want 8.00", line.Price.StringFixed(2))
	}
	if line.Quantity != 2 {
		t.Errorf("Quantity = %d, want 2", line.Quantity)
	}
}

func TestSetQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		wantLine bool
		wantQty  int
	}{
		{name: "set to larger value", quantity: 5, wantLine: true, wantQty: 5},
		{name: "zero removes the line", quantity: 0, wantLine: false},
		{name: "negative clamps to removal", quantity: -3, wantLine: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Cart
			c.Add(menuItem("item-a", "Chicken Biryani", "18.00"))

			c.SetQuantity("item-a", tt.quantity)

			line, ok := c.Line("item-a")
			if ok != tt.wantLine {
				t.Fatalf("line present = %v, want %v", ok, tt.wantLine)
			}
			if ok && line.Quantity != tt.wantQty {
				t.Errorf("Quantity = %d, want %d", line.Quantity, tt.wantQty)
			}
		})
	}
}

func TestSetQuantityUnknownIDIsIgnored(t *testing.T) {
	var c Cart
	c.Add(menuItem("item-a", "Gobi 65", "10.00"))

	c.SetQuantity("item-b", 4)

	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	line, _ := c.Line("item-a")
	if line.Quantity != 1 {
		t.Errorf("Quantity = %d, want 1", line.Quantity)
	}
}

func TestTotalDisplay(t *testing.T) {
	var c Cart
	if got := c.TotalDisplay(); got != "0.00" {
		t.Errorf("empty cart total = %s, want 0.00", got)
	}

	// Two lines with repeated adds; totals stay exact decimals.
	a := menuItem("item-a", "Potato Bonda", "5.00")
	b := menuItem("item-b", "Mango Lassi", "3.50")
	c.Add(a)
	c.Add(a)
	c.Add(b)

	if got := c.TotalDisplay(); got != "13.50" {
		t.Errorf("TotalDisplay() = %s, want 13.50", got)
	}

	c.SetQuantity("item-a", 1)
	if got := c.TotalDisplay(); got != "8.50" {
		t.Errorf("TotalDisplay() after removing one unit = %s, want 8.50", got)
	}

	c.SetQuantity("item-b", 0)
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	if got := c.TotalDisplay(); got != "5.00" {
		t.Errorf("TotalDisplay() after dropping line = %s, want 5.00", got)
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	var c Cart
	c.Add(menuItem("item-a", "Plain Dosa", "10.00"))

	lines := c.Lines()
	lines[0].Quantity = 99

	line, _ := c.Line("item-a")
	if line.Quantity != 1 {
		t.Errorf("mutating the returned slice changed the cart: %+v", line)
	}
}
