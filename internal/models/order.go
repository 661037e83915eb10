package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how the customer intends to pay
type PaymentMethod string

const (
	PaymentCash          PaymentMethod = "cash"
	PaymentRevolut       PaymentMethod = "revolut"
	PaymentRevolutPerson PaymentMethod = "revolut-person"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// CartLine is one distinct menu item plus its requested quantity within an
// in-progress order. Name and price are captured at insertion time; a later
// server-side price change is not reflected without re-adding the item.
type CartLine struct {
	MenuItemID string          `json:"menu_item_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
}

// Subtotal returns price multiplied by quantity for this line.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CustomerInfo is transient checkout form state, cleared after a
// successful order submission.
type CustomerInfo struct {
	Name  string
	Phone string
	Email string
	Notes string
}

// OrderTime accepts the Order Service's naive UTC timestamps as well as RFC 3339.
type OrderTime struct {
	time.Time
}

func (t *OrderTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"} {
		if ts, err := time.Parse(layout, s); err == nil {
			t.Time = ts.UTC()
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp %q", s)
}

func (t OrderTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(time.RFC3339Nano) + `"`), nil
}

// Order is a server-owned order summary as returned by GET /api/admin/orders.
type Order struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	CustomerEmail string          `json:"customer_email,omitempty"`
	Items         []CartLine      `json:"items"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	OrderDate     OrderTime       `json:"order_date"`
	Status        OrderStatus     `json:"status"`
	Notes         string          `json:"notes,omitempty"`
}

// ShortID returns the display form of the order id, the last 8 characters.
func (o Order) ShortID() string {
	if len(o.ID) <= 8 {
		return o.ID
	}
	return o.ID[len(o.ID)-8:]
}

// CreateOrderRequest represents the request to create a new order.
// Email and notes are sent even when empty.
type CreateOrderRequest struct {
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone"`
	CustomerEmail string        `json:"customer_email"`
	Items         []CartLine    `json:"items"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Notes         string        `json:"notes"`
}

// Validate checks the create order request before any network call is made.
func (req *CreateOrderRequest) Validate() error {
	if req.CustomerName == "" {
		return fmt.Errorf("customer_name is required")
	}
	if req.CustomerPhone == "" {
		return fmt.Errorf("customer_phone is required")
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("items cannot be empty")
	}
	for i, item := range req.Items {
		if item.MenuItemID == "" {
			return fmt.Errorf("items[%d].menu_item_id is required", i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("items[%d].quantity must be greater than 0", i)
		}
		if item.Price.IsNegative() {
			return fmt.Errorf("items[%d].price must not be negative", i)
		}
	}
	return nil
}

// CreateOrderResponse represents the response after creating an order
type CreateOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}

// AdminLoginRequest is the body of POST /api/admin/login.
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// OrdersResponse is the body of GET /api/admin/orders.
type OrdersResponse struct {
	Orders []Order `json:"orders"`
}

// OrderStatusUpdate is the body of PUT /api/admin/orders/{id}/status.
type OrderStatusUpdate struct {
	Status OrderStatus `json:"status"`
}
