package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// The Order Service speaks plain JSON numbers for prices.
	decimal.MarshalJSONWithoutQuotes = true
}

// MenuItem represents a dish on the restaurant menu. The Order Service owns
// these; the client only holds read-only copies refreshed per fetch.
type MenuItem struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Subcategory   string          `json:"subcategory,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Description   string          `json:"description,omitempty"`
	ImageURL      string          `json:"image_url,omitempty"`
	Available     bool            `json:"available"`
	AvailableDays []string        `json:"available_days,omitempty"`
}

// MenuResponse is the body of GET /api/menu and GET /api/menu/category/{category}.
type MenuResponse struct {
	MenuItems []MenuItem `json:"menu_items"`
}

// CategoriesResponse is the body of GET /api/menu/categories.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// MenuItemUpdate is a partial update for PUT /api/admin/menu/{id}.
// Only non-nil fields are sent.
type MenuItemUpdate struct {
	Name      *string          `json:"name,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	Available *bool            `json:"available,omitempty"`
}
