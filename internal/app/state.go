package app

import (
	"kansha-ordering/internal/cart"
	"kansha-ordering/internal/models"
)

// View identifies which screen the client is showing. Navigation is a plain
// in-memory view switch; there is no history stack or deep linking.
type View string

const (
	ViewHome           View = "home"
	ViewMenu           View = "menu"
	ViewCheckout       View = "checkout"
	ViewAdminLogin     View = "admin"
	ViewAdminDashboard View = "admin-dashboard"
)

// AuthState is the admin authorization state machine. The only transition
// into AuthAdmin is a successful login response; it is a client-side
// convenience, not a security token; the server gates every admin call.
type AuthState int

const (
	AuthAnonymous AuthState = iota
	AuthAdmin
)

// State is the whole application state. Every field is mutated only through
// Controller transitions, one per user action or network completion.
type State struct {
	View View
	Auth AuthState

	MenuItems        []models.MenuItem
	Categories       []string
	SelectedCategory string

	Cart     cart.Cart
	ShowCart bool

	Customer      models.CustomerInfo
	PaymentMethod models.PaymentMethod
	PlacingOrder  bool

	AdminPassword string
	AdminOrders   []models.Order
	AdminMenu     []models.MenuItem
}

// knowsCategory reports whether category is in the last successfully
// fetched category set.
func (s *State) knowsCategory(category string) bool {
	for _, c := range s.Categories {
		if c == category {
			return true
		}
	}
	return false
}
