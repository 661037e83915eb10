// Package app implements the Ordering Client state machine: five views over
// one explicit state struct, with every user action and network completion
// applied as a discrete transition.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"kansha-ordering/internal/api"
	"kansha-ordering/internal/cart"
	"kansha-ordering/internal/config"
	"kansha-ordering/internal/logger"
	"kansha-ordering/internal/models"
)

// ErrUnknownCategory is returned when a category selection is not in the
// last fetched category set. Nothing is sent to the server in that case.
var ErrUnknownCategory = errors.New("unknown menu category")

// Alerter shows blocking user-facing messages: validation failures and
// order/login failures. Background fetch failures never reach it.
type Alerter interface {
	Alert(message string)
}

// PaymentPage opens the external payment link in a new browsing context.
type PaymentPage interface {
	Open(url string) error
}

// Controller owns the application state and applies all transitions.
// It is not safe for concurrent use; the driving loop serializes calls.
type Controller struct {
	state  State
	api    *api.Client
	cfg    *config.Config
	logger *logger.Logger
	alerts Alerter
	pay    PaymentPage
}

// New creates a controller starting on the home view with an anonymous
// admin state and cash preselected as payment method.
func New(client *api.Client, cfg *config.Config, log *logger.Logger, alerts Alerter, pay PaymentPage) *Controller {
	return &Controller{
		state: State{
			View:          ViewHome,
			Auth:          AuthAnonymous,
			PaymentMethod: models.PaymentCash,
		},
		api:    client,
		cfg:    cfg,
		logger: log,
		alerts: alerts,
		pay:    pay,
	}
}

// State returns the current application state for rendering.
func (c *Controller) State() *State {
	return &c.state
}

// RouteInitial applies the start-up routing: the administrative path lands
// on the admin login view, everything else on home.
func (c *Controller) RouteInitial(path string) {
	if path == "/admin" {
		c.state.View = ViewAdminLogin
	} else {
		c.state.View = ViewHome
	}
}

// Navigate switches the current view. The dashboard is reachable only while
// authenticated; anyone else lands on the login view instead.
func (c *Controller) Navigate(v View) {
	if v == ViewAdminDashboard && c.state.Auth != AuthAdmin {
		c.state.View = ViewAdminLogin
		return
	}
	c.state.View = v
}

// SetCartVisible shows or hides the cart panel.
func (c *Controller) SetCartVisible(visible bool) {
	c.state.ShowCart = visible
}

// SetCustomer replaces the checkout form state.
func (c *Controller) SetCustomer(info models.CustomerInfo) {
	c.state.Customer = info
}

// SetPaymentMethod records the chosen payment method.
func (c *Controller) SetPaymentMethod(m models.PaymentMethod) {
	c.state.PaymentMethod = m
}

// SetAdminPassword records the admin login form input.
func (c *Controller) SetAdminPassword(password string) {
	c.state.AdminPassword = password
}

// LoadMenu fetches the item and category lists in parallel. On success the
// first category is selected and its items fetched immediately, so the menu
// view never keeps the unfiltered list. Failures are logged and leave the
// previous state intact.
func (c *Controller) LoadMenu(ctx context.Context) {
	requestID := logger.GenerateRequestID()

	var items []models.MenuItem
	var categories []string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = c.api.GetMenu(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = c.api.GetCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		c.logger.Error("menu_load_failed", "Failed to fetch menu data", requestID, err, nil)
		return
	}

	c.state.MenuItems = items
	c.state.Categories = categories

	if len(categories) > 0 {
		first := categories[0]
		c.state.SelectedCategory = first
		filtered, err := c.api.GetMenuByCategory(ctx, first)
		if err != nil {
			c.logger.Error("category_load_failed", "Failed to fetch category menu", requestID, err, map[string]interface{}{
				"category": first,
			})
			return
		}
		c.state.MenuItems = filtered
	}
}

// SelectCategory fetches the items of one category and makes it the current
// selection. Categories outside the last fetched set are rejected before
// any network call. Fetch failures are logged and leave state unchanged.
func (c *Controller) SelectCategory(ctx context.Context, category string) error {
	if !c.state.knowsCategory(category) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	requestID := logger.GenerateRequestID()
	items, err := c.api.GetMenuByCategory(ctx, category)
	if err != nil {
		c.logger.Error("category_load_failed", "Failed to fetch category menu", requestID, err, map[string]interface{}{
			"category": category,
		})
		return nil
	}
	c.state.MenuItems = items
	c.state.SelectedCategory = category
	return nil
}

// AddToCart puts one unit of the item into the cart, merging into an
// existing line when present.
func (c *Controller) AddToCart(item models.MenuItem) {
	c.state.Cart.Add(item)
}

// UpdateCartQuantity sets a line's quantity; zero or less removes the line.
func (c *Controller) UpdateCartQuantity(menuItemID string, quantity int) {
	c.state.Cart.SetQuantity(menuItemID, quantity)
}

// TotalAmount returns the cart total formatted to two decimal places.
func (c *Controller) TotalAmount() string {
	return c.state.Cart.TotalDisplay()
}

// PlaceOrder submits the cart as a new order. Missing name, phone, or an
// empty cart aborts with a validation alert and no network call. On success
// the cart, the customer form and the cart panel are reset and the view
// returns to home; the online redirect method additionally opens the
// external payment page exactly once. On failure the state is left as-is so
// the customer can retry.
func (c *Controller) PlaceOrder(ctx context.Context) {
	if c.state.Customer.Name == "" || c.state.Customer.Phone == "" || c.state.Cart.IsEmpty() {
		c.alerts.Alert("Please fill in your details and add items to cart")
		return
	}

	requestID := logger.GenerateRequestID()
	c.state.PlacingOrder = true
	defer func() {
		c.state.PlacingOrder = false
	}()

	req := &models.CreateOrderRequest{
		CustomerName:  c.state.Customer.Name,
		CustomerPhone: c.state.Customer.Phone,
		CustomerEmail: c.state.Customer.Email,
		Items:         c.state.Cart.Lines(),
		PaymentMethod: c.state.PaymentMethod,
		Notes:         c.state.Customer.Notes,
	}
	if err := req.Validate(); err != nil {
		c.alerts.Alert("Please fill in your details and add items to cart")
		return
	}

	resp, err := c.api.CreateOrder(ctx, req)
	if err != nil {
		c.logger.Error("order_failed", "Failed to place order", requestID, err, map[string]interface{}{
			"customer_name": req.CustomerName,
		})
		c.alerts.Alert("Failed to place order. Please try again.")
		return
	}

	c.logger.Info("order_placed", "Order placed", requestID, map[string]interface{}{
		"order_id":     resp.OrderID,
		"total_amount": c.state.Cart.TotalDisplay(),
	})
	c.alerts.Alert(fmt.Sprintf("Order placed successfully! Order ID: %s", resp.OrderID))

	if c.state.PaymentMethod == models.PaymentRevolut {
		if err := c.pay.Open(c.cfg.PaymentLinkURL); err != nil {
			c.logger.Error("payment_page_failed", "Failed to open payment page", requestID, err, nil)
		}
	}

	c.state.Cart = cart.Cart{}
	c.state.Customer = models.CustomerInfo{}
	c.state.ShowCart = false
	c.state.View = ViewHome
}

// AdminLogin posts the entered password. Acceptance authenticates the
// session, switches to the dashboard and loads the admin data; a rejected
// password and a transport failure each surface their own generic alert and
// change nothing.
func (c *Controller) AdminLogin(ctx context.Context) {
	requestID := logger.GenerateRequestID()

	if err := c.api.AdminLogin(ctx, c.state.AdminPassword); err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) {
			c.alerts.Alert("Invalid password")
		} else {
			c.logger.Error("login_failed", "Admin login request failed", requestID, err, nil)
			c.alerts.Alert("Login failed")
		}
		return
	}

	c.state.Auth = AuthAdmin
	c.state.View = ViewAdminDashboard
	c.LoadAdminData(ctx)
}

// Logout drops the admin session and returns home.
func (c *Controller) Logout() {
	c.state.Auth = AuthAnonymous
	c.state.AdminPassword = ""
	c.state.View = ViewHome
}

// LoadAdminData fetches the order list and the full menu in parallel.
// If either fetch fails, neither result is applied; the failure is logged
// and the dashboard keeps its last-known-good data.
func (c *Controller) LoadAdminData(ctx context.Context) {
	requestID := logger.GenerateRequestID()

	var orders []models.Order
	var menu []models.MenuItem

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = c.api.GetAdminOrders(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		menu, err = c.api.GetAdminMenu(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		c.logger.Error("admin_load_failed", "Failed to fetch admin data", requestID, err, nil)
		return
	}

	c.state.AdminOrders = orders
	c.state.AdminMenu = menu
}

// SetItemAvailability updates one menu item's availability and reloads the
// admin data on success. There is no optimistic local update; a failure is
// logged and leaves the stale state visible.
func (c *Controller) SetItemAvailability(ctx context.Context, itemID string, available bool) {
	requestID := logger.GenerateRequestID()
	if err := c.api.UpdateMenuItemAvailability(ctx, itemID, available); err != nil {
		c.logger.Error("menu_update_failed", "Failed to update item availability", requestID, err, map[string]interface{}{
			"item_id": itemID,
		})
		return
	}
	c.LoadAdminData(ctx)
}

// SetItemPrice updates one menu item's price and reloads the admin data on
// success.
func (c *Controller) SetItemPrice(ctx context.Context, itemID string, price decimal.Decimal) {
	requestID := logger.GenerateRequestID()
	if err := c.api.UpdateMenuItemPrice(ctx, itemID, price); err != nil {
		c.logger.Error("menu_update_failed", "Failed to update item price", requestID, err, map[string]interface{}{
			"item_id": itemID,
		})
		return
	}
	c.LoadAdminData(ctx)
}

// SetOrderStatus moves one order to a new status and reloads the admin data
// on success.
func (c *Controller) SetOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) {
	requestID := logger.GenerateRequestID()
	if err := c.api.UpdateOrderStatus(ctx, orderID, status); err != nil {
		c.logger.Error("order_update_failed", "Failed to update order status", requestID, err, map[string]interface{}{
			"order_id": orderID,
		})
		return
	}
	c.LoadAdminData(ctx)
}
