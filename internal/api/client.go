// Package api is a typed client for the Order Service REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"kansha-ordering/internal/logger"
	"kansha-ordering/internal/models"
)

// StatusError is returned for any non-2xx response. Callers treat it the
// same as a transport error; the code is carried for logging and for the
// login flow, which distinguishes a rejected password from a failed request.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("order service returned status %d", e.Code)
}

// Client talks to one Order Service instance. Requests carry no timeout and
// are never retried; a hung request simply never resolves.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates a client for the Order Service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{},
	}
}

// GetMenu fetches the full list of available menu items.
func (c *Client) GetMenu(ctx context.Context) ([]models.MenuItem, error) {
	var resp models.MenuResponse
	if err := c.getJSON(ctx, "/api/menu", &resp); err != nil {
		return nil, err
	}
	return resp.MenuItems, nil
}

// GetCategories fetches the category list in server order.
func (c *Client) GetCategories(ctx context.Context) ([]string, error) {
	var resp models.CategoriesResponse
	if err := c.getJSON(ctx, "/api/menu/categories", &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// GetMenuByCategory fetches the available items of one category. The
// category appears as a path segment and is escaped accordingly.
func (c *Client) GetMenuByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	var resp models.MenuResponse
	if err := c.getJSON(ctx, "/api/menu/category/"+url.PathEscape(category), &resp); err != nil {
		return nil, err
	}
	return resp.MenuItems, nil
}

// CreateOrder submits a new order and returns the server-assigned order id.
func (c *Client) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.CreateOrderResponse, error) {
	var resp models.CreateOrderResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/api/orders", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AdminLogin posts the admin password. A nil error means the password was
// accepted; the server gates every subsequent admin call itself.
func (c *Client) AdminLogin(ctx context.Context, password string) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/admin/login", &models.AdminLoginRequest{Password: password}, nil)
}

// GetAdminOrders fetches all orders, newest first.
func (c *Client) GetAdminOrders(ctx context.Context) ([]models.Order, error) {
	var resp models.OrdersResponse
	if err := c.getJSON(ctx, "/api/admin/orders", &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// GetAdminMenu fetches the full menu including unavailable items.
func (c *Client) GetAdminMenu(ctx context.Context) ([]models.MenuItem, error) {
	var resp models.MenuResponse
	if err := c.getJSON(ctx, "/api/admin/menu", &resp); err != nil {
		return nil, err
	}
	return resp.MenuItems, nil
}

// UpdateMenuItemAvailability sends a partial update flipping one item's
// availability.
func (c *Client) UpdateMenuItemAvailability(ctx context.Context, itemID string, available bool) error {
	return c.sendJSON(ctx, http.MethodPut, "/api/admin/menu/"+url.PathEscape(itemID), &models.MenuItemUpdate{Available: &available}, nil)
}

// UpdateMenuItemPrice sends a partial update changing one item's price.
func (c *Client) UpdateMenuItemPrice(ctx context.Context, itemID string, price decimal.Decimal) error {
	return c.sendJSON(ctx, http.MethodPut, "/api/admin/menu/"+url.PathEscape(itemID), &models.MenuItemUpdate{Price: &price}, nil)
}

// UpdateOrderStatus moves one order to a new status.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	return c.sendJSON(ctx, http.MethodPut, "/api/admin/orders/"+url.PathEscape(orderID)+"/status", &models.OrderStatusUpdate{Status: status}, nil)
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("X-Request-Id", logger.GenerateRequestID())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &StatusError{Code: resp.StatusCode}
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
