// Package apitest provides an in-memory Order Service implementing the REST
// contract the client consumes, for use in tests.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"kansha-ordering/internal/models"
)

// DefaultPassword matches the development password of the real backend.
const DefaultPassword = "kanshka123"

// Server is a fake Order Service backed by in-memory state. Route behavior
// can be failed wholesale via Fail to exercise error paths.
type Server struct {
	mu sync.Mutex

	Menu     []models.MenuItem
	Orders   []models.Order
	Password string

	// Fail maps a route key to a forced 500 response. Keys: menu,
	// categories, category, create_order, login, admin_orders, admin_menu,
	// update_menu, update_status.
	Fail map[string]bool

	// CreateOrderCalls counts accepted and rejected POST /api/orders hits.
	CreateOrderCalls int
	// MenuUpdateBodies records the raw bodies of PUT /api/admin/menu/{id}.
	MenuUpdateBodies []map[string]json.RawMessage

	srv *httptest.Server
}

// NewServer starts a fake Order Service seeded with the given menu.
func NewServer(menu []models.MenuItem) *Server {
	s := &Server{
		Menu:     menu,
		Password: DefaultPassword,
		Fail:     make(map[string]bool),
	}

	r := chi.NewRouter()
	r.Get("/api/menu", s.getMenu)
	r.Get("/api/menu/categories", s.getCategories)
	r.Get("/api/menu/category/{category}", s.getMenuByCategory)
	r.Post("/api/orders", s.createOrder)
	r.Post("/api/admin/login", s.adminLogin)
	r.Get("/api/admin/orders", s.getAdminOrders)
	r.Get("/api/admin/menu", s.getAdminMenu)
	r.Put("/api/admin/menu/{id}", s.updateMenuItem)
	r.Put("/api/admin/orders/{id}/status", s.updateOrderStatus)

	s.srv = httptest.NewServer(r)
	return s
}

// URL returns the base URL of the fake service.
func (s *Server) URL() string {
	return s.srv.URL
}

// Close shuts the fake service down.
func (s *Server) Close() {
	s.srv.Close()
}

func (s *Server) failed(w http.ResponseWriter, key string) bool {
	if s.Fail[key] {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "forced failure"})
		return true
	}
	return false
}

func (s *Server) getMenu(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failed(w, "menu") {
		return
	}
	writeJSON(w, http.StatusOK, models.MenuResponse{MenuItems: availableOnly(s.Menu)})
}

func (s *Server) getCategories(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failed(w, "categories") {
		return
	}
	seen := make(map[string]bool)
	var categories []string
	for _, item := range s.Menu {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	sort.Strings(categories)
	writeJSON(w, http.StatusOK, models.CategoriesResponse{Categories: categories})
}

func (s *Server) getMenuByCategory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failed(w, "category") {
		return
	}
	category := chi.URLParam(r, "category")
	items := make([]models.MenuItem, 0)
	for _, item := range availableOnly(s.Menu) {
		if item.Category == category {
			items = append(items, item)
		}
	}
	writeJSON(w, http.StatusOK, models.MenuResponse{MenuItems: items})
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CreateOrderCalls++
	if s.failed(w, "create_order") {
		return
	}

	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid json"})
		return
	}

	total := decimal.Zero
	for _, item := range req.Items {
		total = total.Add(item.Subtotal())
	}
	order := models.Order{
		ID:            uuid.NewString(),
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Items:         req.Items,
		TotalAmount:   total,
		PaymentMethod: req.PaymentMethod,
		OrderDate:     models.OrderTime{Time: time.Now().UTC()},
		Status:        models.StatusPending,
		Notes:         req.Notes,
	}
	// Newest first, matching the backend's order listing.
	s.Orders = append([]models.Order{order}, s.Orders...)

	writeJSON(w, http.StatusOK, models.CreateOrderResponse{Message: "Order placed successfully", OrderID: order.ID})
}

func (s *Server) adminLogin(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failed(w, "login") {
		return
	}
	var req models.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid json"})
		return
	}
	if req.Password != s.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid password"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Login successful"})
}

func (s *Server) getAdminOrders(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failed(w, "admin_orders") {
		return
	}
	writeJSON(w, http.StatusOK, models.OrdersResponse{Orders: append([]models.Order{}, s.Orders...)})
}

func (s *Server) getAdminMenu(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failed(w, "admin_menu") {
		return
	}
	writeJSON(w, http.StatusOK, models.MenuResponse{MenuItems: append([]models.MenuItem{}, s.Menu...)})
}

func (s *Server) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failed(w, "update_menu") {
		return
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid json"})
		return
	}
	s.MenuUpdateBodies = append(s.MenuUpdateBodies, raw)
	if len(raw) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "No update data provided"})
		return
	}

	itemID := chi.URLParam(r, "id")
	for i := range s.Menu {
		if s.Menu[i].ID != itemID {
			continue
		}
		if b, ok := raw["available"]; ok {
			json.Unmarshal(b, &s.Menu[i].Available)
		}
		if b, ok := raw["price"]; ok {
			json.Unmarshal(b, &s.Menu[i].Price)
		}
		if b, ok := raw["name"]; ok {
			json.Unmarshal(b, &s.Menu[i].Name)
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Menu item updated successfully"})
		return
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Menu item not found"})
}

func (s *Server) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failed(w, "update_status") {
		return
	}

	var req models.OrderStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid json"})
		return
	}
	orderID := chi.URLParam(r, "id")
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			s.Orders[i].Status = req.Status
			writeJSON(w, http.StatusOK, map[string]string{"message": "Order status updated successfully"})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Order not found"})
}

func availableOnly(items []models.MenuItem) []models.MenuItem {
	out := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if item.Available {
			out = append(out, item)
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
