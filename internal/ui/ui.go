// Package ui renders the five client views to a terminal and translates
// typed commands into controller transitions.
package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"kansha-ordering/internal/app"
	"kansha-ordering/internal/models"
)

// UI drives one interactive ordering session over a line-based terminal.
type UI struct {
	ctrl *app.Controller
	in   *bufio.Scanner
	out  io.Writer
}

// New creates a UI reading commands from in and rendering to out.
func New(ctrl *app.Controller, in io.Reader, out io.Writer) *UI {
	return &UI{
		ctrl: ctrl,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

// Run renders the current view and dispatches commands until the user quits,
// the input ends, or the context is cancelled.
func (u *UI) Run(ctx context.Context) error {
	u.ctrl.LoadMenu(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		u.render()
		fmt.Fprint(u.out, "> ")
		if !u.in.Scan() {
			return u.in.Err()
		}
		line := strings.TrimSpace(u.in.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		u.dispatch(ctx, line)
	}
}

func (u *UI) render() {
	state := u.ctrl.State()
	switch state.View {
	case app.ViewHome:
		u.renderHome()
	case app.ViewMenu:
		u.renderMenu(state)
	case app.ViewCheckout:
		u.renderCheckout(state)
	case app.ViewAdminLogin:
		u.renderAdminLogin()
	case app.ViewAdminDashboard:
		u.renderAdminDashboard(state)
	}
}

func (u *UI) dispatch(ctx context.Context, line string) {
	switch u.ctrl.State().View {
	case app.ViewHome:
		u.dispatchHome(line)
	case app.ViewMenu:
		u.dispatchMenu(ctx, line)
	case app.ViewCheckout:
		u.dispatchCheckout(ctx, line)
	case app.ViewAdminLogin:
		u.dispatchAdminLogin(ctx, line)
	case app.ViewAdminDashboard:
		u.dispatchAdminDashboard(ctx, line)
	}
}

func (u *UI) renderHome() {
	fmt.Fprintln(u.out, "=== Kansha's Indian Treat ===")
	fmt.Fprintln(u.out, "Taste the Soul of South India. Daily 11:00-21:00.")
	fmt.Fprintln(u.out, "Commands: order | quit")
}

func (u *UI) renderMenu(state *app.State) {
	fmt.Fprintf(u.out, "=== Our Menu - cart (%d) ===\n", state.Cart.Len())
	fmt.Fprintln(u.out, "Categories:")
	for i, category := range state.Categories {
		marker := " "
		if category == state.SelectedCategory {
			marker = "*"
		}
		fmt.Fprintf(u.out, " %s %d. %s\n", marker, i+1, category)
	}
	fmt.Fprintln(u.out, "Items:")
	for i, item := range state.MenuItems {
		sub := ""
		if item.Subcategory != "" {
			sub = " [" + item.Subcategory + "]"
		}
		fmt.Fprintf(u.out, "   %d. %s%s - EUR %s\n", i+1, item.Name, sub, item.Price.StringFixed(2))
	}
	if state.ShowCart {
		u.renderCartPanel(state)
	}
	fmt.Fprintln(u.out, "Commands: add <item#> | cat <category#> | cart | + <line#> | - <line#> | checkout | home | quit")
}

func (u *UI) renderCartPanel(state *app.State) {
	fmt.Fprintln(u.out, "--- Your Order ---")
	for i, line := range state.Cart.Lines() {
		fmt.Fprintf(u.out, "   %d. %s x%d - EUR %s\n", i+1, line.Name, line.Quantity, line.Subtotal().StringFixed(2))
	}
	if !state.Cart.IsEmpty() {
		fmt.Fprintf(u.out, "   Total: EUR %s\n", state.Cart.TotalDisplay())
	}
}

func (u *UI) renderCheckout(state *app.State) {
	fmt.Fprintln(u.out, "=== Checkout ===")
	fmt.Fprintf(u.out, "Name:  %s\n", state.Customer.Name)
	fmt.Fprintf(u.out, "Phone: %s\n", state.Customer.Phone)
	fmt.Fprintf(u.out, "Email: %s\n", state.Customer.Email)
	fmt.Fprintf(u.out, "Notes: %s\n", state.Customer.Notes)
	fmt.Fprintf(u.out, "Payment: %s (cash | revolut | revolut-person)\n", state.PaymentMethod)
	fmt.Fprintln(u.out, "Order summary:")
	for _, line := range state.Cart.Lines() {
		fmt.Fprintf(u.out, "   %s x%d - EUR %s\n", line.Name, line.Quantity, line.Subtotal().StringFixed(2))
	}
	fmt.Fprintf(u.out, "Total: EUR %s\n", state.Cart.TotalDisplay())
	if state.PlacingOrder {
		fmt.Fprintln(u.out, "Placing order...")
	}
	fmt.Fprintln(u.out, "Commands: name <v> | phone <v> | email <v> | notes <v> | pay <method> | order | back | quit")
}

func (u *UI) renderAdminLogin() {
	fmt.Fprintln(u.out, "=== Admin Login ===")
	fmt.Fprintln(u.out, "Type the admin password, or: back | quit")
}

func (u *UI) renderAdminDashboard(state *app.State) {
	fmt.Fprintln(u.out, "=== Admin Dashboard ===")
	fmt.Fprintln(u.out, "Recent Orders:")
	for i, order := range state.AdminOrders {
		fmt.Fprintf(u.out, "   %d. #%s %s %s - %s, %s - EUR %s\n",
			i+1, order.ShortID(), order.OrderDate.Format("2006-01-02"), order.Status,
			order.CustomerName, order.PaymentMethod, order.TotalAmount.StringFixed(2))
		for _, line := range order.Items {
			fmt.Fprintf(u.out, "        %s x%d\n", line.Name, line.Quantity)
		}
		if order.Notes != "" {
			fmt.Fprintf(u.out, "        notes: %s\n", order.Notes)
		}
	}
	fmt.Fprintln(u.out, "Menu Management:")
	for i, item := range state.AdminMenu {
		availability := "available"
		if !item.Available {
			availability = "unavailable"
		}
		fmt.Fprintf(u.out, "   %d. %s (%s) - EUR %s - %s\n", i+1, item.Name, item.Category, item.Price.StringFixed(2), availability)
	}
	fmt.Fprintln(u.out, "Commands: avail <item#> on|off | price <item#> <amount> | status <order#> <status> | reload | logout | quit")
}

func (u *UI) dispatchHome(line string) {
	switch line {
	case "order", "menu":
		u.ctrl.Navigate(app.ViewMenu)
	default:
		fmt.Fprintln(u.out, "Unknown command.")
	}
}

func (u *UI) dispatchMenu(ctx context.Context, line string) {
	state := u.ctrl.State()
	cmd, arg := splitCommand(line)
	switch cmd {
	case "home":
		u.ctrl.Navigate(app.ViewHome)
	case "cart":
		u.ctrl.SetCartVisible(!state.ShowCart)
	case "checkout":
		u.ctrl.Navigate(app.ViewCheckout)
	case "add":
		if item, ok := pick(state.MenuItems, arg); ok {
			u.ctrl.AddToCart(item)
		} else {
			fmt.Fprintln(u.out, "No such item.")
		}
	case "cat":
		if category, ok := pick(state.Categories, arg); ok {
			if err := u.ctrl.SelectCategory(ctx, category); err != nil {
				fmt.Fprintln(u.out, "No such category.")
			}
		} else {
			fmt.Fprintln(u.out, "No such category.")
		}
	case "+", "-":
		if cartLine, ok := pick(state.Cart.Lines(), arg); ok {
			delta := 1
			if cmd == "-" {
				delta = -1
			}
			u.ctrl.UpdateCartQuantity(cartLine.MenuItemID, cartLine.Quantity+delta)
		} else {
			fmt.Fprintln(u.out, "No such cart line.")
		}
	default:
		fmt.Fprintln(u.out, "Unknown command.")
	}
}

func (u *UI) dispatchCheckout(ctx context.Context, line string) {
	state := u.ctrl.State()
	cmd, arg := splitCommand(line)
	switch cmd {
	case "back":
		u.ctrl.Navigate(app.ViewMenu)
	case "name":
		info := state.Customer
		info.Name = arg
		u.ctrl.SetCustomer(info)
	case "phone":
		info := state.Customer
		info.Phone = arg
		u.ctrl.SetCustomer(info)
	case "email":
		info := state.Customer
		info.Email = arg
		u.ctrl.SetCustomer(info)
	case "notes":
		info := state.Customer
		info.Notes = arg
		u.ctrl.SetCustomer(info)
	case "pay":
		switch models.PaymentMethod(arg) {
		case models.PaymentCash, models.PaymentRevolut, models.PaymentRevolutPerson:
			u.ctrl.SetPaymentMethod(models.PaymentMethod(arg))
		default:
			fmt.Fprintln(u.out, "Unknown payment method.")
		}
	case "order":
		u.ctrl.PlaceOrder(ctx)
	default:
		fmt.Fprintln(u.out, "Unknown command.")
	}
}

func (u *UI) dispatchAdminLogin(ctx context.Context, line string) {
	if line == "back" {
		u.ctrl.Navigate(app.ViewHome)
		return
	}
	u.ctrl.SetAdminPassword(line)
	u.ctrl.AdminLogin(ctx)
}

func (u *UI) dispatchAdminDashboard(ctx context.Context, line string) {
	state := u.ctrl.State()
	cmd, arg := splitCommand(line)
	switch cmd {
	case "logout":
		u.ctrl.Logout()
	case "reload":
		u.ctrl.LoadAdminData(ctx)
	case "avail":
		ref, flag := splitCommand(arg)
		item, ok := pick(state.AdminMenu, ref)
		if !ok || (flag != "on" && flag != "off") {
			fmt.Fprintln(u.out, "Usage: avail <item#> on|off")
			return
		}
		u.ctrl.SetItemAvailability(ctx, item.ID, flag == "on")
	case "price":
		ref, amount := splitCommand(arg)
		item, ok := pick(state.AdminMenu, ref)
		if !ok {
			fmt.Fprintln(u.out, "Usage: price <item#> <amount>")
			return
		}
		price, err := decimal.NewFromString(amount)
		if err != nil || price.IsNegative() {
			fmt.Fprintln(u.out, "Usage: price <item#> <amount>")
			return
		}
		u.ctrl.SetItemPrice(ctx, item.ID, price)
	case "status":
		ref, status := splitCommand(arg)
		order, ok := pick(state.AdminOrders, ref)
		if !ok || status == "" {
			fmt.Fprintln(u.out, "Usage: status <order#> <status>")
			return
		}
		u.ctrl.SetOrderStatus(ctx, order.ID, models.OrderStatus(status))
	default:
		fmt.Fprintln(u.out, "Unknown command.")
	}
}

// splitCommand separates the first word from the rest of the line.
func splitCommand(line string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(line), " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}

// pick resolves a 1-based list reference typed by the user.
func pick[T any](list []T, ref string) (T, bool) {
	var zero T
	n, err := strconv.Atoi(ref)
	if err != nil || n < 1 || n > len(list) {
		return zero, false
	}
	return list[n-1], true
}
