package features

import (
	"context"
	"fmt"
	"testing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"kansha-ordering/internal/cart"
	"kansha-ordering/internal/models"
)

type cartTestContext struct {
	cart  cart.Cart
	items map[string]models.MenuItem
}

func (c *cartTestContext) reset() {
	c.cart = cart.Cart{}
	c.items = make(map[string]models.MenuItem)
}

func (c *cartTestContext) anEmptyCart() error {
	c.cart = cart.Cart{}
	return nil
}

func (c *cartTestContext) aMenuItemWithIDPriced(name, id, price string) error {
	p, err := decimal.NewFromString(price)
	if err != nil {
		return err
	}
	c.items[id] = models.MenuItem{ID: id, Name: name, Category: "Starters - Vegetarian", Price: p, Available: true}
	return nil
}

func (c *cartTestContext) iAddToTheCart(id string) error {
	item, ok := c.items[id]
	if !ok {
		return fmt.Errorf("unknown menu item %q", id)
	}
	c.cart.Add(item)
	return nil
}

func (c *cartTestContext) iSetTheQuantityOfTo(id string, quantity int) error {
	c.cart.SetQuantity(id, quantity)
	return nil
}

func (c *cartTestContext) theCartHasLines(count int) error {
	if c.cart.Len() != count {
		return fmt.Errorf("cart has %d lines, want %d", c.cart.Len(), count)
	}
	return nil
}

func (c *cartTestContext) theLineForHasQuantity(id string, quantity int) error {
	line, ok := c.cart.Line(id)
	if !ok {
		return fmt.Errorf("no line for %q", id)
	}
	if line.Quantity != quantity {
		return fmt.Errorf("line for %q has quantity %d, want %d", id, line.Quantity, quantity)
	}
	return nil
}

func (c *cartTestContext) theCartHasNoLineFor(id string) error {
	if _, ok := c.cart.Line(id); ok {
		return fmt.Errorf("unexpected line for %q", id)
	}
	return nil
}

func (c *cartTestContext) theCartTotalIs(total string) error {
	if got := c.cart.TotalDisplay(); got != total {
		return fmt.Errorf("cart total is %q, want %q", got, total)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^an empty cart$`, tc.anEmptyCart)
	ctx.Step(`^a menu item "([^"]*)" with id "([^"]*)" priced "([^"]*)"$`, tc.aMenuItemWithIDPriced)
	ctx.Step(`^I add "([^"]*)" to the cart$`, tc.iAddToTheCart)
	ctx.Step(`^I set the quantity of "([^"]*)" to (-?\d+)$`, tc.iSetTheQuantityOfTo)
	ctx.Step(`^the cart has (\d+) lines$`, tc.theCartHasLines)
	ctx.Step(`^the line for "([^"]*)" has quantity (\d+)$`, tc.theLineForHasQuantity)
	ctx.Step(`^the cart has no line for "([^"]*)"$`, tc.theCartHasNoLineFor)
	ctx.Step(`^the cart total is "([^"]*)"$`, tc.theCartTotalIs)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"ordering.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
