package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/currency"
)

type CartLine struct {
	Product  Product
	Quantity int
}

func (l CartLine) LineTotal() Money {
	return l.Product.Price.Mul(l.Quantity)
}

// Cart keeps at most one line per product ID, in insertion order.
// All lines share the cart's currency.
type Cart struct {
	currency currency.Unit
	lines    []*CartLine
}

func NewCart(unit currency.Unit) *Cart {
	return &Cart{currency: unit}
}

func (c *Cart) Currency() currency.Unit {
	return c.currency
}

func (c *Cart) AddItem(product Product, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	if product.Price.Currency != c.currency {
		return fmt.Errorf("%w: product[%s] is priced in %s, cart in %s",
			ErrCurrencyMismatch, product.ID, product.Price.Currency, c.currency)
	}

	if line := c.find(product.ID); line != nil {
		line.Quantity += quantity
		return nil
	}

	c.lines = append(c.lines, &CartLine{Product: product, Quantity: quantity})
	return nil
}

// RemoveItem reports whether a line was removed. Removing an absent product
// is not an error.
func (c *Cart) RemoveItem(productID string) bool {
	n := len(c.lines)
	c.lines = slices.DeleteFunc(c.lines, func(l *CartLine) bool {
		return l.Product.ID == productID
	})
	return len(c.lines) != n
}

func (c *Cart) IncrementQuantity(productID string) error {
	line := c.find(productID)
	if line == nil {
		return fmt.Errorf("%w: %s", ErrLineNotFound, productID)
	}
	line.Quantity++
	return nil
}

// DecrementQuantity never takes a line below 1; use RemoveItem to drop it.
func (c *Cart) DecrementQuantity(productID string) error {
	line := c.find(productID)
	if line == nil {
		return fmt.Errorf("%w: %s", ErrLineNotFound, productID)
	}
	if line.Quantity > 1 {
		line.Quantity--
	}
	return nil
}

func (c *Cart) Total() Money {
	total := Zero(c.currency)
	for _, l := range c.lines {
		total.Amount = total.Amount.Add(l.LineTotal().Amount)
	}
	return total
}

// Lines returns copies of the lines in insertion order.
func (c *Cart) Lines() []CartLine {
	lines := make([]CartLine, 0, len(c.lines))
	for _, l := range c.lines {
		lines = append(lines, *l)
	}
	return lines
}

func (c *Cart) Line(productID string) (CartLine, bool) {
	line := c.find(productID)
	if line == nil {
		return CartLine{}, false
	}
	return *line, true
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Snapshot freezes the current lines into an order.
func (c *Cart) Snapshot(placedAt time.Time) Order {
	lines := make([]OrderLine, 0, len(c.lines))
	for _, l := range c.lines {
		lines = append(lines, OrderLine{
			ProductID:   l.Product.ID,
			ProductName: l.Product.Name,
			UnitPrice:   l.Product.Price,
			Quantity:    l.Quantity,
		})
	}

	return Order{
		ID:       uuid.New(),
		Lines:    lines,
		Total:    c.Total(),
		PlacedAt: placedAt,
	}
}

func (c *Cart) find(productID string) *CartLine {
	for _, l := range c.lines {
		if l.Product.ID == productID {
			return l
		}
	}
	return nil
}
