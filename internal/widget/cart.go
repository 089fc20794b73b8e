// Package widget is the shopping cart as the user sees it: the cart state,
// the node tree it is rendered into and the delegated click handling that
// feeds clicks on that tree back into the state.
//
// A Cart is not safe for concurrent use. Callers serving several goroutines
// must serialise access themselves.
package widget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nikolayk812/cart-widget/internal/dom"
	"github.com/nikolayk812/cart-widget/internal/domain"
	"github.com/nikolayk812/cart-widget/internal/port"
	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

const (
	containerClass = "cart"

	msgOrderPlaced = "Order placed successfully! Total amount: %s"
	msgCartEmpty   = "Your cart is empty. Add items before ordering."
)

var ErrTargetDetached = errors.New("click target is not inside the cart")

type Cart struct {
	state     *domain.Cart
	container *html.Node
	onClick   func(target *html.Node) error

	notifier port.Notifier
	orders   port.OrderRepository
	logger   *zap.Logger
	locale   language.Tag
	now      func() time.Time
}

type Option func(*Cart)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Cart) { c.logger = logger }
}

// WithLocale selects the locale used for currency symbols.
func WithLocale(tag language.Tag) Option {
	return func(c *Cart) { c.locale = tag }
}

func WithClock(now func() time.Time) Option {
	return func(c *Cart) { c.now = now }
}

// New returns an empty cart priced in unit, already rendered.
func New(unit currency.Unit, notifier port.Notifier, orders port.OrderRepository, opts ...Option) *Cart {
	c := &Cart{
		state:     domain.NewCart(unit),
		container: dom.Element("div", containerClass),
		notifier:  notifier,
		orders:    orders,
		logger:    zap.NewNop(),
		locale:    language.French,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.updateCartDisplay()
	return c
}

func (c *Cart) AddItem(product domain.Product, quantity int) error {
	if err := c.state.AddItem(product, quantity); err != nil {
		return fmt.Errorf("state.AddItem: %w", err)
	}

	c.logger.Debug("item added",
		zap.String("product_id", product.ID),
		zap.Int("quantity", quantity),
	)
	c.updateCartDisplay()
	return nil
}

// RemoveItem drops the line for productID. An absent product is a no-op.
func (c *Cart) RemoveItem(productID string) {
	removed := c.state.RemoveItem(productID)

	c.logger.Debug("item removed",
		zap.String("product_id", productID),
		zap.Bool("removed", removed),
	)
	c.updateCartDisplay()
}

func (c *Cart) IncrementQuantity(productID string) error {
	if err := c.state.IncrementQuantity(productID); err != nil {
		return fmt.Errorf("state.IncrementQuantity: %w", err)
	}

	c.updateCartDisplay()
	return nil
}

// DecrementQuantity lowers the quantity by one but never below 1.
func (c *Cart) DecrementQuantity(productID string) error {
	if err := c.state.DecrementQuantity(productID); err != nil {
		return fmt.Errorf("state.DecrementQuantity: %w", err)
	}

	c.updateCartDisplay()
	return nil
}

func (c *Cart) GetTotal() domain.Money {
	return c.state.Total()
}

func (c *Cart) Lines() []domain.CartLine {
	return c.state.Lines()
}

// PlaceOrder records the cart as an order and empties it. An empty cart is
// refused with a notification and left untouched. When the order cannot be
// recorded the cart is left untouched and no notification is sent.
func (c *Cart) PlaceOrder(ctx context.Context) (domain.Notification, error) {
	total := c.state.Total()

	if !total.IsPositive() {
		n := domain.Notification{
			Kind:    domain.NotificationCartEmpty,
			Message: msgCartEmpty,
			Total:   total,
		}
		c.notifier.Notify(n)
		return n, nil
	}

	order := c.state.Snapshot(c.now())
	if err := c.orders.SaveOrder(ctx, order); err != nil {
		return domain.Notification{}, fmt.Errorf("orders.SaveOrder: %w", err)
	}

	n := domain.Notification{
		Kind:    domain.NotificationOrderPlaced,
		Message: fmt.Sprintf(msgOrderPlaced, c.FormatMoney(total)),
		Total:   total,
	}
	c.notifier.Notify(n)

	c.logger.Info("order placed",
		zap.Stringer("order_id", order.ID),
		zap.String("total", total.Amount.StringFixed(2)),
		zap.Int("lines", len(order.Lines)),
	)

	c.state.Clear()
	c.updateCartDisplay()
	return n, nil
}

func (c *Cart) FormatMoney(m domain.Money) string {
	return m.Format(c.locale)
}

// Container is the root of the rendered tree. It stays the same node for the
// lifetime of the cart; only its children are replaced.
func (c *Cart) Container() *html.Node {
	return c.container
}

func (c *Cart) HTML() (string, error) {
	return dom.Render(c.container)
}
