package widget

import (
	"fmt"

	"github.com/nikolayk812/cart-widget/internal/dom"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

type Interaction int

const (
	InteractionNone Interaction = iota
	InteractionIncrement
	InteractionDecrement
	InteractionDelete
	InteractionToggleLike
)

func (i Interaction) String() string {
	switch i {
	case InteractionIncrement:
		return "increment"
	case InteractionDecrement:
		return "decrement"
	case InteractionDelete:
		return "delete"
	case InteractionToggleLike:
		return "toggle_like"
	default:
		return "none"
	}
}

// checked in order, first match wins
var interactionsByClass = []struct {
	class       string
	interaction Interaction
}{
	{plusClass, InteractionIncrement},
	{minusClass, InteractionDecrement},
	{deleteClass, InteractionDelete},
	{likeClass, InteractionToggleLike},
}

// ResolveInteraction maps the clicked element to the interaction its classes
// stand for.
func ResolveInteraction(target *html.Node) Interaction {
	for _, e := range interactionsByClass {
		if dom.HasClass(target, e.class) {
			return e.interaction
		}
	}
	return InteractionNone
}

// addEventListeners binds the single delegated click listener of the
// container. Rebinding replaces the previous listener.
func (c *Cart) addEventListeners() {
	c.onClick = c.handleClick
}

// Click delivers a click on target to the container's listener, the way a
// click bubbles up to a delegated handler in a browser.
func (c *Cart) Click(target *html.Node) error {
	if target == nil || !dom.Contains(c.container, target) {
		return ErrTargetDetached
	}
	if c.onClick == nil {
		return nil
	}
	return c.onClick(target)
}

func (c *Cart) handleClick(target *html.Node) error {
	interaction := ResolveInteraction(target)
	if interaction == InteractionNone {
		return nil
	}

	var productID string
	if item := dom.Closest(target, itemClass); item != nil {
		productID, _ = dom.Attr(item, productIDAttr)
	}

	c.logger.Debug("cart click",
		zap.Stringer("interaction", interaction),
		zap.String("product_id", productID),
	)

	switch interaction {
	case InteractionIncrement:
		return c.IncrementQuantity(productID)
	case InteractionDecrement:
		return c.DecrementQuantity(productID)
	case InteractionDelete:
		c.RemoveItem(productID)
		return nil
	case InteractionToggleLike:
		dom.ToggleClass(target, likedClass)
		return nil
	default:
		return fmt.Errorf("unhandled interaction %s", interaction)
	}
}

// Element finds the rendered element carrying class inside the line of
// productID.
func (c *Cart) Element(productID, class string) (*html.Node, bool) {
	items := dom.QueryAll(c.container, func(n *html.Node) bool {
		if !dom.HasClass(n, itemClass) {
			return false
		}
		id, _ := dom.Attr(n, productIDAttr)
		return id == productID
	})
	if len(items) == 0 {
		return nil, false
	}

	if dom.HasClass(items[0], class) {
		return items[0], true
	}
	n := dom.Find(items[0], class)
	return n, n != nil
}
