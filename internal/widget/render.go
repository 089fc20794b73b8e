package widget

import (
	"strconv"

	"github.com/nikolayk812/cart-widget/internal/dom"
	"github.com/nikolayk812/cart-widget/internal/domain"
	"golang.org/x/net/html"
)

const (
	itemClass       = "item"
	productIDAttr   = "data-id"
	nameClass       = "name"
	likeClass       = "like-btn"
	likedClass      = "liked"
	quantityBtn     = "quantity-btn"
	minusClass      = "minus"
	quantityClass   = "quantity"
	plusClass       = "plus"
	deleteClass     = "delete-btn"
	priceClass      = "price"
	totalClass      = "total"
	totalPriceClass = "total-price"
)

// updateCartDisplay rebuilds every child of the container from the state.
// Anything that lived only in the previous tree, such as a liked marker,
// is gone afterwards.
func (c *Cart) updateCartDisplay() {
	lines := c.state.Lines()

	nodes := make([]*html.Node, 0, len(lines)+1)
	for _, line := range lines {
		nodes = append(nodes, c.renderLine(line))
	}
	nodes = append(nodes, c.renderTotal())

	dom.ReplaceChildren(c.container, nodes...)
	c.addEventListeners()
}

func (c *Cart) renderLine(line domain.CartLine) *html.Node {
	item := dom.Element("div", itemClass)
	dom.SetAttr(item, productIDAttr, line.Product.ID)

	dom.Append(item,
		dom.ElementWithText("span", line.Product.Name, nameClass),
		button("❤️", likeClass),
		button("-", quantityBtn, minusClass),
		dom.ElementWithText("span", strconv.Itoa(line.Quantity), quantityClass),
		button("+", quantityBtn, plusClass),
		button("Delete", deleteClass),
		dom.ElementWithText("span", c.FormatMoney(line.LineTotal()), priceClass),
	)
	return item
}

func (c *Cart) renderTotal() *html.Node {
	total := dom.Element("div", totalClass)
	dom.Append(total,
		dom.ElementWithText("span", "Total: "),
		dom.ElementWithText("span", c.FormatMoney(c.state.Total()), totalPriceClass),
	)
	return total
}

func button(label string, classes ...string) *html.Node {
	b := dom.ElementWithText("button", label, classes...)
	dom.SetAttr(b, "type", "button")
	return b
}
