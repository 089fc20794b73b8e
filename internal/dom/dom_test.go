package dom_test

import (
	"strings"
	"testing"

	"github.com/nikolayk812/cart-widget/internal/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func buildTree() (root, item, qty, plus *html.Node) {
	root = dom.Element("div", "cart")
	item = dom.Element("div", "item")
	dom.SetAttr(item, "data-id", "7")
	qty = dom.ElementWithText("span", "3", "quantity")
	plus = dom.ElementWithText("button", "+", "quantity-btn", "plus")
	dom.Append(item, qty, dom.Text(" "), plus)
	dom.Append(root, item)
	return root, item, qty, plus
}

func TestClassHelpers(t *testing.T) {
	_, _, _, plus := buildTree()

	assert.True(t, dom.HasClass(plus, "plus"))
	assert.True(t, dom.HasClass(plus, "quantity-btn"))
	assert.False(t, dom.HasClass(plus, "minus"))

	assert.True(t, dom.ToggleClass(plus, "liked"))
	assert.True(t, dom.HasClass(plus, "liked"))
	assert.False(t, dom.ToggleClass(plus, "liked"))
	assert.Equal(t, []string{"quantity-btn", "plus"}, dom.Classes(plus))
}

func TestTraversal(t *testing.T) {
	root, item, qty, plus := buildTree()

	assert.Same(t, item, dom.Closest(plus, "item"))
	assert.Same(t, root, dom.Closest(plus, "cart"))
	assert.Nil(t, dom.Closest(plus, "missing"))

	// text nodes between elements are skipped
	assert.Same(t, qty, dom.PreviousElementSibling(plus))
	assert.Same(t, plus, dom.NextElementSibling(qty))
	assert.Nil(t, dom.NextElementSibling(plus))

	assert.True(t, dom.Contains(root, plus))
	assert.False(t, dom.Contains(item, root))
	assert.Same(t, qty, dom.Find(root, "quantity"))

	id, ok := dom.Attr(item, "data-id")
	require.True(t, ok)
	assert.Equal(t, "7", id)
}

func TestReplaceChildren(t *testing.T) {
	root, item, _, _ := buildTree()

	fresh := dom.Element("div", "total")
	dom.ReplaceChildren(root, fresh)

	assert.Same(t, fresh, root.FirstChild)
	assert.Same(t, fresh, root.LastChild)
	assert.Nil(t, item.Parent)
}

func TestRender(t *testing.T) {
	root := dom.Element("div", "cart")
	dom.Append(root, dom.ElementWithText("span", "<b>Tom & Jerry</b>", "name"))

	got, err := dom.Render(root)
	require.NoError(t, err)

	assert.Equal(t, `<div class="cart"><span class="name">&lt;b&gt;Tom &amp; Jerry&lt;/b&gt;</span></div>`, got)
	assert.Equal(t, "<b>Tom & Jerry</b>", dom.TextContent(root))
	assert.False(t, strings.Contains(got, "<b>"))
}
