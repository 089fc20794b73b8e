package main

import (
	"bytes"
	"testing"

	"github.com/nikolayk812/cart-widget/internal/catalog"
	"github.com/nikolayk812/cart-widget/internal/notify"
	"github.com/nikolayk812/cart-widget/internal/repository"
	"github.com/nikolayk812/cart-widget/internal/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestRunDemo(t *testing.T) {
	products, err := catalog.Default(currency.EUR)
	require.NoError(t, err)

	cart := widget.New(currency.EUR, notify.NewRecorder(), repository.NewMemoryOrders())

	var out bytes.Buffer
	require.NoError(t, runDemo(t.Context(), &out, cart, products))

	got := out.String()
	assert.Contains(t, got, `<span class="total-price">70.00 €</span>`)
	assert.Contains(t, got, "Order placed successfully! Total amount: 70.00 €")
	assert.Empty(t, cart.Lines())
}
