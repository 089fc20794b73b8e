package domain_test

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/cart-widget/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestCartAddItem(t *testing.T) {
	product := randomProduct(t)

	tests := []struct {
		name      string
		quantity  int
		product   domain.Product
		wantError error
	}{
		{
			name:     "positive quantity: ok",
			quantity: 2,
			product:  product,
		},
		{
			name:      "zero quantity: error",
			quantity:  0,
			product:   product,
			wantError: domain.ErrInvalidQuantity,
		},
		{
			name:      "negative quantity: error",
			quantity:  -1,
			product:   product,
			wantError: domain.ErrInvalidQuantity,
		},
		{
			name:     "other currency: error",
			quantity: 1,
			product: mustProduct(t, "usd", "Dollar thing",
				domain.NewMoney(decimal.NewFromInt(5), currency.USD)),
			wantError: domain.ErrCurrencyMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := domain.NewCart(currency.EUR)

			err := cart.AddItem(tt.product, tt.quantity)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				assert.True(t, cart.IsEmpty())
				return
			}
			require.NoError(t, err)

			line, ok := cart.Line(tt.product.ID)
			require.True(t, ok)
			assert.Equal(t, tt.quantity, line.Quantity)
		})
	}
}

func TestCartAddSameProductMergesLines(t *testing.T) {
	cart := domain.NewCart(currency.EUR)
	product := randomProduct(t)

	want := 0
	for range 5 {
		n := gofakeit.IntRange(1, 10)
		want += n
		require.NoError(t, cart.AddItem(product, n))
	}

	require.Equal(t, 1, cart.Len())
	line, ok := cart.Line(product.ID)
	require.True(t, ok)
	assert.Equal(t, want, line.Quantity)
}

func TestCartKeepsInsertionOrder(t *testing.T) {
	cart := domain.NewCart(currency.EUR)
	first, second, third := randomProduct(t), randomProduct(t), randomProduct(t)

	require.NoError(t, cart.AddItem(first, 1))
	require.NoError(t, cart.AddItem(second, 1))
	require.NoError(t, cart.AddItem(third, 1))
	require.NoError(t, cart.AddItem(first, 4))

	var ids []string
	for _, l := range cart.Lines() {
		ids = append(ids, l.Product.ID)
	}

	diff := cmp.Diff([]string{first.ID, second.ID, third.ID}, ids)
	assert.Empty(t, diff)
}

func TestCartTotal(t *testing.T) {
	cart := domain.NewCart(currency.EUR)
	assert.True(t, cart.Total().Amount.Equal(decimal.Zero))
	assert.Equal(t, currency.EUR, cart.Total().Currency)

	want := decimal.Zero
	for range 4 {
		p := randomProduct(t)
		n := gofakeit.IntRange(1, 5)
		require.NoError(t, cart.AddItem(p, n))
		want = want.Add(p.Price.Amount.Mul(decimal.NewFromInt(int64(n))))
	}

	assert.True(t, want.Equal(cart.Total().Amount), "want %s, got %s", want, cart.Total().Amount)
}

func TestCartRemoveItemIsIdempotent(t *testing.T) {
	cart := domain.NewCart(currency.EUR)
	product := randomProduct(t)
	require.NoError(t, cart.AddItem(product, 1))

	assert.True(t, cart.RemoveItem(product.ID))
	assert.False(t, cart.RemoveItem(product.ID))
	assert.False(t, cart.RemoveItem("never-added"))
	assert.True(t, cart.IsEmpty())
}

func TestCartQuantityAdjustments(t *testing.T) {
	cart := domain.NewCart(currency.EUR)
	product := randomProduct(t)
	require.NoError(t, cart.AddItem(product, 1))

	require.NoError(t, cart.IncrementQuantity(product.ID))
	line, _ := cart.Line(product.ID)
	assert.Equal(t, 2, line.Quantity)

	require.NoError(t, cart.DecrementQuantity(product.ID))
	require.NoError(t, cart.DecrementQuantity(product.ID))
	line, _ = cart.Line(product.ID)
	assert.Equal(t, 1, line.Quantity, "decrement clamps at 1")

	require.ErrorIs(t, cart.IncrementQuantity("missing"), domain.ErrLineNotFound)
	require.ErrorIs(t, cart.DecrementQuantity("missing"), domain.ErrLineNotFound)
}

func TestCartSnapshot(t *testing.T) {
	cart := domain.NewCart(currency.EUR)
	a := mustProduct(t, "1", "Article 1", eur("50.00"))
	b := mustProduct(t, "2", "Article 2", eur("20.00"))
	require.NoError(t, cart.AddItem(a, 3))
	require.NoError(t, cart.AddItem(b, 1))

	placedAt := time.Now()
	order := cart.Snapshot(placedAt)

	assert.NotZero(t, order.ID)
	assert.Equal(t, placedAt, order.PlacedAt)
	assert.Equal(t, "170.00", order.Total.Amount.StringFixed(2))
	require.Len(t, order.Lines, 2)
	assert.Equal(t, "1", order.Lines[0].ProductID)
	assert.Equal(t, "150.00", order.Lines[0].LineTotal().Amount.StringFixed(2))

	// the snapshot is detached from the cart
	cart.Clear()
	assert.Len(t, order.Lines, 2)
}
