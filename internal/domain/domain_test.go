package domain_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/cart-widget/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func eur(amount string) domain.Money {
	return domain.NewMoney(decimal.RequireFromString(amount), currency.EUR)
}

func mustProduct(t *testing.T, id, name string, price domain.Money) domain.Product {
	t.Helper()

	p, err := domain.NewProduct(id, name, price)
	require.NoError(t, err)
	return p
}

func randomProduct(t *testing.T) domain.Product {
	t.Helper()

	price := domain.NewMoney(decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2), currency.EUR)
	return mustProduct(t, gofakeit.UUID(), gofakeit.ProductName(), price)
}
